package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bird/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration bird would play with, as YAML.

The configuration is searched in this order:
  --config <path>
  ~/.bird/configs/bird.yaml
  ./configs/bird.yaml
  built-in defaults

Examples:
  bird config > ~/.bird/configs/bird.yaml
  bird config --config ./my-bird.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data) //nolint:errcheck // Nothing to do if stdout is gone
}
