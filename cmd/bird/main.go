// bird is a side-scrolling avoider for the terminal: flap through the gaps
// of an endless row of pipes.
//
// Usage:
//
//	bird play                - Play in this terminal
//	bird serve               - Start SSH server for remote play
//	bird scores              - Show the best runs
//	bird config              - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>     - Set frame rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.bird/scores.db)
//	--config <path>  - Load a custom bird.yaml
//	--log <path>     - Log file ("-" for stderr, "" to disable)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bird/internal/config"
	"github.com/vovakirdan/tui-bird/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogPath string
	flagDebug   bool
	flagPlayer  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bird",
	Short: "TUI Bird - flap through the pipes in your terminal",
	Long: `TUI Bird is a side-scrolling avoider. The bird falls under gravity;
every flap sends it upwards. Fly through the gaps between the pipes to
score and avoid the ground and the sky.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View the best runs
  config   - Print the effective configuration

Examples:
  bird play
  bird play --seed 42 --sound
  bird serve --ssh :2222
  bird scores --interactive`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bird/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom bird.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.bird/bird.log", `Log file ("-" for stderr, "" to disable)`)
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug messages")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player name for scores (default: local)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// newLogger builds the logger for a command. The returned closer releases
// the log file.
func newLogger(path string) (*log.Logger, io.Closer, error) {
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "bird",
	}
	if flagDebug {
		opts.Level = log.DebugLevel
	}

	switch path {
	case "":
		return log.NewWithOptions(io.Discard, opts), io.NopCloser(nil), nil
	case "-":
		return log.NewWithOptions(os.Stderr, opts), io.NopCloser(nil), nil
	}

	path, err := expandHome(path)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return log.NewWithOptions(f, opts), f, nil
}

// loadConfig loads the bird configuration or exits.
func loadConfig() config.BirdConfig {
	cfg, err := config.LoadBird(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// openStore opens the scores database. Failures are logged and play goes
// on without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}
