// bird-window plays bird in a desktop window. It shares the configuration
// and score database with the terminal version.
//
// Usage:
//
//	bird-window [--seed <value>] [--sound] [--config <path>] [--player <name>]
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bird/internal/audio"
	"github.com/vovakirdan/tui-bird/internal/config"
	"github.com/vovakirdan/tui-bird/internal/platform/window"
	"github.com/vovakirdan/tui-bird/internal/storage"
)

var (
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogPath string
	flagDebug   bool
	flagPlayer  string
	flagSound   bool
	flagWidth   int
	flagHeight  int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bird-window",
	Short: "Bird in a desktop window",
	Long: `Play bird in a resizable desktop window.

Controls:
  Click/Space/Up/W  - Flap
  Click/Enter/R     - Start a run, or restart after game over
  P/Esc             - Pause
  Q                 - Quit`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagDBPath, "db", "~/.bird/scores.db", "Path to scores database")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom bird.yaml")
	rootCmd.Flags().StringVar(&flagLogPath, "log", "~/.bird/bird.log", `Log file ("-" for stderr, "" to disable)`)
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log debug messages")
	rootCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name for scores (default: local)")
	rootCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects (overrides audio.enabled)")
	rootCmd.Flags().IntVar(&flagWidth, "width", 0, "Initial window width (overrides window.width)")
	rootCmd.Flags().IntVar(&flagHeight, "height", 0, "Initial window height (overrides window.height)")
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadBird(flagConfig)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("sound") {
		cfg.Audio.Enabled = flagSound
	}
	if flagWidth > 0 {
		cfg.Window.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Window.Height = flagHeight
	}

	logger, logCloser, err := newLogger(flagLogPath)
	if err != nil {
		return err
	}
	defer logCloser.Close() //nolint:errcheck // Best-effort close of the log file

	opts := window.Options{
		Config: cfg,
		Seed:   flagSeed,
		Logger: logger,
	}

	// Play goes on without persistence when the database cannot be opened
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
	} else {
		defer store.Close()
		opts.Store = store.ForPlayer(flagPlayer)
	}

	player, err := audio.Open(cfg.Audio)
	if err != nil {
		logger.Warn("sound disabled", "err", err)
	}
	defer player.Close()
	opts.Audio = player

	logger.Info("opening window", "seed", flagSeed, "size", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height))
	if err := window.Run(opts); err != nil {
		logger.Error("game failed", "err", err)
		return err
	}
	return nil
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

// newLogger builds the logger. The returned closer releases the log file.
func newLogger(path string) (*log.Logger, io.Closer, error) {
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "bird-window",
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
