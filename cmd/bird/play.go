package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bird/internal/audio"
	"github.com/vovakirdan/tui-bird/internal/platform/tui"
)

var flagSound bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space/Up/W   - Flap (also left click)
  Enter/R      - Start a run, or restart after game over
  P/Esc        - Pause
  ?            - More help
  Ctrl+S       - Save a text screenshot to ~/.bird/screenshots
  Q/Ctrl+C     - Quit

Examples:
  bird play
  bird play --sound
  bird play --seed 42
  bird play --config ./my-bird.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects (overrides audio.enabled)")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg := loadConfig()
	if cmd.Flags().Changed("sound") {
		cfg.Audio.Enabled = flagSound
	}

	logger, logCloser, err := newLogger(flagLogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close() //nolint:errcheck // Best-effort close of the log file

	// Bubble Tea reports the size again once running
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Config: cfg,
		Seed:   flagSeed,
		FPS:    flagFPS,
		Logger: logger,
		Width:  width,
		Height: height,
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
		opts.Store = store.ForPlayer(flagPlayer)
	}

	player, err := audio.Open(cfg.Audio)
	if err != nil {
		logger.Warn("sound disabled", "err", err)
	}
	defer player.Close()
	opts.Audio = player

	logger.Info("starting game", "seed", flagSeed, "fps", flagFPS, "size", fmt.Sprintf("%dx%d", width, height))
	if err := tui.Run(opts); err != nil {
		logger.Error("game failed", "err", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
