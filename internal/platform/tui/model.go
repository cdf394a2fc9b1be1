package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bird/internal/audio"
	"github.com/vovakirdan/tui-bird/internal/config"
	"github.com/vovakirdan/tui-bird/internal/core"
	"github.com/vovakirdan/tui-bird/internal/engine"
	"github.com/vovakirdan/tui-bird/internal/games/bird"
	"github.com/vovakirdan/tui-bird/internal/storage"
)

// DefaultFPS is the frame rate used when Options.FPS is not positive.
const DefaultFPS = 60

// Options configures a game screen.
type Options struct {
	Config config.BirdConfig
	Seed   int64 // 0 picks a time-based seed
	FPS    int

	Store  *storage.BestStore // Best score and run history; may be nil
	Audio  *audio.Player      // May be nil
	Logger *log.Logger        // May be nil

	// Initial terminal size in cells. Bubble Tea reports the real size on
	// startup, so zero is fine.
	Width, Height int

	// ScreenshotDir defaults to ~/.bird/screenshots.
	ScreenshotDir string
	NoScreenshots bool

	// Renderer detects the colour profile of the output. SSH sessions pass
	// one per client; nil uses the local terminal.
	Renderer *lipgloss.Renderer
}

// Model is the Bubble Tea model for one game of bird.
type Model struct {
	game   *bird.Game
	runner *engine.Runner
	raster *Raster
	screen *core.Screen
	styles *styleCache
	keys   KeyMap
	help   help.Model

	feedback *engine.Feedback
	logger   *log.Logger

	fps           int
	width, height int
	state         core.GameState
	quitting      bool
	screenshotDir string
	screenshots   bool
}

// NewModel creates a game screen. The game starts idle, waiting for a
// restart request.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}

	var runs engine.RunRecorder
	gameOpts := []bird.Option{}
	if opts.Store != nil {
		logger = logger.With("player", opts.Store.Player())
		gameOpts = append(gameOpts, bird.WithStore(opts.Store))
		runs = opts.Store
	}
	gameOpts = append(gameOpts, bird.WithLogger(logger))
	game := bird.New(opts.Config, core.RuntimeConfig{Seed: opts.Seed}, gameOpts...)
	maxStep := time.Duration(opts.Config.World.MaxStepMs) * time.Millisecond

	m := Model{
		game:          game,
		runner:        engine.NewRunner(game, maxStep, logger),
		raster:        NewRaster(opts.Config.Terminal.CellWidth, opts.Config.Terminal.CellHeight),
		screen:        core.NewScreen(0, 0),
		styles:        newStyleCache(opts.Renderer),
		keys:          DefaultKeyMap(),
		help:          help.New(),
		feedback:      engine.NewFeedback(opts.Audio, runs, logger),
		logger:        logger,
		fps:           fps,
		state:         game.State(),
		screenshotDir: opts.ScreenshotDir,
		screenshots:   !opts.NoScreenshots,
	}
	if opts.Width > 0 && opts.Height > 0 {
		m.width, m.height = opts.Width, opts.Height
		m.help.Width = opts.Width
		m.layout()
	}
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && !m.runner.Paused() {
			m.game.RequestImpulse()
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if m.screenshots {
			m.saveScreenshot()
		}
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		if m.state.Running() || m.runner.Paused() {
			paused := m.runner.TogglePause()
			m.logger.Debug("pause toggled", "paused", paused)
		}
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	case core.ActionJump, core.ActionRestart:
		if !m.runner.Paused() {
			m.game.HandleAction(a)
		}
	}
	return m, nil
}

// handleResize processes window resize events. The game picks the new
// size up at its next tick.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// layout splits the terminal between playfield and help footer.
func (m *Model) layout() {
	footer := lipgloss.Height(m.help.View(m.keys))
	m.raster.Resize(m.width, core.Max(m.height-footer, 0))
	m.game.Resize(m.raster.Size())
}

// handleTick runs one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	m.raster.Clear()
	res := m.runner.Frame(now, m.raster)
	m.state = res.State
	m.feedback.Handle(res.Events)
	return m, tickCmd(m.fps)
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.raster.Flush(m.screen)

	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("cannot save screenshot", "err", err)
			return
		}
		dir = filepath.Join(home, ".bird", "screenshots")
	}
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	path := filepath.Join(dir, fmt.Sprintf("bird_%s.txt", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// State returns the game state as of the last frame.
func (m Model) State() core.GameState {
	return m.state
}

// View renders the current game state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.raster.Flush(m.screen)
	drawOverlay(m.screen, m.raster.Rows(), overlayLines(m.state, m.runner.Paused(), m.feedback.NewBest()))
	return renderScreen(m.screen, m.styles) + "\n" + m.help.View(m.keys)
}

// Run starts a game screen on the local terminal.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
