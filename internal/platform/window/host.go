package window

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-bird/internal/audio"
	"github.com/vovakirdan/tui-bird/internal/config"
	"github.com/vovakirdan/tui-bird/internal/core"
	"github.com/vovakirdan/tui-bird/internal/engine"
	"github.com/vovakirdan/tui-bird/internal/games/bird"
	"github.com/vovakirdan/tui-bird/internal/storage"
)

// Title is the window title.
const Title = "Bird"

// Options configures a window host.
type Options struct {
	Config config.BirdConfig
	Seed   int64

	Store  *storage.BestStore // May be nil
	Audio  *audio.Player      // May be nil
	Logger *log.Logger        // May be nil
}

// Host implements ebiten.Game for one game of bird.
type Host struct {
	game     *bird.Game
	runner   *engine.Runner
	feedback *engine.Feedback
	logger   *log.Logger
	canvas   Canvas

	state         core.GameState
	width, height int
	keys          []ebiten.Key
	touches       []ebiten.TouchID
	now           func() time.Time
}

// NewHost creates a window host. The game starts idle.
func NewHost(opts Options) *Host {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
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

	return &Host{
		game:     game,
		runner:   engine.NewRunner(game, maxStep, logger),
		feedback: engine.NewFeedback(opts.Audio, runs, logger),
		logger:   logger,
		state:    game.State(),
		now:      time.Now,
	}
}

// Update reads input and advances the game by one frame.
func (h *Host) Update() error {
	h.keys = inpututil.AppendJustPressedKeys(h.keys[:0])
	for _, a := range actionsFor(h.keys) {
		if a == core.ActionQuit {
			return ebiten.Termination
		}
		h.handleAction(a)
	}

	h.touches = inpututil.AppendJustPressedTouchIDs(h.touches[:0])
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || len(h.touches) > 0 {
		h.tap()
	}

	h.step()
	return nil
}

// handleAction applies one game action.
func (h *Host) handleAction(a core.Action) {
	switch a {
	case core.ActionPause:
		if h.state.Running() || h.runner.Paused() {
			paused := h.runner.TogglePause()
			h.logger.Debug("pause toggled", "paused", paused)
		}
	case core.ActionJump, core.ActionRestart:
		if !h.runner.Paused() {
			h.game.HandleAction(a)
		}
	}
}

// tap flaps while running and starts a run otherwise.
func (h *Host) tap() {
	switch {
	case h.runner.Paused():
	case h.state.Running():
		h.game.RequestImpulse()
	default:
		h.game.RequestRestart()
	}
}

// step ticks the game without drawing; Draw renders on ebiten's schedule.
func (h *Host) step() {
	res := h.runner.Frame(h.now(), nil)
	h.state = res.State
	h.feedback.Handle(res.Events)
}

// Draw renders the game and any message box.
func (h *Host) Draw(screen *ebiten.Image) {
	h.canvas.Target(screen)
	h.runner.Draw(&h.canvas)
	drawOverlay(&h.canvas, overlayLines(h.state, h.runner.Paused(), h.feedback.NewBest()))
}

// Layout uses the window size as the logical size and passes changes on to
// the game.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != h.width || outsideHeight != h.height {
		h.width, h.height = outsideWidth, outsideHeight
		h.game.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// State returns the game state as of the last frame.
func (h *Host) State() core.GameState {
	return h.state
}

// Run opens a window and plays until it is closed or q is pressed.
func Run(opts Options) error {
	ebiten.SetWindowSize(opts.Config.Window.Width, opts.Config.Window.Height)
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewHost(opts)); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
