// Package bird implements a side-scrolling avoider in the style of Flappy
// Bird. The bird falls under gravity, flaps upwards on request and must
// pass through the gaps of an endless stream of pipes.
//
// Game is single-threaded: hosts call the Request* methods and Resize from
// their input handlers and drive Tick and Render from one loop. Requests are
// only recorded there and take effect at the start of the next tick.
package bird

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bird/internal/config"
	"github.com/vovakirdan/tui-bird/internal/core"
)

// World is the complete mutable simulation state. Tick mutates it; Render
// only reads it.
type World struct {
	Width, Height float64
	Bird          Body
	Pipes         *ObstacleStream
	Clouds        *CloudLayer
	Session       *Session
	Elapsed       float64 // Simulated seconds since the current run started
}

// GroundLine returns the y-coordinate of the top of the ground band.
func (w *World) GroundLine(groundHeight float64) float64 {
	return w.Height - groundHeight
}

// hasViewport reports whether there is anything to simulate or draw.
func (w *World) hasViewport() bool {
	return w.Width > 0 && w.Height > 0
}

type viewport struct {
	w, h float64
}

// Game sequences the simulation and owns its World.
type Game struct {
	cfg     config.BirdConfig
	world   World
	intents core.Intents
	resize  *viewport // Applied at the start of the next tick
	store   BestStore
	logger  *log.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithStore persists the best score through store.
func WithStore(store BestStore) Option {
	return func(g *Game) { g.store = store }
}

// WithLogger reports run lifecycle and store failures to logger.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// New creates a game for a playfield of rc.Width x rc.Height logical pixels.
// A zero seed picks one from the current time.
func New(cfg config.BirdConfig, rc core.RuntimeConfig, opts ...Option) *Game {
	g := &Game{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session, err := NewSession(g.store)
	if err != nil {
		g.logger.Warn("best score unavailable, starting from 0", "err", err)
	}

	g.world = World{
		Bird: Body{
			X:      cfg.Bird.X,
			Radius: cfg.Bird.Radius,
		},
		Pipes:   NewObstacleStream(cfg.Pipes, seed, rc.Width, rc.Height),
		Clouds:  NewCloudLayer(cfg.Clouds, seed+1),
		Session: session,
	}
	g.applySize(rc.Width, rc.Height)
	return g
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.BirdConfig {
	return g.cfg
}

// World returns the simulation state for rendering and inspection.
func (g *Game) World() *World {
	return &g.world
}

// RequestImpulse asks for a flap on the next tick.
func (g *Game) RequestImpulse() {
	g.intents.Request(core.ActionJump)
}

// RequestRestart asks for a new run on the next tick. It is ignored while a
// run is in progress.
func (g *Game) RequestRestart() {
	g.intents.Request(core.ActionRestart)
}

// HandleAction records a host action. Non-simulation actions are ignored.
func (g *Game) HandleAction(a core.Action) {
	g.intents.Request(a)
}

// Resize schedules a new playfield size for the next tick.
func (g *Game) Resize(width, height float64) {
	g.resize = &viewport{w: width, h: height}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.world.Session.State()
}

// applySize establishes a playfield size and rebuilds everything derived
// from it. Pipes keep their positions; the cloud batch is recreated.
func (g *Game) applySize(width, height float64) {
	g.world.Width = width
	g.world.Height = height
	g.world.Pipes.Resize(width, height)
	if !g.world.hasViewport() {
		return
	}
	g.world.Clouds.InitBatch(width, height)
	if g.world.Session.Phase() == core.PhaseNotStarted {
		g.world.Bird.Y = height * g.cfg.Bird.IdleRatio
		g.world.Bird.VY = 0
	}
}

// Tick advances the simulation by dt seconds. dt is clamped to
// [0, world.max_step_ms]; a NaN step counts as zero.
//
// Pending resizes and input requests are consumed first. While a run is in
// progress the order is: pipe spawn, bird integration, pipe advance and cull,
// cloud advance and recycle, scoring, termination.
func (g *Game) Tick(dt float64) core.StepResult {
	if g.resize != nil {
		if g.resize.w != g.world.Width || g.resize.h != g.world.Height {
			g.applySize(g.resize.w, g.resize.h)
		}
		g.resize = nil
	}
	in := g.intents.Take()

	if !g.world.hasViewport() {
		return core.StepResult{State: g.State()}
	}
	dt = g.clampStep(dt)

	var events []core.Event
	session := g.world.Session

	switch session.Phase() {
	case core.PhaseRunning:
		if in.Impulse {
			ApplyImpulse(&g.world.Bird, g.cfg.Physics.Impulse)
			events = append(events, core.Event{Kind: core.EventFlapped, Score: session.Score()})
		}
	case core.PhaseEnded:
		if in.Restart || (in.Impulse && g.cfg.Controls.ImpulseRestarts) {
			events = append(events, g.start())
		}
	case core.PhaseNotStarted:
		if in.Restart {
			events = append(events, g.start())
		}
	}

	if session.Phase() != core.PhaseRunning {
		return core.StepResult{State: g.State(), Events: events}
	}

	events = g.step(dt, events)
	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) clampStep(dt float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	if limit := float64(g.cfg.World.MaxStepMs) / 1000; limit > 0 && dt > limit {
		return limit
	}
	return dt
}

// start begins a new run.
func (g *Game) start() core.Event {
	g.world.Session.Start()
	g.world.Pipes.Restart()
	g.world.Bird.Y = g.world.Height * g.cfg.Bird.StartRatio
	g.world.Bird.VY = 0
	g.world.Elapsed = 0
	g.logger.Info("run started", "best", g.world.Session.Best())
	return core.Event{Kind: core.EventStarted}
}

// step runs one simulation step of an active run.
func (g *Game) step(dt float64, events []core.Event) []core.Event {
	w := &g.world
	session := w.Session

	w.Elapsed += dt
	w.Pipes.TrySpawn(dt * 1000)

	Integrate(&w.Bird, g.cfg.Physics.Gravity, dt)

	w.Pipes.Advance(dt)
	w.Pipes.Cull()

	w.Clouds.Advance(dt)
	w.Clouds.Recycle(w.Width, w.Height)

	for n := w.Pipes.ScorePass(w.Bird.X); n > 0; n-- {
		session.AddScore(1)
		events = append(events, core.Event{Kind: core.EventScored, Score: session.Score()})
	}

	reason := CheckTermination(w.Bird, w.GroundLine(g.cfg.World.GroundHeight),
		w.Pipes.Obstacles(), g.cfg.Pipes.Width, g.cfg.Pipes.Gap)
	if reason == TerminationNone {
		return events
	}

	newBest, err := session.End()
	if err != nil {
		g.logger.Error("failed to save best score", "best", session.Best(), "err", err)
	}
	g.logger.Info("run ended", "score", session.Score(), "reason", reason, "new_best", newBest)

	events = append(events, core.Event{
		Kind:     core.EventCrashed,
		Score:    session.Score(),
		Reason:   reason.String(),
		Duration: time.Duration(w.Elapsed * float64(time.Second)),
	})
	if newBest {
		events = append(events, core.Event{Kind: core.EventNewBest, Score: session.Score()})
	}
	return events
}
