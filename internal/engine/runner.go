// Package engine drives a simulation from wall-clock frames. Hosts call
// Frame once per scheduled frame; the runner turns the frame time into a
// capped step, ticks the simulation and always renders afterwards.
package engine

import (
	"fmt"
	"io"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bird/internal/core"
)

// Sim is a frame-driven simulation.
type Sim interface {
	Tick(dt float64) core.StepResult
	Render(dst core.Surface)
	State() core.GameState
}

// Runner owns the clock for one simulation.
type Runner struct {
	sim    Sim
	clock  *core.Clock
	logger *log.Logger
	paused bool
	frames uint64
}

// NewRunner creates a runner with a step cap of maxStep (zero selects
// core.DefaultMaxStep). A nil logger discards output.
func NewRunner(sim Sim, maxStep time.Duration, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		sim:    sim,
		clock:  core.NewClock(maxStep),
		logger: logger,
	}
}

// Frame advances the simulation to now and renders it onto dst.
// While paused, the simulation is not ticked but still rendered. A panic in
// either phase is logged and the frame is dropped; the next frame runs
// normally.
func (r *Runner) Frame(now time.Time, dst core.Surface) core.StepResult {
	r.frames++
	dt := r.clock.Advance(now)

	res := core.StepResult{State: r.sim.State()}
	if !r.paused {
		if err := r.safely("tick", func() { res = r.sim.Tick(dt) }); err != nil {
			res = core.StepResult{State: r.sim.State()}
		}
	}
	r.Draw(dst)
	return res
}

// Draw renders the simulation without ticking it, for hosts that draw on a
// separate schedule. A nil dst is ignored.
func (r *Runner) Draw(dst core.Surface) {
	if dst == nil {
		return
	}
	r.safely("render", func() { r.sim.Render(dst) }) //nolint:errcheck // Already logged
}

func (r *Runner) safely(phase string, fn func()) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("engine: %s panicked: %v", phase, v)
			r.logger.Error("frame dropped", "phase", phase, "frame", r.frames, "panic", v, "stack", string(debug.Stack()))
		}
	}()
	fn()
	return nil
}

// Paused reports whether the runner is paused.
func (r *Runner) Paused() bool {
	return r.paused
}

// SetPaused pauses or resumes ticking. Resuming restarts the clock, so the
// time spent paused is never simulated.
func (r *Runner) SetPaused(paused bool) {
	if r.paused && !paused {
		r.clock.Reset()
	}
	r.paused = paused
}

// TogglePause flips the paused state and returns the new value.
func (r *Runner) TogglePause() bool {
	r.SetPaused(!r.paused)
	return r.paused
}

// Frames returns how many frames have been run.
func (r *Runner) Frames() uint64 {
	return r.frames
}
