package core

import "time"

// DefaultMaxStep caps a single simulation step. Anything longer (a stalled
// frame, a backgrounded terminal) is simulated as this much time so a fast
// body cannot tunnel through a pipe.
const DefaultMaxStep = 33 * time.Millisecond

// Clock turns wall-clock samples into capped simulation steps.
type Clock struct {
	maxStep time.Duration
	last    time.Time
	started bool
}

// NewClock creates a clock that never yields more than maxStep per sample.
// A non-positive maxStep selects DefaultMaxStep.
func NewClock(maxStep time.Duration) *Clock {
	if maxStep <= 0 {
		maxStep = DefaultMaxStep
	}
	return &Clock{maxStep: maxStep}
}

// MaxStep returns the cap applied to every step.
func (c *Clock) MaxStep() time.Duration {
	return c.maxStep
}

// Advance records now and returns the elapsed time since the previous
// sample in seconds, clamped to [0, maxStep]. The first sample after
// construction or Reset yields 0.
func (c *Clock) Advance(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	elapsed := now.Sub(c.last)
	c.last = now
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > c.maxStep {
		elapsed = c.maxStep
	}
	return elapsed.Seconds()
}

// Reset forgets the previous sample, so the next Advance yields 0.
func (c *Clock) Reset() {
	c.started = false
}
