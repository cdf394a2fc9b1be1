package core

import "time"

// RuntimeConfig contains what a host hands to the game at initialization.
type RuntimeConfig struct {
	Width  float64 // Playfield width in logical pixels
	Height float64 // Playfield height in logical pixels
	Seed   int64   // RNG seed for deterministic gameplay (0 = host picks)
}

// Phase is the lifecycle stage of a run.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseEnded
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// GameState is the externally visible summary of a game.
type GameState struct {
	Phase Phase
	Score int
	Best  int
}

// Running reports whether a run is in progress.
func (s GameState) Running() bool { return s.Phase == PhaseRunning }

// GameOver reports whether the last run has ended.
func (s GameState) GameOver() bool { return s.Phase == PhaseEnded }

// EventKind classifies something that happened during a tick.
type EventKind int

const (
	EventStarted EventKind = iota + 1
	EventFlapped
	EventScored
	EventCrashed
	EventNewBest
)

// Event is a notable occurrence within one tick. Hosts use events for
// sound and logging; the simulation never reads them back.
type Event struct {
	Kind   EventKind
	Score  int    // Score after the event
	Reason string // Crash cause for EventCrashed

	// Duration is the simulated length of the run, set on EventCrashed.
	Duration time.Duration
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
