package engine

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bird/internal/core"
)

// Sounder plays the sounds of one frame's events.
type Sounder interface {
	PlayEvents(events []core.Event)
}

// RunRecorder persists finished runs.
type RunRecorder interface {
	SaveRun(score int, reason string, d time.Duration) error
}

// Feedback reacts to frame events outside the simulation. It plays sounds,
// records finished runs and remembers whether the last run set a new best.
// Nil fields are skipped.
type Feedback struct {
	sound   Sounder
	runs    RunRecorder
	logger  *log.Logger
	newBest bool
}

// NewFeedback creates a Feedback. Any argument may be nil.
func NewFeedback(sound Sounder, runs RunRecorder, logger *log.Logger) *Feedback {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Feedback{sound: sound, runs: runs, logger: logger}
}

// Handle processes the events of one frame.
func (f *Feedback) Handle(events []core.Event) {
	if len(events) == 0 {
		return
	}
	if f.sound != nil {
		f.sound.PlayEvents(events)
	}
	for _, e := range events {
		switch e.Kind {
		case core.EventStarted:
			f.newBest = false
		case core.EventNewBest:
			f.newBest = true
		case core.EventCrashed:
			f.record(e)
		}
	}
}

// record stores a finished run. Runs without a point are not kept.
func (f *Feedback) record(e core.Event) {
	if f.runs == nil || e.Score <= 0 {
		return
	}
	if err := f.runs.SaveRun(e.Score, e.Reason, e.Duration); err != nil {
		f.logger.Warn("could not save run", "score", e.Score, "err", err)
	}
}

// NewBest reports whether the last finished run beat the previous best.
func (f *Feedback) NewBest() bool {
	return f.newBest
}
