package engine

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bird/internal/core"
)

type savedRun struct {
	score  int
	reason string
	d      time.Duration
}

type fakeRecorder struct {
	runs []savedRun
	err  error
}

func (f *fakeRecorder) SaveRun(score int, reason string, d time.Duration) error {
	if f.err != nil {
		return f.err
	}
	f.runs = append(f.runs, savedRun{score, reason, d})
	return nil
}

type fakeSounder struct {
	frames int
}

func (f *fakeSounder) PlayEvents([]core.Event) { f.frames++ }

func TestFeedbackRecordsScoringRuns(t *testing.T) {
	rec := &fakeRecorder{}
	snd := &fakeSounder{}
	fb := NewFeedback(snd, rec, nil)

	fb.Handle([]core.Event{{Kind: core.EventStarted}})
	fb.Handle([]core.Event{
		{Kind: core.EventScored, Score: 3},
		{Kind: core.EventCrashed, Score: 3, Reason: "obstacle", Duration: 2 * time.Second},
		{Kind: core.EventNewBest, Score: 3},
	})
	if !fb.NewBest() {
		t.Error("new best should be flagged")
	}
	fb.Handle(nil)

	fb.Handle([]core.Event{{Kind: core.EventStarted}})
	if fb.NewBest() {
		t.Error("starting a run should clear the new best flag")
	}
	fb.Handle([]core.Event{{Kind: core.EventCrashed, Score: 0, Reason: "boundary"}})

	if len(rec.runs) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(rec.runs))
	}
	if got := rec.runs[0]; got != (savedRun{3, "obstacle", 2 * time.Second}) {
		t.Errorf("saved run = %+v", got)
	}
	if snd.frames != 4 {
		t.Errorf("sound saw %d frames, expected 4 (empty frames skipped)", snd.frames)
	}
}

func TestFeedbackLogsSaveFailures(t *testing.T) {
	var buf bytes.Buffer
	fb := NewFeedback(nil, &fakeRecorder{err: errors.New("disk full")}, log.New(&buf))

	fb.Handle([]core.Event{{Kind: core.EventCrashed, Score: 1}})
	if !strings.Contains(buf.String(), "disk full") {
		t.Errorf("save failure not logged: %q", buf.String())
	}
}

func TestFeedbackWithoutSinks(t *testing.T) {
	fb := NewFeedback(nil, nil, nil)
	fb.Handle([]core.Event{{Kind: core.EventCrashed, Score: 5}, {Kind: core.EventNewBest}})
	if !fb.NewBest() {
		t.Error("new best should be tracked without sinks")
	}
}
