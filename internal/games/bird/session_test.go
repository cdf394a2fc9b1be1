package bird

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-bird/internal/core"
)

// memStore is an in-memory BestStore that records writes.
type memStore struct {
	best    int
	writes  []int
	readErr error
	saveErr error
}

func (m *memStore) ReadBest() (int, error) {
	if m.readErr != nil {
		return 0, m.readErr
	}
	return m.best, nil
}

func (m *memStore) WriteBest(best int) error {
	m.writes = append(m.writes, best)
	if m.saveErr != nil {
		return m.saveErr
	}
	m.best = best
	return nil
}

func TestSessionLifecycle(t *testing.T) {
	s, err := NewSession(nil)
	if err != nil {
		t.Fatalf("NewSession(nil) failed: %v", err)
	}
	if s.Phase() != core.PhaseNotStarted {
		t.Fatalf("Phase() = %v, expected not-started", s.Phase())
	}

	s.AddScore(3)
	if s.Score() != 0 {
		t.Error("score should not change before a run starts")
	}

	if !s.Start() {
		t.Fatal("Start() from not-started should succeed")
	}
	if s.Start() {
		t.Error("Start() while running should be refused")
	}

	s.AddScore(1)
	s.AddScore(1)
	s.AddScore(-4)
	if s.Score() != 2 {
		t.Errorf("Score() = %d, expected 2", s.Score())
	}

	newBest, err := s.End()
	if err != nil || !newBest {
		t.Fatalf("End() = (%v, %v), expected (true, nil)", newBest, err)
	}
	if s.Phase() != core.PhaseEnded || s.Best() != 2 {
		t.Errorf("after End: phase %v best %d", s.Phase(), s.Best())
	}

	if !s.Start() {
		t.Fatal("Start() after end should succeed")
	}
	if s.Score() != 0 {
		t.Errorf("Start() should reset score, got %d", s.Score())
	}
}

func TestBestUpdatesOncePerRun(t *testing.T) {
	store := &memStore{best: 5}
	s, err := NewSession(store)
	if err != nil {
		t.Fatal(err)
	}

	runs := []struct {
		score    int
		wantBest int
		newBest  bool
	}{
		{3, 5, false},
		{5, 5, false}, // equal is not an improvement
		{8, 8, true},
		{0, 8, false},
		{9, 9, true},
	}

	for i, run := range runs {
		s.Start()
		s.AddScore(run.score)
		if s.BeatingBest() != (run.score > s.Best()) {
			t.Errorf("run %d: BeatingBest() wrong", i)
		}
		got, err := s.End()
		if err != nil {
			t.Fatalf("run %d: End() error: %v", i, err)
		}
		if got != run.newBest {
			t.Errorf("run %d: newBest = %v, expected %v", i, got, run.newBest)
		}
		if s.Best() != run.wantBest {
			t.Errorf("run %d: Best() = %d, expected %d", i, s.Best(), run.wantBest)
		}

		// A second End in the same run changes nothing.
		if again, _ := s.End(); again {
			t.Errorf("run %d: second End() reported a new best", i)
		}
	}

	if want := []int{8, 9}; len(store.writes) != len(want) || store.writes[0] != 8 || store.writes[1] != 9 {
		t.Errorf("store writes = %v, expected %v", store.writes, want)
	}
}

func TestSessionStoreFailures(t *testing.T) {
	readErr := errors.New("disk gone")
	s, err := NewSession(&memStore{best: 40, readErr: readErr})
	if !errors.Is(err, readErr) {
		t.Errorf("NewSession() error = %v, expected %v", err, readErr)
	}
	if s == nil || s.Best() != 0 {
		t.Fatal("unreadable store should mean best = 0")
	}

	saveErr := errors.New("read-only")
	store := &memStore{saveErr: saveErr}
	s, _ = NewSession(store)
	s.Start()
	s.AddScore(4)
	newBest, err := s.End()
	if !newBest || !errors.Is(err, saveErr) {
		t.Errorf("End() = (%v, %v), expected (true, %v)", newBest, err, saveErr)
	}
	if s.Best() != 4 {
		t.Errorf("in-memory best should still update, got %d", s.Best())
	}
}

func TestSessionNegativeStoredBest(t *testing.T) {
	s, err := NewSession(&memStore{best: -3})
	if err != nil {
		t.Fatal(err)
	}
	if s.Best() != 0 {
		t.Errorf("Best() = %d, expected 0", s.Best())
	}
}
