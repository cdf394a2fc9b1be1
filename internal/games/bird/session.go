package bird

import "github.com/vovakirdan/tui-bird/internal/core"

// BestStore persists the best score between sessions.
type BestStore interface {
	ReadBest() (int, error)
	WriteBest(best int) error
}

// Session tracks the run lifecycle and the score counters.
type Session struct {
	phase core.Phase
	score int
	best  int
	store BestStore
}

// NewSession creates a session in the not-started phase. A nil store, a
// failing read or a negative stored value all mean best = 0; the read error
// is returned so the caller can report it.
func NewSession(store BestStore) (*Session, error) {
	s := &Session{store: store}
	if store == nil {
		return s, nil
	}
	best, err := store.ReadBest()
	if err != nil {
		return s, err
	}
	if best > 0 {
		s.best = best
	}
	return s, nil
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() core.Phase { return s.phase }

// Score returns the current run's score.
func (s *Session) Score() int { return s.score }

// Best returns the best score seen so far.
func (s *Session) Best() int { return s.best }

// BeatingBest reports whether the running score is above the stored best.
func (s *Session) BeatingBest() bool { return s.score > s.best }

// CanStart reports whether Start would be accepted.
func (s *Session) CanStart() bool {
	return s.phase == core.PhaseNotStarted || s.phase == core.PhaseEnded
}

// Start begins a new run with a zero score. It is a no-op while running.
func (s *Session) Start() bool {
	if !s.CanStart() {
		return false
	}
	s.phase = core.PhaseRunning
	s.score = 0
	return true
}

// AddScore adds passed obstacles to the running score.
func (s *Session) AddScore(n int) {
	if s.phase != core.PhaseRunning || n <= 0 {
		return
	}
	s.score += n
}

// End finishes the running run. If the final score beats the best, the best
// is raised and written to the store; newBest reports that. Ending a session
// that is not running does nothing, so a run updates the best at most once.
// A write failure keeps the in-memory best and is returned.
func (s *Session) End() (newBest bool, err error) {
	if s.phase != core.PhaseRunning {
		return false, nil
	}
	s.phase = core.PhaseEnded
	if s.score <= s.best {
		return false, nil
	}
	s.best = s.score
	if s.store != nil {
		err = s.store.WriteBest(s.best)
	}
	return true, err
}

// State returns the externally visible summary.
func (s *Session) State() core.GameState {
	return core.GameState{Phase: s.phase, Score: s.score, Best: s.best}
}
