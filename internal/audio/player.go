package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-bird/internal/config"
	"github.com/vovakirdan/tui-bird/internal/core"
)

// SoundFor maps a game event to its sound effect.
func SoundFor(kind core.EventKind) Sound {
	switch kind {
	case core.EventStarted:
		return SoundStart
	case core.EventFlapped:
		return SoundFlap
	case core.EventScored:
		return SoundScore
	case core.EventCrashed:
		return SoundCrash
	case core.EventNewBest:
		return SoundNewBest
	default:
		return SoundNone
	}
}

// Sink receives finished streams. The speaker-backed sink is a beep.Mixer;
// tests can collect streams instead.
type Sink interface {
	Add(s ...beep.Streamer)
}

// Player turns game events into sound effects.
// A nil *Player is valid and plays nothing.
type Player struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	sink   Sink
	lock   func()
	unlock func()
	closed bool
}

// Open initializes the speaker and returns a player mixing into it. It
// returns (nil, nil) when audio is disabled in cfg.
func Open(cfg config.Audio) (*Player, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	rate := beep.SampleRate(cfg.SampleRate)
	if rate <= 0 {
		rate = 44100
	}

	if err := speaker.Init(rate, rate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: cannot initialize speaker: %w", err)
	}

	mixer := &beep.Mixer{}
	speaker.Play(mixer)

	return &Player{
		rate:   rate,
		volume: cfg.Volume,
		sink:   mixer,
		lock:   speaker.Lock,
		unlock: speaker.Unlock,
	}, nil
}

// NewPlayer creates a player writing into sink without touching the speaker.
func NewPlayer(sink Sink, rate beep.SampleRate, volume float64) *Player {
	return &Player{
		rate:   rate,
		volume: volume,
		sink:   sink,
		lock:   func() {},
		unlock: func() {},
	}
}

// Play queues one sound effect.
func (p *Player) Play(s Sound) {
	if p == nil {
		return
	}
	st := Effect(s, p.rate, p.volume)
	if st == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.lock()
	p.sink.Add(st)
	p.unlock()
}

// PlayEvents plays the sound of each event of a tick. A score that also sets
// a new best only plays the new-best fanfare; several scores in one tick
// play once.
func (p *Player) PlayEvents(events []core.Event) {
	if p == nil || len(events) == 0 {
		return
	}
	played := make(map[Sound]bool, len(events))
	newBest := false
	for _, e := range events {
		if e.Kind == core.EventNewBest {
			newBest = true
		}
	}
	for _, e := range events {
		s := SoundFor(e.Kind)
		if s == SoundNone || played[s] || (newBest && s == SoundScore) {
			continue
		}
		played[s] = true
		p.Play(s)
	}
}

// Close stops queueing sounds and silences the mixer.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	if m, ok := p.sink.(*beep.Mixer); ok {
		p.lock()
		m.Clear()
		p.unlock()
	}
}
