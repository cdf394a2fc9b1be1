package core

import (
	"testing"
	"time"
)

func TestClockFirstSampleIsZero(t *testing.T) {
	c := NewClock(0)
	if dt := c.Advance(time.Unix(100, 0)); dt != 0 {
		t.Errorf("first Advance() = %f, expected 0", dt)
	}
	if c.MaxStep() != DefaultMaxStep {
		t.Errorf("MaxStep() = %v, expected default %v", c.MaxStep(), DefaultMaxStep)
	}
}

func TestClockAdvance(t *testing.T) {
	base := time.Unix(100, 0)

	tests := []struct {
		name     string
		elapsed  time.Duration
		expected float64
	}{
		{"regular frame", 16 * time.Millisecond, 0.016},
		{"exactly the cap", 33 * time.Millisecond, 0.033},
		{"long pause is capped", 2 * time.Second, 0.033},
		{"backwards clock clamps to zero", -50 * time.Millisecond, 0},
		{"same instant", 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewClock(33 * time.Millisecond)
			c.Advance(base)
			dt := c.Advance(base.Add(tc.elapsed))
			if diff := dt - tc.expected; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Advance() = %f, expected %f", dt, tc.expected)
			}
		})
	}
}

func TestClockReset(t *testing.T) {
	c := NewClock(time.Second)
	base := time.Unix(0, 0)
	c.Advance(base)
	c.Reset()
	if dt := c.Advance(base.Add(500 * time.Millisecond)); dt != 0 {
		t.Errorf("Advance() after Reset = %f, expected 0", dt)
	}
	if dt := c.Advance(base.Add(600 * time.Millisecond)); dt < 0.099 || dt > 0.101 {
		t.Errorf("Advance() = %f, expected 0.1", dt)
	}
}
