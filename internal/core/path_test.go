package core

import (
	"math"
	"testing"
)

func TestRoundedRectPathContains(t *testing.T) {
	p := RoundedRectPath(0, 0, 100, 50, 10)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"centre", 50, 25, true},
		{"near top edge", 50, 1, true},
		{"straight left edge", 1, 25, true},
		{"cut corner", 0.5, 0.5, false},
		{"outside right", 101, 25, false},
		{"outside below", 50, 51, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%f, %f) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRoundedRectPathBounds(t *testing.T) {
	p := RoundedRectPath(10, 20, 30, 40, 2)
	b := p.Bounds()
	if b.Left != 10 || b.Top != 20 || b.Right != 40 || b.Bottom != 60 {
		t.Errorf("Bounds() = %+v, expected (10,20)-(40,60)", b)
	}
}

func TestRoundedRectPathClampsRadius(t *testing.T) {
	// A radius larger than half the side degenerates into a pill, never a
	// self-intersecting outline.
	p := RoundedRectPath(0, 0, 10, 4, 100)
	b := p.Bounds()
	if b.Width() > 10.0001 || b.Height() > 4.0001 {
		t.Errorf("oversized radius should not grow the box, got %+v", b)
	}
	if !p.Contains(5, 2) {
		t.Error("pill centre should be inside")
	}
}

func TestRoundedRectPathEmpty(t *testing.T) {
	for _, p := range []Path{
		RoundedRectPath(0, 0, 0, 10, 2),
		RoundedRectPath(0, 0, 10, -5, 2),
	} {
		if !p.Empty() {
			t.Errorf("box without area should produce an empty path, got %d points", len(p.Points))
		}
		if p.Contains(0, 0) {
			t.Error("empty path should contain nothing")
		}
	}
}

func TestEllipseArcPathHalfDome(t *testing.T) {
	// Upper half of a circle of radius 10 around (0, 0).
	p := EllipseArcPath(0, 0, 10, 10, math.Pi, 2*math.Pi)
	if !p.Contains(0, -5) {
		t.Error("point above centre should be inside the upper dome")
	}
	if p.Contains(0, 5) {
		t.Error("point below centre should be outside the upper dome")
	}
}

func TestTrianglePath(t *testing.T) {
	p := TrianglePath(Point{0, 0}, Point{0, 10}, Point{10, 5})
	if !p.Contains(2, 5) {
		t.Error("point inside triangle not reported")
	}
	if p.Contains(9, 1) {
		t.Error("point outside triangle reported inside")
	}
}
