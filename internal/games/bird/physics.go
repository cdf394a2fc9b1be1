package bird

import "github.com/vovakirdan/tui-bird/internal/core"

// Body is the controlled bird. X and Radius are fixed for the life of a
// game; Y and VY change every tick.
type Body struct {
	X      float64 // Horizontal centre
	Y      float64 // Vertical centre, grows downwards
	VY     float64 // Vertical velocity in px/s, negative = up
	Radius float64
}

// Box returns the radius-expanded bounding box of the body.
func (b Body) Box() core.RectF {
	return core.NewRectF(b.X-b.Radius, b.Y-b.Radius, 2*b.Radius, 2*b.Radius)
}

// Integrate advances velocity by gravity and then position by velocity.
// Position is left unconstrained; boundaries are checked afterwards.
func Integrate(b *Body, gravity, dt float64) {
	b.VY += gravity * dt
	b.Y += b.VY * dt
}

// ApplyImpulse sets the vertical velocity. The set is absolute, so any
// number of impulses within one tick have the same effect as one.
func ApplyImpulse(b *Body, impulse float64) {
	b.VY = impulse
}

// Termination is the result of a collision query.
type Termination int

const (
	TerminationNone Termination = iota
	TerminationBoundary
	TerminationObstacle
)

// String returns a human-readable name for the termination cause.
func (t Termination) String() string {
	switch t {
	case TerminationNone:
		return "none"
	case TerminationBoundary:
		return "boundary"
	case TerminationObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// CheckTermination reports whether the body has hit the ceiling, the ground
// line or a pipe. Touching an edge exactly is not a hit: the ceiling at 0,
// the ground line, a pipe's left or right side and the gap edges all count
// as open space.
func CheckTermination(b Body, groundLine float64, obstacles []Obstacle, pipeWidth, gap float64) Termination {
	box := b.Box()
	if box.Top < 0 || box.Bottom > groundLine {
		return TerminationBoundary
	}

	for _, o := range obstacles {
		if !o.spansX(box, pipeWidth) {
			continue
		}
		if !o.GapBand(gap).ContainsSpan(box.Top, box.Bottom) {
			return TerminationObstacle
		}
	}
	return TerminationNone
}
