package core

import "math"

// curveSegments is the number of line segments used to flatten one curve.
const curveSegments = 6

// Point is a position in logical pixels.
type Point struct {
	X, Y float64
}

// Path is a closed polygon in logical pixels. Curves are flattened into
// line segments when the path is built, so every backend only has to fill
// a polygon.
type Path struct {
	Points []Point
}

// MoveTo starts the outline at p. It is only meaningful on an empty path.
func (p *Path) MoveTo(x, y float64) {
	p.Points = append(p.Points, Point{X: x, Y: y})
}

// LineTo appends a straight edge.
func (p *Path) LineTo(x, y float64) {
	p.Points = append(p.Points, Point{X: x, Y: y})
}

// QuadTo appends a quadratic Bézier from the current point through the
// control point (cx, cy) to (x, y).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	if len(p.Points) == 0 {
		p.MoveTo(x, y)
		return
	}
	start := p.Points[len(p.Points)-1]
	for i := 1; i <= curveSegments; i++ {
		t := float64(i) / curveSegments
		u := 1 - t
		p.Points = append(p.Points, Point{
			X: u*u*start.X + 2*u*t*cx + t*t*x,
			Y: u*u*start.Y + 2*u*t*cy + t*t*y,
		})
	}
}

// Empty reports whether the path encloses nothing.
func (p Path) Empty() bool {
	return len(p.Points) < 3
}

// Bounds returns the bounding box of the outline.
func (p Path) Bounds() RectF {
	if len(p.Points) == 0 {
		return RectF{}
	}
	b := RectF{Left: p.Points[0].X, Top: p.Points[0].Y, Right: p.Points[0].X, Bottom: p.Points[0].Y}
	for _, pt := range p.Points[1:] {
		b.Left = math.Min(b.Left, pt.X)
		b.Right = math.Max(b.Right, pt.X)
		b.Top = math.Min(b.Top, pt.Y)
		b.Bottom = math.Max(b.Bottom, pt.Y)
	}
	return b
}

// Contains reports whether (x, y) is inside the outline (even-odd rule).
func (p Path) Contains(x, y float64) bool {
	if p.Empty() {
		return false
	}
	inside := false
	j := len(p.Points) - 1
	for i := range p.Points {
		a, b := p.Points[i], p.Points[j]
		if (a.Y > y) != (b.Y > y) {
			crossX := a.X + (y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if x < crossX {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// RoundedRectPath builds the outline of a rectangle with corners of the
// given radius. The radius is clamped to half the shorter side; a box with
// no area yields an empty path.
func RoundedRectPath(x, y, w, h, radius float64) Path {
	var p Path
	if w <= 0 || h <= 0 {
		return p
	}
	r := math.Max(0, math.Min(radius, math.Min(w/2, h/2)))

	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.QuadTo(x+w, y, x+w, y+r)
	p.LineTo(x+w, y+h-r)
	p.QuadTo(x+w, y+h, x+w-r, y+h)
	p.LineTo(x+r, y+h)
	p.QuadTo(x, y+h, x, y+h-r)
	p.LineTo(x, y+r)
	p.QuadTo(x, y, x+r, y)
	return p
}

// EllipseArcPath builds the outline of an elliptical arc around (cx, cy)
// from angle start to end (radians, clockwise in screen space). The chord
// between the arc ends closes the shape.
func EllipseArcPath(cx, cy, rx, ry, start, end float64) Path {
	var p Path
	steps := curveSegments * 2
	for i := 0; i <= steps; i++ {
		a := start + (end-start)*float64(i)/float64(steps)
		p.LineTo(cx+rx*math.Cos(a), cy+ry*math.Sin(a))
	}
	return p
}

// TrianglePath builds a triangle outline.
func TrianglePath(a, b, c Point) Path {
	return Path{Points: []Point{a, b, c}}
}
