package core

// Surface accepts primitive draw commands in logical pixels. The origin is
// the top-left corner and Y grows downwards. Later commands paint over
// earlier ones.
type Surface interface {
	// Size returns the drawable width and height in logical pixels.
	Size() (w, h float64)

	FillRect(x, y, w, h float64, c Color)
	FillRoundedRect(x, y, w, h, radius float64, c Color)
	FillCircle(cx, cy, r float64, c Color)
	FillPath(p Path, c Color)

	// DrawText draws a single line with its top-left corner at (x, y).
	DrawText(x, y float64, text string, c Color)
}
