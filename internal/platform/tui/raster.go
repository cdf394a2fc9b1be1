package tui

import (
	"math"

	"github.com/vovakirdan/tui-bird/internal/core"
)

const halfBlock = '▀'

// Raster is a core.Surface that paints into terminal cells. Every cell
// covers cellW x cellH logical pixels and is split into an upper and a
// lower half, giving two square-ish subpixels per cell. A subpixel takes
// the colour of the last shape covering its centre.
type Raster struct {
	cellW, cellH float64
	cols, rows   int
	px           []core.Color // cols x rows*2 subpixels, row-major
	text         []textCell   // cols x rows
}

type textCell struct {
	r  rune
	fg core.Color
}

// NewRaster creates an empty raster with the given cell size in logical
// pixels.
func NewRaster(cellW, cellH float64) *Raster {
	return &Raster{cellW: cellW, cellH: cellH}
}

// Resize sets the raster size in cells and clears it.
func (r *Raster) Resize(cols, rows int) {
	cols, rows = core.Max(cols, 0), core.Max(rows, 0)
	if cols != r.cols || rows != r.rows {
		r.cols, r.rows = cols, rows
		r.px = make([]core.Color, cols*rows*2)
		r.text = make([]textCell, cols*rows)
	}
	r.Clear()
}

// Clear resets every subpixel and removes all text.
func (r *Raster) Clear() {
	for i := range r.px {
		r.px[i] = core.ColorDefault
	}
	for i := range r.text {
		r.text[i] = textCell{}
	}
}

// Cols returns the width in cells.
func (r *Raster) Cols() int { return r.cols }

// Rows returns the height in cells.
func (r *Raster) Rows() int { return r.rows }

// Size returns the drawable area in logical pixels.
func (r *Raster) Size() (w, h float64) {
	return float64(r.cols) * r.cellW, float64(r.rows) * r.cellH
}

// Pixel returns the colour of subpixel (x, y). y counts half rows.
func (r *Raster) Pixel(x, y int) core.Color {
	if x < 0 || x >= r.cols || y < 0 || y >= r.rows*2 {
		return core.ColorDefault
	}
	return r.px[y*r.cols+x]
}

func (r *Raster) subW() float64 { return r.cellW }
func (r *Raster) subH() float64 { return r.cellH / 2 }

// span returns the subpixel index range [lo, hi) whose centres lie in
// [from, to) along one axis.
func span(from, to, size float64, limit int) (lo, hi int) {
	lo = int(math.Ceil(from/size - 0.5))
	hi = int(math.Ceil(to/size - 0.5))
	return core.Clamp(lo, 0, limit), core.Clamp(hi, 0, limit)
}

func (r *Raster) set(x, y int, c core.Color) {
	r.px[y*r.cols+x] = c
	// Shapes drawn after text hide it
	r.text[(y/2)*r.cols+x] = textCell{}
}

// fill paints every subpixel in the box whose centre satisfies inside.
func (r *Raster) fill(box core.RectF, c core.Color, inside func(x, y float64) bool) {
	if r.cols == 0 || r.rows == 0 {
		return
	}
	sw, sh := r.subW(), r.subH()
	x0, x1 := span(box.Left, box.Right, sw, r.cols)
	y0, y1 := span(box.Top, box.Bottom, sh, r.rows*2)
	for y := y0; y < y1; y++ {
		cy := (float64(y) + 0.5) * sh
		for x := x0; x < x1; x++ {
			cx := (float64(x) + 0.5) * sw
			if inside == nil || inside(cx, cy) {
				r.set(x, y, c)
			}
		}
	}
}

// FillRect fills an axis-aligned rectangle.
func (r *Raster) FillRect(x, y, w, h float64, c core.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	r.fill(core.NewRectF(x, y, w, h), c, nil)
}

// FillRoundedRect fills a rectangle with rounded corners.
func (r *Raster) FillRoundedRect(x, y, w, h, radius float64, c core.Color) {
	r.FillPath(core.RoundedRectPath(x, y, w, h, radius), c)
}

// FillCircle fills a disc.
func (r *Raster) FillCircle(cx, cy, radius float64, c core.Color) {
	if radius <= 0 {
		return
	}
	box := core.RectF{Left: cx - radius, Top: cy - radius, Right: cx + radius, Bottom: cy + radius}
	r2 := radius * radius
	r.fill(box, c, func(x, y float64) bool {
		dx, dy := x-cx, y-cy
		return dx*dx+dy*dy <= r2
	})
}

// FillPath fills a closed outline using the even-odd rule.
func (r *Raster) FillPath(p core.Path, c core.Color) {
	if p.Empty() {
		return
	}
	r.fill(p.Bounds(), c, p.Contains)
}

// DrawText places text in the cell containing (x, y), one rune per cell.
func (r *Raster) DrawText(x, y float64, text string, c core.Color) {
	if r.cols == 0 || r.rows == 0 {
		return
	}
	col := int(math.Floor(x / r.cellW))
	row := int(math.Floor(y / r.cellH))
	if row < 0 || row >= r.rows {
		return
	}
	for _, ch := range text {
		if col >= 0 && col < r.cols {
			r.text[row*r.cols+col] = textCell{r: ch, fg: c}
		}
		col++
	}
}

// Flush writes the raster into s, which is resized to match. A cell whose
// halves differ becomes an upper half block with the top colour as
// foreground and the bottom colour as background.
func (r *Raster) Flush(s *core.Screen) {
	s.Resize(r.cols, r.rows)
	for row := 0; row < r.rows; row++ {
		for col := 0; col < r.cols; col++ {
			top := r.px[(row*2)*r.cols+col]
			bottom := r.px[(row*2+1)*r.cols+col]

			if t := r.text[row*r.cols+col]; t.r != 0 {
				s.SetCell(col, row, core.Cell{Rune: t.r, Fg: t.fg, Bg: top})
				continue
			}
			if top == bottom {
				s.SetCell(col, row, core.Cell{Rune: ' ', Bg: top})
				continue
			}
			s.SetCell(col, row, core.Cell{Rune: halfBlock, Fg: top, Bg: bottom})
		}
	}
}
