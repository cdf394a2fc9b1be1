// Package window hosts the game in a desktop window with Ebitengine. The
// simulation ticks in ebiten's Update loop and renders through a Canvas in
// Draw.
package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-bird/internal/core"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// textAscent moves text from its top-left corner to the font baseline.
var textAscent = basicfont.Face7x13.Metrics().Ascent.Ceil()

// toColor converts a palette entry. ColorDefault is transparent.
func toColor(c core.Color) color.NRGBA {
	if c == core.ColorDefault {
		return color.NRGBA{}
	}
	r, g, b := c.RGB()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// toPath converts an outline to an ebiten vector path.
func toPath(p core.Path) *vector.Path {
	var vp vector.Path
	for i, pt := range p.Points {
		if i == 0 {
			vp.MoveTo(float32(pt.X), float32(pt.Y))
			continue
		}
		vp.LineTo(float32(pt.X), float32(pt.Y))
	}
	vp.Close()
	return &vp
}

// Canvas is a core.Surface drawing onto an ebiten image. Logical pixels
// map one to one onto image pixels.
type Canvas struct {
	dst      *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// Target sets the image the following draw calls paint on.
func (c *Canvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

// Size returns the target size in logical pixels.
func (c *Canvas) Size() (w, h float64) {
	if c.dst == nil {
		return 0, 0
	}
	b := c.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// FillRect fills an axis-aligned rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, clr core.Color) {
	if c.dst == nil || w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), toColor(clr), true)
}

// FillRoundedRect fills a rectangle with rounded corners.
func (c *Canvas) FillRoundedRect(x, y, w, h, radius float64, clr core.Color) {
	c.FillPath(core.RoundedRectPath(x, y, w, h, radius), clr)
}

// FillCircle fills a disc.
func (c *Canvas) FillCircle(cx, cy, r float64, clr core.Color) {
	if c.dst == nil || r <= 0 {
		return
	}
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), toColor(clr), true)
}

// FillPath fills a closed outline with the even-odd rule.
func (c *Canvas) FillPath(p core.Path, clr core.Color) {
	if c.dst == nil || p.Empty() {
		return
	}
	c.vertices, c.indices = toPath(p).AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])

	col := toColor(clr)
	for i := range c.vertices {
		v := &c.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR = float32(col.R) / 0xff
		v.ColorG = float32(col.G) / 0xff
		v.ColorB = float32(col.B) / 0xff
		v.ColorA = float32(col.A) / 0xff
	}
	c.dst.DrawTriangles(c.vertices, c.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.EvenOdd,
	})
}

// DrawText draws one line in the built-in bitmap font.
func (c *Canvas) DrawText(x, y float64, s string, clr core.Color) {
	if c.dst == nil {
		return
	}
	text.Draw(c.dst, s, basicfont.Face7x13, int(x), int(y)+textAscent, toColor(clr))
}
