package window

import (
	"image/color"
	"testing"

	"github.com/vovakirdan/tui-bird/internal/core"
)

func TestToColor(t *testing.T) {
	tests := []struct {
		name string
		in   core.Color
		want color.NRGBA
	}{
		{"default is transparent", core.ColorDefault, color.NRGBA{}},
		{"pipe", core.ColorPipe, color.NRGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff}},
		{"overlay text", core.ColorOverlayText, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := toColor(tc.in); got != tc.want {
				t.Errorf("toColor(%v) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestCanvasWithoutTarget(t *testing.T) {
	var c Canvas
	if w, h := c.Size(); w != 0 || h != 0 {
		t.Errorf("Size() = %vx%v, expected 0x0", w, h)
	}
	// Draw calls without a target are dropped
	c.FillRect(0, 0, 10, 10, core.ColorPipe)
	c.FillCircle(5, 5, 3, core.ColorBird)
	c.FillPath(core.TrianglePath(core.Point{}, core.Point{X: 4}, core.Point{Y: 4}), core.ColorBeak)
	c.DrawText(0, 0, "x", core.ColorText)
}
