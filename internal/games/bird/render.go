package bird

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-bird/internal/config"
	"github.com/vovakirdan/tui-bird/internal/core"
)

// Art constants in logical pixels.
const (
	beakLength     = 8
	beakHalfHeight = 4
	eyeOffsetX     = 6
	eyeOffsetY     = -4
	eyeRadius      = 3

	hatBrimScale  = 2.4 * 0.7 // Brim width relative to the bird radius
	hatBrimHeight = 5
	hatBrimRadius = 6
	hatDomeScale  = 0.5
	hatDomeScaleX = 1.08
	hatDomeScaleY = 1.4

	cloudShadowOffset = 3
	cloudShadowGrow   = 2

	hudX          = 12
	hudScoreY     = 6
	hudBestY      = 26
	hudBeatMarker = " *"
)

// Render draws the current frame onto dst.
func (g *Game) Render(dst core.Surface) {
	Render(dst, &g.world, g.cfg)
}

// Render draws a world onto dst, back to front: sky, ground, clouds, pipes,
// bird and score. It never modifies the world. Nothing is drawn for an
// empty playfield.
func Render(dst core.Surface, w *World, cfg config.BirdConfig) {
	if !w.hasViewport() {
		return
	}
	groundLine := w.GroundLine(cfg.World.GroundHeight)

	dst.FillRect(0, 0, w.Width, w.Height, core.ColorSky)
	dst.FillRect(0, groundLine, w.Width, cfg.World.GroundHeight, core.ColorGround)

	for i, c := range w.Clouds.Clouds() {
		drawCloud(dst, c, w.Clouds.shadowed(i))
	}

	half := cfg.Pipes.Gap / 2
	for _, p := range w.Pipes.Obstacles() {
		top := p.GapY - half
		bottom := p.GapY + half
		dst.FillRoundedRect(p.X, 0, cfg.Pipes.Width, top, cfg.Pipes.CornerRadius, core.ColorPipe)
		dst.FillRoundedRect(p.X, bottom, cfg.Pipes.Width, groundLine-bottom, cfg.Pipes.CornerRadius, core.ColorPipe)
	}

	drawBird(dst, w.Bird, w.Session.BeatingBest())

	score := fmt.Sprintf("Score: %d", w.Session.Score())
	if w.Session.BeatingBest() {
		score += hudBeatMarker
	}
	dst.DrawText(hudX, hudScoreY, score, core.ColorText)
	dst.DrawText(hudX, hudBestY, fmt.Sprintf("Best: %d", w.Session.Best()), core.ColorText)
}

// drawCloud draws a cloud as a cluster of scaled circles. A shadowed cloud
// first gets a slightly larger tinted copy shifted down.
func drawCloud(dst core.Surface, c Cloud, shadow bool) {
	if shadow {
		for _, p := range cloudPuffs {
			dst.FillCircle(c.X+p.DX*c.Scale, c.Y+p.DY*c.Scale+cloudShadowOffset,
				p.R*c.Scale+cloudShadowGrow, core.ColorCloudShadow)
		}
	}
	for _, p := range cloudPuffs {
		dst.FillCircle(c.X+p.DX*c.Scale, c.Y+p.DY*c.Scale, p.R*c.Scale, core.ColorCloud)
	}
}

// drawBird draws body, optional bowler hat, beak and eye.
func drawBird(dst core.Surface, b Body, hat bool) {
	dst.FillCircle(b.X, b.Y, b.Radius, core.ColorBird)

	if hat {
		brimW := b.Radius * hatBrimScale
		dst.FillRoundedRect(b.X-brimW/2, b.Y-b.Radius-hatBrimHeight*0.6+4, brimW, hatBrimHeight,
			hatBrimRadius, core.ColorHat)

		domeR := b.Radius * hatDomeScale
		dome := core.EllipseArcPath(b.X, b.Y-b.Radius+4, domeR*hatDomeScaleX, domeR*hatDomeScaleY, math.Pi, 2*math.Pi)
		dst.FillPath(dome, core.ColorHat)
	}

	beak := core.TrianglePath(
		core.Point{X: b.X + b.Radius, Y: b.Y - beakHalfHeight},
		core.Point{X: b.X + b.Radius, Y: b.Y + beakHalfHeight},
		core.Point{X: b.X + b.Radius + beakLength, Y: b.Y},
	)
	dst.FillPath(beak, core.ColorBeak)

	dst.FillCircle(b.X+eyeOffsetX, b.Y+eyeOffsetY, eyeRadius, core.ColorEye)
}
