package bird

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-bird/internal/config"
	"github.com/vovakirdan/tui-bird/internal/core"
)

// Cloud puff layout in unscaled pixels: offset from the cloud origin and radius.
var cloudPuffs = [...]struct{ DX, DY, R float64 }{
	{0, 0, 16},
	{18, -6, 18},
	{36, 0, 16},
	{10, 6, 14},
	{26, 8, 14},
}

// Cloud bounding box extents in unscaled pixels around the origin.
const (
	cloudLeft   = 16
	cloudRight  = 52
	cloudTop    = 24
	cloudBottom = 22
)

// Cloud is a decorative background element.
type Cloud struct {
	X, Y  float64
	Scale float64
	Speed float64 // px/s, slower than the pipes
}

// Bounds returns the cloud's bounding box.
func (c Cloud) Bounds() core.RectF {
	return cloudBounds(c.X, c.Y, c.Scale)
}

func cloudBounds(x, y, scale float64) core.RectF {
	return core.RectF{
		Left:   x - cloudLeft*scale,
		Top:    y - cloudTop*scale,
		Right:  x + cloudRight*scale,
		Bottom: y + cloudBottom*scale,
	}
}

// CloudLayer owns the parallax clouds.
type CloudLayer struct {
	clouds []Cloud
	rng    *rand.Rand
	cfg    config.BirdClouds
}

// NewCloudLayer creates an empty layer. Call InitBatch once the playfield
// size is known.
func NewCloudLayer(cfg config.BirdClouds, seed int64) *CloudLayer {
	return &CloudLayer{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

// Clouds returns the clouds in draw order. The slice must not be modified.
func (l *CloudLayer) Clouds() []Cloud {
	return l.clouds
}

// Count returns the batch size for a playfield width.
func (l *CloudLayer) Count(width float64) int {
	n := 0
	if width > 0 {
		n = int(math.Floor(width / l.cfg.Spacing))
	}
	return core.Max(l.cfg.MinCount, n)
}

// bandY returns the legal vertical range for a cloud of the given scale.
func (l *CloudLayer) bandY(height, scale float64) (minY, maxY float64) {
	minY = l.cfg.TopMargin
	maxY = math.Max(minY, height-l.cfg.BottomMargin-cloudBottom*scale)
	return minY, maxY
}

func (l *CloudLayer) sampleY(height, scale float64) float64 {
	minY, maxY := l.bandY(height, scale)
	return minY + l.rng.Float64()*(maxY-minY)
}

// InitBatch replaces all clouds with a fresh batch sized for the playfield.
func (l *CloudLayer) InitBatch(width, height float64) {
	count := l.Count(width)
	l.clouds = make([]Cloud, 0, count)
	for i := 0; i < count; i++ {
		scale := (l.cfg.ScaleMin + l.rng.Float64()*l.cfg.ScaleRange) * l.cfg.ScaleFactor
		y := l.sampleY(height, scale)
		speed := l.cfg.SpeedMin + l.rng.Float64()*l.cfg.SpeedRange
		x := l.rng.Float64() * width
		l.clouds = append(l.clouds, Cloud{X: x, Y: y, Scale: scale, Speed: speed})
	}
}

// Advance moves every cloud left by its own speed.
func (l *CloudLayer) Advance(dt float64) {
	for i := range l.clouds {
		l.clouds[i].X -= l.clouds[i].Speed * dt
	}
}

// Recycle moves clouds that have scrolled off the left edge to just past the
// right edge and picks a new height for each.
//
// The height is chosen by rejection sampling: up to MaxAttempts samples, the
// first one whose box overlaps at most one other cloud wins. If none does,
// the last sample is kept anyway, so clutter is reduced but not ruled out.
func (l *CloudLayer) Recycle(width, height float64) {
	for i := range l.clouds {
		c := &l.clouds[i]
		if c.X >= -l.cfg.RecycleExtent*c.Scale {
			continue
		}
		c.X = width + l.cfg.RespawnOffset

		y := l.sampleY(height, c.Scale)
		for attempt := 1; attempt < l.cfg.MaxAttempts; attempt++ {
			if l.overlapCount(i, cloudBounds(c.X, y, c.Scale), 2) <= 1 {
				break
			}
			y = l.sampleY(height, c.Scale)
		}
		c.Y = y
	}
}

// overlapCount counts clouds other than skip whose bounds touch box, stopping
// early once limit is reached.
func (l *CloudLayer) overlapCount(skip int, box core.RectF, limit int) int {
	n := 0
	for j, other := range l.clouds {
		if j == skip {
			continue
		}
		if box.Overlaps(other.Bounds()) {
			n++
			if n >= limit {
				break
			}
		}
	}
	return n
}

// shadowed reports whether cloud i overlaps any cloud drawn before it.
func (l *CloudLayer) shadowed(i int) bool {
	box := l.clouds[i].Bounds()
	for j := 0; j < i; j++ {
		if box.Overlaps(l.clouds[j].Bounds()) {
			return true
		}
	}
	return false
}
