package bird

import (
	"testing"

	"github.com/vovakirdan/tui-bird/internal/config"
)

func testClouds() config.BirdClouds {
	return config.DefaultBirdConfig().Clouds
}

func TestCloudCount(t *testing.T) {
	l := NewCloudLayer(testClouds(), 1)

	tests := []struct {
		width float64
		want  int
	}{
		{0, 6},
		{-50, 6},
		{300, 6},
		{719, 6},
		{840, 7},
		{1920, 16},
	}
	for _, tc := range tests {
		if got := l.Count(tc.width); got != tc.want {
			t.Errorf("Count(%v) = %d, expected %d", tc.width, got, tc.want)
		}
	}
}

func TestInitBatchRanges(t *testing.T) {
	cfg := testClouds()
	l := NewCloudLayer(cfg, 42)
	const width, height = 1200.0, 700.0

	l.InitBatch(width, height)

	clouds := l.Clouds()
	if len(clouds) != 10 {
		t.Fatalf("len(Clouds()) = %d, expected 10", len(clouds))
	}
	minScale := cfg.ScaleMin * cfg.ScaleFactor
	maxScale := (cfg.ScaleMin + cfg.ScaleRange) * cfg.ScaleFactor
	for i, c := range clouds {
		if c.Scale < minScale || c.Scale > maxScale {
			t.Errorf("cloud %d: scale %v outside [%v, %v]", i, c.Scale, minScale, maxScale)
		}
		if c.X < 0 || c.X >= width {
			t.Errorf("cloud %d: x %v outside [0, %v)", i, c.X, width)
		}
		minY, maxY := l.bandY(height, c.Scale)
		if c.Y < minY || c.Y > maxY {
			t.Errorf("cloud %d: y %v outside [%v, %v]", i, c.Y, minY, maxY)
		}
		if c.Speed < cfg.SpeedMin || c.Speed > cfg.SpeedMin+cfg.SpeedRange {
			t.Errorf("cloud %d: speed %v outside range", i, c.Speed)
		}
		if c.Speed >= config.DefaultBirdConfig().Pipes.Speed {
			t.Errorf("cloud %d: speed %v not slower than pipes", i, c.Speed)
		}
	}
}

func TestCloudAdvance(t *testing.T) {
	l := NewCloudLayer(testClouds(), 1)
	l.clouds = []Cloud{{X: 100, Speed: 20}, {X: 50, Speed: 10}}

	l.Advance(0.5)

	if l.clouds[0].X != 90 || l.clouds[1].X != 45 {
		t.Errorf("unexpected positions after Advance: %+v", l.clouds)
	}
}

func TestRecycledCloudsReappearPastRightEdge(t *testing.T) {
	cfg := testClouds()
	const width, height = 800.0, 600.0

	for seed := int64(1); seed <= 20; seed++ {
		l := NewCloudLayer(cfg, seed)
		l.InitBatch(width, height)

		for tick := 0; tick < 2000; tick++ {
			before := make([]Cloud, len(l.clouds))
			copy(before, l.clouds)

			l.Advance(0.033)
			l.Recycle(width, height)

			for i, c := range l.clouds {
				if c.X < before[i].X-c.Speed*0.033-1e-9 {
					t.Fatalf("seed %d: cloud %d moved too far left", seed, i)
				}
				if c.X > before[i].X {
					// recycled this tick
					if c.X <= width {
						t.Fatalf("seed %d: recycled cloud %d at X=%v, not past %v", seed, i, c.X, width)
					}
					minY, maxY := l.bandY(height, c.Scale)
					if c.Y < minY || c.Y > maxY {
						t.Fatalf("seed %d: recycled cloud %d at Y=%v outside [%v, %v]", seed, i, c.Y, minY, maxY)
					}
				}
			}
		}
	}
}

func TestRecycleOnlyOffscreenClouds(t *testing.T) {
	cfg := testClouds()
	l := NewCloudLayer(cfg, 1)
	l.clouds = []Cloud{
		{X: -cfg.RecycleExtent*2 - 1, Y: 100, Scale: 2, Speed: 10},
		{X: -cfg.RecycleExtent * 2, Y: 100, Scale: 2, Speed: 10},
		{X: 300, Y: 100, Scale: 1, Speed: 10},
	}

	l.Recycle(800, 600)

	if got := l.clouds[0].X; got != 800+cfg.RespawnOffset {
		t.Errorf("off-screen cloud X = %v, expected %v", got, 800+cfg.RespawnOffset)
	}
	if got := l.clouds[1].X; got != -cfg.RecycleExtent*2 {
		t.Errorf("cloud at the recycle line moved to %v", got)
	}
	if got := l.clouds[2]; got.X != 300 || got.Y != 100 {
		t.Errorf("visible cloud changed: %+v", got)
	}
}

func TestRecyclePrefersUncluttered(t *testing.T) {
	cfg := testClouds()
	const width, height = 800.0, 600.0

	// Two clouds parked right where recycled clouds reappear, covering the
	// upper half of the band. With enough attempts, a recycled cloud should
	// overlap at most one of them.
	for seed := int64(1); seed <= 30; seed++ {
		l := NewCloudLayer(cfg, seed)
		l.clouds = []Cloud{
			{X: width + cfg.RespawnOffset, Y: 100, Scale: 2, Speed: 0},
			{X: width + cfg.RespawnOffset, Y: 140, Scale: 2, Speed: 0},
			{X: -1000, Y: 0, Scale: 1, Speed: 0},
		}
		l.cfg.MaxAttempts = 64

		l.Recycle(width, height)

		if n := l.overlapCount(2, l.clouds[2].Bounds(), 3); n > 1 {
			t.Errorf("seed %d: recycled cloud overlaps %d clouds", seed, n)
		}
	}
}

func TestRecycleAcceptsLastSampleWhenCrowded(t *testing.T) {
	cfg := testClouds()
	cfg.MaxAttempts = 3
	const width, height = 800.0, 300.0

	// Huge clouds cover the whole band, so every sample overlaps both.
	l := NewCloudLayer(cfg, 5)
	l.clouds = []Cloud{
		{X: width, Y: 150, Scale: 20},
		{X: width, Y: 150, Scale: 20},
		{X: -1000, Y: 0, Scale: 1},
	}

	l.Recycle(width, height)

	c := l.clouds[2]
	if c.X != width+cfg.RespawnOffset {
		t.Fatalf("cloud not recycled: %+v", c)
	}
	minY, maxY := l.bandY(height, c.Scale)
	if c.Y < minY || c.Y > maxY {
		t.Errorf("Y = %v outside [%v, %v]", c.Y, minY, maxY)
	}
}

func TestCloudShadowed(t *testing.T) {
	l := NewCloudLayer(testClouds(), 1)
	l.clouds = []Cloud{
		{X: 100, Y: 100, Scale: 1},
		{X: 130, Y: 110, Scale: 1}, // overlaps the first
		{X: 600, Y: 100, Scale: 1}, // alone
	}

	if l.shadowed(0) {
		t.Error("first cloud has nothing below it")
	}
	if !l.shadowed(1) {
		t.Error("second cloud overlaps the first and should be shadowed")
	}
	if l.shadowed(2) {
		t.Error("third cloud is alone")
	}
}
