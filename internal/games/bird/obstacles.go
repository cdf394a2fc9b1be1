package bird

import (
	"math/rand"

	"github.com/vovakirdan/tui-bird/internal/config"
	"github.com/vovakirdan/tui-bird/internal/core"
)

// Obstacle is a pipe pair: a top segment from the ceiling down to the gap
// and a bottom segment from the gap down to the ground.
type Obstacle struct {
	X      float64 // Left edge, decreasing over time
	GapY   float64 // Gap centre, fixed at creation
	Passed bool    // Set once the bird has cleared the pipe
}

// Right returns the x-coordinate of the right edge.
func (o Obstacle) Right(pipeWidth float64) float64 {
	return o.X + pipeWidth
}

// GapBand returns the open vertical interval as a box spanning the pipe's
// width. Only Top and Bottom are meaningful to callers.
func (o Obstacle) GapBand(gap float64) core.RectF {
	return core.RectF{Left: o.X, Top: o.GapY - gap/2, Right: o.X, Bottom: o.GapY + gap/2}
}

// spansX reports whether the box overlaps the pipe horizontally.
func (o Obstacle) spansX(box core.RectF, pipeWidth float64) bool {
	return box.Right > o.X && box.Left < o.Right(pipeWidth)
}

// ObstacleStream spawns, moves, culls and scores pipes.
// Culled pipes are discarded; new pipes are always freshly allocated.
type ObstacleStream struct {
	obstacles []Obstacle
	rng       *rand.Rand
	cfg       config.BirdPipes
	width     float64
	height    float64
	elapsedMs float64 // Time since the last spawn
	lastGap   float64 // Gap centre of the newest pipe
}

// NewObstacleStream creates an empty stream for a playfield of the given size.
func NewObstacleStream(cfg config.BirdPipes, seed int64, width, height float64) *ObstacleStream {
	s := &ObstacleStream{
		obstacles: make([]Obstacle, 0, 8),
		cfg:       cfg,
	}
	s.Resize(width, height)
	s.Reset(seed)
	return s
}

// Reset clears all pipes and restarts the random walk from the playfield centre.
func (s *ObstacleStream) Reset(seed int64) {
	s.obstacles = s.obstacles[:0]
	s.rng = rand.New(rand.NewSource(seed))
	s.elapsedMs = 0
	s.lastGap = s.height * 0.5
}

// Restart clears pipes for a new run, keeping the random sequence going.
func (s *ObstacleStream) Restart() {
	s.obstacles = s.obstacles[:0]
	s.elapsedMs = 0
	s.lastGap = s.height * 0.5
}

// Resize updates the playfield dimensions used for spawning.
func (s *ObstacleStream) Resize(width, height float64) {
	s.width = width
	s.height = height
}

// Obstacles returns the live pipes in creation order. The slice must not be
// modified by the caller.
func (s *ObstacleStream) Obstacles() []Obstacle {
	return s.obstacles
}

// Band returns the legal range for gap centres. On a playfield too small to
// fit the gap and margins the band collapses to its lower bound.
func (s *ObstacleStream) Band() (minY, maxY float64) {
	minY = s.cfg.Margin + s.cfg.Gap/2
	maxY = s.height - s.cfg.Margin - s.cfg.Gap/2
	if maxY < minY {
		maxY = minY
	}
	return minY, maxY
}

// TrySpawn adds elapsed time to the spawn timer and creates a pipe once the
// timer strictly exceeds the cadence. The timer then restarts from zero.
func (s *ObstacleStream) TrySpawn(elapsedMs float64) (Obstacle, bool) {
	if elapsedMs > 0 {
		s.elapsedMs += elapsedMs
	}
	if s.elapsedMs <= s.cfg.SpawnIntervalMs {
		return Obstacle{}, false
	}
	s.elapsedMs = 0

	o := Obstacle{
		X:    s.width + s.cfg.SpawnOffset,
		GapY: s.nextGap(),
	}
	s.obstacles = append(s.obstacles, o)
	return o, true
}

// nextGap continues the random walk: a uniform sample in the band, pulled
// within MaxStep of the previous gap, then clamped back into the band.
func (s *ObstacleStream) nextGap() float64 {
	minY, maxY := s.Band()
	y := minY + s.rng.Float64()*(maxY-minY)
	y = core.ClampF(y, s.lastGap-s.cfg.MaxStep, s.lastGap+s.cfg.MaxStep)
	y = core.ClampF(y, minY, maxY)
	s.lastGap = y
	return y
}

// Advance moves every pipe left by Speed*dt.
func (s *ObstacleStream) Advance(dt float64) {
	for i := range s.obstacles {
		s.obstacles[i].X -= s.cfg.Speed * dt
	}
}

// Cull drops pipes whose right edge is past the left edge by more than CullMargin.
func (s *ObstacleStream) Cull() {
	limit := -s.cfg.CullMargin
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.Right(s.cfg.Width) > limit {
			kept = append(kept, o)
		}
	}
	// Clear the tail so discarded pipes are not kept alive by the backing array
	for i := len(kept); i < len(s.obstacles); i++ {
		s.obstacles[i] = Obstacle{}
	}
	s.obstacles = kept
}

// ScorePass flags every pipe whose right edge is now left of entityX and
// returns how many were newly flagged.
func (s *ObstacleStream) ScorePass(entityX float64) int {
	passed := 0
	for i := range s.obstacles {
		if !s.obstacles[i].Passed && s.obstacles[i].Right(s.cfg.Width) < entityX {
			s.obstacles[i].Passed = true
			passed++
		}
	}
	return passed
}
