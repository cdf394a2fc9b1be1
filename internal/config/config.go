// Package config provides YAML-based game configuration loading for the
// bird game and its hosts.
package config

import (
	"errors"
	"fmt"
)

// BirdConfig contains all configuration for the bird game.
type BirdConfig struct {
	Physics  BirdPhysics  `yaml:"physics"`
	Bird     BirdBody     `yaml:"bird"`
	Pipes    BirdPipes    `yaml:"pipes"`
	World    BirdWorld    `yaml:"world"`
	Clouds   BirdClouds   `yaml:"clouds"`
	Controls BirdControls `yaml:"controls"`
	Terminal Terminal     `yaml:"terminal"`
	Window   Window       `yaml:"window"`
	Audio    Audio        `yaml:"audio"`
}

// BirdPhysics defines the vertical motion of the bird.
type BirdPhysics struct {
	Gravity float64 `yaml:"gravity"` // px/s², downward
	Impulse float64 `yaml:"impulse"` // px/s, negative = up
}

// BirdBody defines the controlled body.
type BirdBody struct {
	X          float64 `yaml:"x"`           // Fixed horizontal centre
	Radius     float64 `yaml:"radius"`      // Hit circle radius
	StartRatio float64 `yaml:"start_ratio"` // Start Y as a fraction of height when a run begins
	IdleRatio  float64 `yaml:"idle_ratio"`  // Y as a fraction of height before the first run
}

// BirdPipes defines the obstacle stream.
type BirdPipes struct {
	Width           float64 `yaml:"width"`
	Gap             float64 `yaml:"gap"`               // Vertical opening
	Speed           float64 `yaml:"speed"`             // px/s
	SpawnIntervalMs float64 `yaml:"spawn_interval_ms"` // Cadence between pipes
	SpawnOffset     float64 `yaml:"spawn_offset"`      // Spawn X past the right edge
	Margin          float64 `yaml:"margin"`            // Gap band distance from top and bottom
	MaxStep         float64 `yaml:"max_step"`          // Largest gap centre change between pipes
	CullMargin      float64 `yaml:"cull_margin"`       // Distance behind the left edge before removal
	CornerRadius    float64 `yaml:"corner_radius"`
}

// BirdWorld defines playfield-wide constants.
type BirdWorld struct {
	GroundHeight float64 `yaml:"ground_height"`
	MaxStepMs    int     `yaml:"max_step_ms"` // Cap on a single simulation step
}

// BirdClouds defines the decorative parallax layer.
type BirdClouds struct {
	Spacing       float64 `yaml:"spacing"`   // Width per cloud when sizing the batch
	MinCount      int     `yaml:"min_count"` // Lower bound on the batch size
	ScaleMin      float64 `yaml:"scale_min"`
	ScaleRange    float64 `yaml:"scale_range"`
	ScaleFactor   float64 `yaml:"scale_factor"`
	SpeedMin      float64 `yaml:"speed_min"`
	SpeedRange    float64 `yaml:"speed_range"`
	TopMargin     float64 `yaml:"top_margin"`
	BottomMargin  float64 `yaml:"bottom_margin"`
	RespawnOffset float64 `yaml:"respawn_offset"` // Recycled X past the right edge
	RecycleExtent float64 `yaml:"recycle_extent"` // Per-scale distance past the left edge before recycling
	MaxAttempts   int     `yaml:"max_attempts"`   // Rejection sampling budget
}

// BirdControls defines input behaviour.
type BirdControls struct {
	// ImpulseRestarts lets a flap after game over start the next run.
	ImpulseRestarts bool `yaml:"impulse_restarts"`
}

// Terminal defines how logical pixels map onto terminal cells.
type Terminal struct {
	CellWidth  float64 `yaml:"cell_width"`  // Logical px per column
	CellHeight float64 `yaml:"cell_height"` // Logical px per row (two half-block pixels)
}

// Window defines the initial desktop window size in logical pixels.
type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Audio defines sound effect settings.
type Audio struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0..1
	SampleRate int     `yaml:"sample_rate"`
}

// Validate reports constants that would make the simulation meaningless.
func (c BirdConfig) Validate() error {
	var errs []error
	if c.Physics.Impulse >= 0 {
		errs = append(errs, fmt.Errorf("physics.impulse must be negative (upward), got %v", c.Physics.Impulse))
	}
	if c.Physics.Gravity < 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must not be negative, got %v", c.Physics.Gravity))
	}
	if c.Bird.Radius <= 0 {
		errs = append(errs, fmt.Errorf("bird.radius must be positive, got %v", c.Bird.Radius))
	}
	if c.Pipes.Width <= 0 {
		errs = append(errs, fmt.Errorf("pipes.width must be positive, got %v", c.Pipes.Width))
	}
	if c.Pipes.Gap <= 2*c.Bird.Radius {
		errs = append(errs, fmt.Errorf("pipes.gap (%v) must exceed the bird diameter (%v)", c.Pipes.Gap, 2*c.Bird.Radius))
	}
	if c.Pipes.SpawnIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("pipes.spawn_interval_ms must be positive, got %v", c.Pipes.SpawnIntervalMs))
	}
	if c.Pipes.MaxStep <= 0 {
		errs = append(errs, fmt.Errorf("pipes.max_step must be positive, got %v", c.Pipes.MaxStep))
	}
	if c.Clouds.Spacing <= 0 {
		errs = append(errs, fmt.Errorf("clouds.spacing must be positive, got %v", c.Clouds.Spacing))
	}
	if c.Clouds.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("clouds.max_attempts must be at least 1, got %d", c.Clouds.MaxAttempts))
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("terminal cell size must be positive, got %vx%v", c.Terminal.CellWidth, c.Terminal.CellHeight))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid bird config: %w", errors.Join(errs...))
	}
	return nil
}
