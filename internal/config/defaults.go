package config

import (
	_ "embed"
)

//go:embed defaults/bird.yaml
var defaultBirdYAML []byte

// DefaultBirdConfig returns the built-in bird configuration.
// It mirrors defaults/bird.yaml and is used when the embedded file cannot be parsed.
func DefaultBirdConfig() BirdConfig {
	return BirdConfig{
		Physics: BirdPhysics{
			Gravity: 1700,
			Impulse: -430,
		},
		Bird: BirdBody{
			X:          120,
			Radius:     16,
			StartRatio: 0.45,
			IdleRatio:  0.5,
		},
		Pipes: BirdPipes{
			Width:           70,
			Gap:             160,
			Speed:           180,
			SpawnIntervalMs: 1400,
			SpawnOffset:     60,
			Margin:          40,
			MaxStep:         180,
			CullMargin:      10,
			CornerRadius:    2,
		},
		World: BirdWorld{
			GroundHeight: 40,
			MaxStepMs:    33,
		},
		Clouds: BirdClouds{
			Spacing:       120,
			MinCount:      6,
			ScaleMin:      0.6,
			ScaleRange:    1.4,
			ScaleFactor:   2,
			SpeedMin:      12,
			SpeedRange:    24,
			TopMargin:     40,
			BottomMargin:  100,
			RespawnOffset: 40,
			RecycleExtent: 160,
			MaxAttempts:   8,
		},
		Controls: BirdControls{
			ImpulseRestarts: true,
		},
		Terminal: Terminal{
			CellWidth:  8,
			CellHeight: 16,
		},
		Window: Window{
			Width:  480,
			Height: 640,
		},
		Audio: Audio{
			Enabled:    false,
			Volume:     0.4,
			SampleRate: 44100,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBirdYAML
}
