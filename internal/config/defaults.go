package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default configuration. It mirrors
// defaults/flappy.yaml.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: World{
			Width:    500,
			Height:   800,
			TickRate: 60,
		},
		Physics: Physics{
			Gravity:           0.4,
			JumpImpulse:       -7,
			ReferenceTickRate: 60,
			RotationFactor:    3,
		},
		Bird: Bird{
			SpawnX:        230,
			SpawnY:        350,
			AnimationHold: 5,
		},
		Obstacles: Obstacles{
			Speed:       5,
			Spacing:     400,
			Gap:         200,
			MinAnchor:   50,
			MaxAnchor:   300,
			SpawnOffset: 10,
		},
		Ground: Ground{
			Y:     730,
			Speed: 5,
		},
		Audio: Audio{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
