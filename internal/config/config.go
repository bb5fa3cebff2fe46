// Package config provides YAML-based configuration loading and validation
// for the game.
package config

import (
	"errors"
	"fmt"
)

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	World     World     `yaml:"world"`
	Physics   Physics   `yaml:"physics"`
	Bird      Bird      `yaml:"bird"`
	Obstacles Obstacles `yaml:"obstacles"`
	Ground    Ground    `yaml:"ground"`
	Audio     Audio     `yaml:"audio"`
	Assets    Assets    `yaml:"assets"`
}

// World defines the playfield size and simulation rate.
type World struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TickRate int `yaml:"tick_rate"`
}

// Physics defines the bird's motion constants.
type Physics struct {
	Gravity           float64 `yaml:"gravity"`
	JumpImpulse       float64 `yaml:"jump_impulse"` // negative is up
	ReferenceTickRate int     `yaml:"reference_tick_rate"`
	RotationFactor    float64 `yaml:"rotation_factor"` // degrees per unit of velocity
}

// Bird defines spawn position and animation timing.
type Bird struct {
	SpawnX        float64 `yaml:"spawn_x"`
	SpawnY        float64 `yaml:"spawn_y"`
	AnimationHold int     `yaml:"animation_hold"` // updates per frame
}

// Obstacles defines pipe motion and generation.
type Obstacles struct {
	Speed       float64 `yaml:"speed"`
	Spacing     float64 `yaml:"spacing"`
	Gap         int     `yaml:"gap"`
	MinAnchor   int     `yaml:"min_anchor"`
	MaxAnchor   int     `yaml:"max_anchor"`
	SpawnOffset float64 `yaml:"spawn_offset"`
}

// Ground defines the scrolling ground strip.
type Ground struct {
	Y     float64 `yaml:"y"`
	Speed float64 `yaml:"speed"`
}

// Audio defines cue playback.
type Audio struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`
	SampleRate int     `yaml:"sample_rate"`
	SoundsDir  string  `yaml:"sounds_dir"`
}

// Assets defines where sprites come from. An empty Dir selects the built-in
// sprites.
type Assets struct {
	Dir string `yaml:"dir"`
}

// Validate reports every invalid field at once.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("config: "+format, args...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0,
		"world size must be positive, got %dx%d", c.World.Width, c.World.Height)
	check(c.World.TickRate > 0, "world.tick_rate must be positive, got %d", c.World.TickRate)
	check(c.Physics.ReferenceTickRate > 0,
		"physics.reference_tick_rate must be positive, got %d", c.Physics.ReferenceTickRate)
	check(c.Physics.Gravity > 0, "physics.gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.JumpImpulse < 0, "physics.jump_impulse must be negative (upwards), got %v", c.Physics.JumpImpulse)
	check(c.Bird.AnimationHold > 0, "bird.animation_hold must be positive, got %d", c.Bird.AnimationHold)
	check(c.Obstacles.Speed > 0, "obstacles.speed must be positive, got %v", c.Obstacles.Speed)
	check(c.Obstacles.Spacing > 0, "obstacles.spacing must be positive, got %v", c.Obstacles.Spacing)
	check(c.Obstacles.Gap > 0, "obstacles.gap must be positive, got %d", c.Obstacles.Gap)
	check(c.Obstacles.MinAnchor <= c.Obstacles.MaxAnchor,
		"obstacles anchor range [%d, %d] is inverted", c.Obstacles.MinAnchor, c.Obstacles.MaxAnchor)
	check(c.Ground.Speed > 0, "ground.speed must be positive, got %v", c.Ground.Speed)
	check(c.Ground.Y > 0 && (c.World.Height <= 0 || c.Ground.Y < float64(c.World.Height)),
		"ground.y must lie inside the world, got %v", c.Ground.Y)
	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume must be in [0, 1], got %v", c.Audio.Volume)
	check(!c.Audio.Enabled || c.Audio.SampleRate > 0,
		"audio.sample_rate must be positive, got %d", c.Audio.SampleRate)

	return errors.Join(errs...)
}

// DeltaTime returns the per-frame time step in reference frames.
func (c FlappyConfig) DeltaTime() float64 {
	return float64(c.Physics.ReferenceTickRate) / float64(c.World.TickRate)
}
