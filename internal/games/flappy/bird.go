package flappy

import (
	"math"

	"github.com/vovakirdan/flappy-ai/internal/assets"
	"github.com/vovakirdan/flappy-ai/internal/audio"
	"github.com/vovakirdan/flappy-ai/internal/config"
	"github.com/vovakirdan/flappy-ai/internal/core"
	"github.com/vovakirdan/flappy-ai/internal/mask"
)

// Bird is the player entity. X and Y are the center of the sprite in world
// pixels; positive velocity points down.
type Bird struct {
	X, Y     float64
	Velocity float64

	tick   float64 // animation clock in reference frames, wraps at frames*hold
	frame  int     // current flap frame
	angle  float64 // degrees, counter-clockwise
	jump   bool    // impulse requested for the next update
	sprite *assets.Sprite

	physics config.Physics
	hold    int
	reg     *assets.Registry
	audio   audio.Player
}

// NewBird returns a bird at rest at the configured spawn point.
func NewBird(cfg config.FlappyConfig, reg *assets.Registry, player audio.Player) *Bird {
	b := &Bird{
		X:       cfg.Bird.SpawnX,
		Y:       cfg.Bird.SpawnY,
		physics: cfg.Physics,
		hold:    cfg.Bird.AnimationHold,
		reg:     reg,
		audio:   player,
	}
	b.refresh()
	return b
}

// Jump requests an impulse on the next update. Requests do not stack.
func (b *Bird) Jump() {
	if b.jump {
		return
	}
	b.jump = true
	b.audio.Play(audio.CueWing)
}

// Update advances the bird by dt reference frames: gravity, a pending
// impulse, position, then animation. The sprite and mask are rebuilt once,
// after the animation step.
func (b *Bird) Update(dt float64) {
	b.Velocity += b.physics.Gravity * dt
	if b.jump {
		b.Velocity = b.physics.JumpImpulse
		b.jump = false
	}
	b.Y += b.Velocity * dt

	b.tick += dt
	period := float64(assets.BirdFrameCount * b.hold)
	for b.tick >= period {
		b.tick -= period
	}
	b.frame = int(b.tick) / b.hold
	b.angle = -b.Velocity * b.physics.RotationFactor

	b.refresh()
}

// refresh rotates the current frame and derives its mask.
func (b *Bird) refresh() {
	src := b.reg.BirdFrame(b.frame)
	b.sprite = assets.NewSprite(src.Name, assets.Rotate(src.Image, b.angle))
}

// Origin returns the top-left corner of the rotated sprite.
func (b *Bird) Origin() (int, int) {
	w, h := b.sprite.Width(), b.sprite.Height()
	return int(math.Floor(b.X)) - w/2, int(math.Floor(b.Y)) - h/2
}

// Rect returns the bounding box of the rotated sprite.
func (b *Bird) Rect() core.Rect {
	x, y := b.Origin()
	return core.NewRect(x, y, b.sprite.Width(), b.sprite.Height())
}

// Mask returns the silhouette used for collision this frame.
func (b *Bird) Mask() *mask.Mask { return b.sprite.Mask }

// Sprite returns the rotated sprite to draw.
func (b *Bird) Sprite() *assets.Sprite { return b.sprite }

// Angle returns the current rotation in degrees.
func (b *Bird) Angle() float64 { return b.angle }

// Frame returns the current flap frame index.
func (b *Bird) Frame() int { return b.frame }
