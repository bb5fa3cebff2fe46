// Package assets holds the sprite registry: every image the game draws and
// collides with, built once at startup and shared read-only afterwards.
package assets

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/vovakirdan/flappy-ai/internal/mask"
)

// SpriteScale is the factor applied to every source image, doubling the
// classic 288x512 art for the 500x800 playfield.
const SpriteScale = 2

// BirdFrameCount is the number of flap animation frames.
const BirdFrameCount = 3

// Sprite is an image together with its collision silhouette.
type Sprite struct {
	Name  string
	Image *image.NRGBA
	Mask  *mask.Mask
}

// NewSprite wraps img, copying it into an NRGBA anchored at the origin and
// deriving its mask.
func NewSprite(name string, img image.Image) *Sprite {
	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Bounds().Min != (image.Point{}) {
		b := img.Bounds()
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}
	return &Sprite{
		Name:  name,
		Image: nrgba,
		Mask:  mask.FromImage(nrgba),
	}
}

// Width returns the sprite width in world pixels.
func (s *Sprite) Width() int { return s.Image.Bounds().Dx() }

// Height returns the sprite height in world pixels.
func (s *Sprite) Height() int { return s.Image.Bounds().Dy() }

// Registry is the immutable set of sprites used by the game.
// Nothing mutates a Registry after construction; components keep a pointer.
type Registry struct {
	birdFrames [BirdFrameCount]*Sprite
	pipeTop    *Sprite
	pipeBottom *Sprite
	ground     *Sprite
	background *Sprite
}

// Source is the raw, unscaled artwork a Registry is built from.
type Source struct {
	BirdFrames [BirdFrameCount]image.Image // down, mid, up flap
	Pipe       image.Image                 // lip at the top, as the bottom piece
	Ground     image.Image
	Background image.Image
}

// Build scales the source images and derives the sprites and masks.
// The top pipe piece is the pipe image flipped vertically.
func Build(src Source) (*Registry, error) {
	for i, f := range src.BirdFrames {
		if f == nil {
			return nil, fmt.Errorf("assets: missing bird frame %d", i)
		}
	}
	if src.Pipe == nil || src.Ground == nil || src.Background == nil {
		return nil, fmt.Errorf("assets: incomplete source set")
	}

	r := &Registry{}
	names := [BirdFrameCount]string{"bird-down", "bird-mid", "bird-up"}
	for i, f := range src.BirdFrames {
		r.birdFrames[i] = NewSprite(names[i], Scale(f, SpriteScale))
	}

	pipe := Scale(src.Pipe, SpriteScale)
	r.pipeBottom = NewSprite("pipe-bottom", pipe)
	r.pipeTop = NewSprite("pipe-top", FlipVertical(pipe))
	r.ground = NewSprite("ground", Scale(src.Ground, SpriteScale))
	r.background = NewSprite("background", Scale(src.Background, SpriteScale))
	return r, nil
}

// BirdFrame returns animation frame i (0 down, 1 mid, 2 up).
func (r *Registry) BirdFrame(i int) *Sprite {
	return r.birdFrames[i%BirdFrameCount]
}

// PipeTop returns the upper pipe piece, lip at its bottom edge.
func (r *Registry) PipeTop() *Sprite { return r.pipeTop }

// PipeBottom returns the lower pipe piece, lip at its top edge.
func (r *Registry) PipeBottom() *Sprite { return r.pipeBottom }

// Ground returns one tile of the scrolling ground strip.
func (r *Registry) Ground() *Sprite { return r.ground }

// Background returns the static sky backdrop.
func (r *Registry) Background() *Sprite { return r.background }
