package flappy

import (
	"math"

	"github.com/vovakirdan/flappy-ai/internal/assets"
	"github.com/vovakirdan/flappy-ai/internal/core"
)

// Pipe is one obstacle: a top and a bottom piece around a fixed gap.
// Anchor is the y of the gap's upper edge and never changes.
type Pipe struct {
	X      float64
	Anchor int
	Passed bool

	gap    int
	top    *assets.Sprite
	bottom *assets.Sprite
}

func newPipe(x float64, anchor, gap int, reg *assets.Registry) *Pipe {
	return &Pipe{
		X:      x,
		Anchor: anchor,
		gap:    gap,
		top:    reg.PipeTop(),
		bottom: reg.PipeBottom(),
	}
}

// Width returns the pipe width in world pixels.
func (p *Pipe) Width() int { return p.top.Width() }

// TopY returns the y of the top piece's origin.
func (p *Pipe) TopY() int { return p.Anchor - p.top.Height() }

// BottomY returns the y of the bottom piece's origin.
func (p *Pipe) BottomY() int { return p.Anchor + p.gap }

// Move shifts the pipe left by dist.
func (p *Pipe) Move(dist float64) { p.X -= dist }

func (p *Pipe) left() int { return int(math.Floor(p.X)) }

// TopRect returns the bounds of the top piece.
func (p *Pipe) TopRect() core.Rect {
	return core.NewRect(p.left(), p.TopY(), p.top.Width(), p.top.Height())
}

// BottomRect returns the bounds of the bottom piece.
func (p *Pipe) BottomRect() core.Rect {
	return core.NewRect(p.left(), p.BottomY(), p.bottom.Width(), p.bottom.Height())
}

// Collide reports a pixel overlap between the bird and either piece. Masks
// are compared only when the bounding boxes meet; offsets are taken in the
// bird mask's coordinate space.
func (p *Pipe) Collide(b *Bird) bool {
	box := b.Rect()
	m := b.Mask()
	dx := p.left() - box.X
	if box.Intersects(p.TopRect()) && m.Overlap(p.top.Mask, dx, p.TopY()-box.Y) {
		return true
	}
	return box.Intersects(p.BottomRect()) && m.Overlap(p.bottom.Mask, dx, p.BottomY()-box.Y)
}
