package flappy

import (
	"math"

	"github.com/vovakirdan/flappy-ai/internal/assets"
)

// Ground is the endless strip along the bottom, two copies of one tile
// scrolling left and leapfrogging each other.
type Ground struct {
	Y      float64
	X1, X2 float64

	speed float64
	tile  *assets.Sprite
}

// NewGround returns a strip with the first tile at x = 0.
func NewGround(y, speed float64, tile *assets.Sprite) *Ground {
	return &Ground{
		Y:     y,
		X1:    0,
		X2:    float64(tile.Width()),
		speed: speed,
		tile:  tile,
	}
}

// Width returns the tile width.
func (g *Ground) Width() int { return g.tile.Width() }

// Tile returns the tile sprite.
func (g *Ground) Tile() *assets.Sprite { return g.tile }

// Move scrolls the strip. Only the leading tile moves; the other one is
// placed exactly one tile width behind it, so the two never drift apart. A
// leading tile fully past the left edge jumps behind the other one.
func (g *Ground) Move(dt float64) {
	w := float64(g.tile.Width())
	firstLeads := g.X1 <= g.X2
	lead := min(g.X1, g.X2) - g.speed*dt
	if lead+w < 0 {
		lead += w
		firstLeads = !firstLeads
	}
	if firstLeads {
		g.X1, g.X2 = lead, lead+w
	} else {
		g.X1, g.X2 = lead+w, lead
	}
}

// Collide reports a pixel overlap between the bird and either tile. Masks are
// only compared once the bird's lower edge reaches the ground top.
func (g *Ground) Collide(b *Bird) bool {
	top := int(math.Floor(g.Y))
	if b.Rect().Bottom() < top {
		return false
	}

	bx, by := b.Origin()
	m := b.Mask()
	for _, x := range [2]float64{g.X1, g.X2} {
		if m.Overlap(g.tile.Mask, int(math.Floor(x))-bx, top-by) {
			return true
		}
	}
	return false
}
