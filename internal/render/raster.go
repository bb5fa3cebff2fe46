package render

import (
	"cmp"
	"math"
	"slices"

	"github.com/vovakirdan/flappy-ai/internal/core"
)

// CellAspect is the height of a terminal cell relative to its width.
const CellAspect = 2.0

type cellStyle struct {
	Rune  rune
	Color core.Color
}

// Sprite layers without an entry, such as the background, are not drawn.
var layerStyles = map[Layer]cellStyle{
	LayerPipes:  {'█', core.ColorGreen},
	LayerGround: {'▒', core.ColorOrange},
	LayerBird:   {'●', core.ColorBrightYellow},
}

var _ Surface = (*Rasterizer)(nil)

// Rasterizer draws frames onto a core.Screen. The world keeps its aspect
// ratio and is centered on the screen.
type Rasterizer struct {
	screen         *core.Screen
	worldW, worldH float64
	view           core.Rect
}

// NewRasterizer returns a rasterizer for a world of worldW x worldH pixels.
func NewRasterizer(screen *core.Screen, worldW, worldH int) *Rasterizer {
	r := &Rasterizer{
		screen: screen,
		worldW: float64(worldW),
		worldH: float64(worldH),
	}
	r.fit()
	return r
}

// Screen returns the target buffer.
func (r *Rasterizer) Screen() *core.Screen { return r.screen }

// Viewport returns the cells the world maps onto.
func (r *Rasterizer) Viewport() core.Rect { return r.view }

// Resize changes the screen size and refits the viewport.
func (r *Rasterizer) Resize(cols, rows int) {
	r.screen.Resize(cols, rows)
	r.fit()
}

func (r *Rasterizer) fit() {
	cols, rows := r.screen.Width(), r.screen.Height()

	vw := int(math.Round(float64(rows) * CellAspect * r.worldW / r.worldH))
	vh := rows
	if vw > cols {
		vw = cols
		vh = int(math.Round(float64(cols) / CellAspect * r.worldH / r.worldW))
	}
	vw, vh = max(vw, 1), max(vh, 1)
	r.view = core.NewRect((cols-vw)/2, (rows-vh)/2, vw, vh)
}

// Present clears the screen and draws cmds in layer order. Commands within a
// layer keep their relative order.
func (r *Rasterizer) Present(cmds []DrawCmd) {
	r.screen.Clear()

	sorted := slices.Clone(cmds)
	slices.SortStableFunc(sorted, func(a, b DrawCmd) int {
		return cmp.Compare(a.Layer, b.Layer)
	})

	for _, c := range sorted {
		switch {
		case c.Sprite != nil:
			r.drawSprite(c)
		case len(c.Lines) > 0:
			r.drawText(c)
		}
	}
}

// drawSprite fills every viewport cell whose center lands on an opaque pixel.
func (r *Rasterizer) drawSprite(c DrawCmd) {
	st, ok := layerStyles[c.Layer]
	if !ok {
		return
	}

	m := c.Sprite.Mask
	sx := r.worldW / float64(r.view.W) // world pixels per column
	sy := r.worldH / float64(r.view.H) // world pixels per row

	c0 := max(0, int(math.Floor(c.X/sx)))
	c1 := min(r.view.W, int(math.Ceil((c.X+float64(m.Width()))/sx))+1)
	r0 := max(0, int(math.Floor(c.Y/sy)))
	r1 := min(r.view.H, int(math.Ceil((c.Y+float64(m.Height()))/sy))+1)

	for row := r0; row < r1; row++ {
		ly := int(math.Floor((float64(row)+0.5)*sy - c.Y))
		for col := c0; col < c1; col++ {
			lx := int(math.Floor((float64(col)+0.5)*sx - c.X))
			if m.Get(lx, ly) {
				r.screen.SetColored(r.view.X+col, r.view.Y+row, st.Rune, st.Color)
			}
		}
	}
}

// drawText writes a block of lines. Text is clipped by the screen, not the
// viewport, so overlays stay readable on narrow worlds.
func (r *Rasterizer) drawText(c DrawCmd) {
	w := 0
	for _, l := range c.Lines {
		w = max(w, len([]rune(l)))
	}
	h := len(c.Lines)
	if c.Boxed {
		w += 4
		h += 2
	}

	col := r.view.X + int(math.Floor(c.X*float64(r.view.W)/r.worldW))
	row := r.view.Y + int(math.Floor(c.Y*float64(r.view.H)/r.worldH))
	x, y := col, row
	if c.Centered {
		x, y = col-w/2, row-h/2
	}

	if c.Boxed {
		box := core.NewRect(x, y, w, h)
		r.screen.DrawRect(box, ' ')
		r.screen.DrawBox(box, c.Color)
		for i, l := range c.Lines {
			lx := x + (w-len([]rune(l)))/2
			r.screen.DrawTextColored(lx, y+1+i, l, c.Color)
		}
		return
	}

	for i, l := range c.Lines {
		lx := x
		if c.Centered {
			lx = col - len([]rune(l))/2
		}
		r.screen.DrawTextColored(lx, y+i, l, c.Color)
	}
}
