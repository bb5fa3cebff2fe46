// Package render turns the game's draw list into terminal cells.
//
// Games never touch the terminal. Each frame they emit a list of DrawCmd
// values in world coordinates; a Surface presents the list. The Rasterizer
// is the terminal Surface: it samples sprite masks at cell centers and maps
// the world onto a letterboxed viewport of a core.Screen.
package render

import (
	"github.com/vovakirdan/flappy-ai/internal/assets"
	"github.com/vovakirdan/flappy-ai/internal/core"
)

// Layer orders draw commands; higher layers paint over lower ones.
type Layer int

const (
	LayerBackground Layer = iota
	LayerPipes
	LayerGround
	LayerBird
	LayerHUD
	LayerOverlay
)

// DrawCmd is one element of a frame: a sprite at a world position, or a
// block of text lines.
type DrawCmd struct {
	Layer Layer

	// Sprite commands: top-left corner of the sprite in world pixels.
	Sprite *assets.Sprite
	X, Y   float64

	// Text commands use X, Y as the anchor.
	Lines    []string
	Color    core.Color
	Centered bool // anchor is the block center instead of its top-left
	Boxed    bool // frame the block and clear what is under it
}

// SpriteCmd returns a sprite draw command.
func SpriteCmd(layer Layer, s *assets.Sprite, x, y float64) DrawCmd {
	return DrawCmd{Layer: layer, Sprite: s, X: x, Y: y}
}

// TextCmd returns a text draw command anchored at its top-left corner.
func TextCmd(layer Layer, x, y float64, c core.Color, lines ...string) DrawCmd {
	return DrawCmd{Layer: layer, X: x, Y: y, Color: c, Lines: lines}
}

// CenteredTextCmd returns a text block centered on (x, y).
func CenteredTextCmd(layer Layer, x, y float64, c core.Color, lines ...string) DrawCmd {
	return DrawCmd{Layer: layer, X: x, Y: y, Color: c, Lines: lines, Centered: true}
}

// BoxCmd returns a framed text block centered on (x, y).
func BoxCmd(x, y float64, c core.Color, lines ...string) DrawCmd {
	return DrawCmd{Layer: LayerOverlay, X: x, Y: y, Color: c, Lines: lines, Centered: true, Boxed: true}
}

// Surface presents a complete frame.
type Surface interface {
	Present(cmds []DrawCmd)
}
