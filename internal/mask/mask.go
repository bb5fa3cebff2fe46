// Package mask implements pixel silhouettes and the overlap test used for
// collision detection. A mask is a 1-bit image; two masks collide when any set
// bit of one lands on a set bit of the other at a given relative offset.
package mask

import (
	"image"
)

// Threshold is the alpha value a pixel must exceed to be opaque.
const Threshold = 127

// Mask is a packed 1-bit silhouette, row-major.
type Mask struct {
	w, h   int
	stride int // words per row
	bits   []uint64
}

// New returns an empty mask of the given size.
func New(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	stride := (w + 63) / 64
	return &Mask{
		w:      w,
		h:      h,
		stride: stride,
		bits:   make([]uint64, stride*h),
	}
}

// FromImage builds a mask from the alpha channel of img.
// The mask origin is the image's Bounds().Min.
func FromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := New(b.Dx(), b.Dy())
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if a>>8 > Threshold {
				m.Set(x, y, true)
			}
		}
	}
	return m
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.w }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.h }

// Get reports whether the bit at (x, y) is set. Out of range is unset.
func (m *Mask) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	return m.bits[y*m.stride+x>>6]&(1<<(uint(x)&63)) != 0
}

// Set sets or clears the bit at (x, y). Out of range is ignored.
func (m *Mask) Set(x, y int, v bool) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	i := y*m.stride + x>>6
	bit := uint64(1) << (uint(x) & 63)
	if v {
		m.bits[i] |= bit
	} else {
		m.bits[i] &^= bit
	}
}

// Overlap reports whether other, placed at offset (dx, dy) relative to this
// mask's origin, shares at least one set bit with this mask.
func (m *Mask) Overlap(other *Mask, dx, dy int) bool {
	_, _, ok := m.OverlapPoint(other, dx, dy)
	return ok
}

// OverlapPoint returns the first overlapping point in this mask's local
// coordinates, scanning rows top to bottom.
func (m *Mask) OverlapPoint(other *Mask, dx, dy int) (x, y int, ok bool) {
	if m == nil || other == nil {
		return 0, 0, false
	}

	// Intersection of [0,w)x[0,h) with [dx,dx+ow)x[dy,dy+oh).
	x0, y0 := max(0, dx), max(0, dy)
	x1, y1 := min(m.w, dx+other.w), min(m.h, dy+other.h)
	if x0 >= x1 || y0 >= y1 {
		return 0, 0, false
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.Get(x, y) && other.Get(x-dx, y-dy) {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}
