package assets

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Scale returns img enlarged by an integer factor with nearest-neighbour
// sampling, the way the sprites are doubled for the 500x800 playfield.
func Scale(img image.Image, factor int) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// FlipVertical returns a copy of img mirrored top to bottom.
func FlipVertical(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.Set(x, b.Dy()-1-y, img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}

// Rotate returns img rotated counter-clockwise by degrees around its center.
// The result grows to hold the whole rotated image, so its size depends on the
// angle; corners outside the source are transparent.
func Rotate(img image.Image, degrees float64) *image.NRGBA {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	if math.Mod(degrees, 360) == 0 {
		dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		xdraw.Copy(dst, image.Point{}, img, b, xdraw.Src, nil)
		return dst
	}

	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)

	// Shave float noise so that exact quarter turns do not gain a pixel.
	dw := int(math.Ceil(math.Abs(w*cos) + math.Abs(h*sin) - 1e-9))
	dh := int(math.Ceil(math.Abs(w*sin) + math.Abs(h*cos) - 1e-9))
	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))

	// Source to destination, y axis pointing down:
	//   x' =  cos*(x-cx) + sin*(y-cy) + dcx
	//   y' = -sin*(x-cx) + cos*(y-cy) + dcy
	cx, cy := float64(b.Min.X)+w/2, float64(b.Min.Y)+h/2
	dcx, dcy := float64(dw)/2, float64(dh)/2
	s2d := f64.Aff3{
		cos, sin, dcx - cos*cx - sin*cy,
		-sin, cos, dcy + sin*cx - cos*cy,
	}
	xdraw.NearestNeighbor.Transform(dst, s2d, img, b, xdraw.Src, nil)
	return dst
}
