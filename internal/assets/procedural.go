package assets

import (
	"image"
	"image/color"
)

// Native (unscaled) art sizes, matching the classic sprite sheet.
const (
	birdW, birdH        = 34, 24
	pipeW, pipeH        = 52, 320
	pipeLipH, pipeInset = 24, 2
	groundW, groundH    = 336, 112
	skyW, skyH          = 288, 512
)

var (
	birdBody   = color.NRGBA{R: 250, G: 200, B: 40, A: 255}
	birdWing   = color.NRGBA{R: 252, G: 240, B: 220, A: 255}
	birdBeak   = color.NRGBA{R: 245, G: 110, B: 30, A: 255}
	birdEye    = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	pipeFill   = color.NRGBA{R: 115, G: 190, B: 45, A: 255}
	pipeEdge   = color.NRGBA{R: 84, G: 56, B: 71, A: 255}
	groundFill = color.NRGBA{R: 222, G: 216, B: 149, A: 255}
	grassFill  = color.NRGBA{R: 115, G: 190, B: 45, A: 255}
	skyFill    = color.NRGBA{R: 78, G: 192, B: 202, A: 255}
)

// Default returns a registry drawn in code, used when no asset directory is
// configured.
func Default() *Registry {
	src := Source{
		Pipe:       pipeImage(),
		Ground:     groundImage(),
		Background: solid(skyW, skyH, skyFill),
	}
	for i := range src.BirdFrames {
		src.BirdFrames[i] = birdImage(i)
	}

	r, err := Build(src)
	if err != nil {
		// Procedural sources are always complete.
		panic(err)
	}
	return r
}

// birdImage draws an elliptical body with a wing whose height depends on
// the flap frame. Corners stay transparent.
func birdImage(frame int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, birdW, birdH))
	const cx, cy = birdW / 2.0, birdH / 2.0
	for y := 0; y < birdH; y++ {
		for x := 0; x < birdW; x++ {
			dx := (float64(x) + 0.5 - cx) / cx
			dy := (float64(y) + 0.5 - cy) / cy
			if dx*dx+dy*dy <= 1 {
				img.SetNRGBA(x, y, birdBody)
			}
		}
	}

	// Beak and eye sit inside the body outline.
	for y := 12; y < 17; y++ {
		for x := 26; x < 33; x++ {
			if img.NRGBAAt(x, y).A > 0 {
				img.SetNRGBA(x, y, birdBeak)
			}
		}
	}
	for y := 5; y < 9; y++ {
		for x := 22; x < 26; x++ {
			img.SetNRGBA(x, y, birdEye)
		}
	}

	// down, mid, up
	wingTop := [BirdFrameCount]int{13, 10, 6}[frame%BirdFrameCount]
	for y := wingTop; y < wingTop+6; y++ {
		for x := 3; x < 13; x++ {
			img.SetNRGBA(x, y, birdWing)
		}
	}
	return img
}

// pipeImage draws the lower pipe piece: a full-width lip on top of a body
// inset on both sides.
func pipeImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, pipeW, pipeH))
	for y := 0; y < pipeH; y++ {
		x0, x1 := pipeInset, pipeW-pipeInset
		if y < pipeLipH {
			x0, x1 = 0, pipeW
		}
		for x := x0; x < x1; x++ {
			c := pipeFill
			if x == x0 || x == x1-1 || y == 0 || y == pipeLipH-1 {
				c = pipeEdge
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// groundImage draws an opaque tile with a strip of grass along the top.
func groundImage() *image.NRGBA {
	img := solid(groundW, groundH, groundFill)
	for y := 0; y < 6; y++ {
		for x := 0; x < groundW; x++ {
			img.SetNRGBA(x, y, grassFill)
		}
	}
	return img
}

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
