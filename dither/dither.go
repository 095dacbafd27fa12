/*
Package dither implements the two pass error-diffusion used by the Master
System target.

The first pass walks the image in raster order, matching each pixel against
the full hardware palette and spreading the quantization error to the
neighbors that have not yet been visited using the Floyd-Steinberg weights.
Because every pixel depends on errors diffused from pixels above and to the
left, the pass is strictly sequential.

The second pass snaps every pixel to its nearest color in the working
palette, as the first pass is free to pick hardware colors the image was
never assigned a slot for.
*/
package dither

import (
	"image"

	"github.com/bodgit/vdpgfx/palette"
	"github.com/bodgit/vdpgfx/rgb"
)

// Threshold is the Perceptual distance below which a pixel is left alone
// rather than being matched and diffused.
const Threshold = 0.0025

type weight struct {
	dx, dy int
	w      float64
}

// Floyd-Steinberg, in sixteenths
var weights = [...]weight{
	{1, 0, 7},
	{-1, 1, 3},
	{0, 1, 5},
	{1, 1, 1},
}

func clamp(v float64) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	// Truncate, the same as storing back into an 8-bit channel
	return uint8(v)
}

func diffuse(m *rgb.Image, x, y int, er, eg, eb int) {
	for _, w := range weights {
		nx, ny := x+w.dx, y+w.dy
		if !(image.Point{nx, ny}).In(m.Rect) {
			continue
		}
		i := m.PixOffset(nx, ny)
		c := m.Pix[i]
		m.Pix[i] = rgb.Color{
			R: clamp(float64(c.R) + float64(er)*w.w/16),
			G: clamp(float64(c.G) + float64(eg)*w.w/16),
			B: clamp(float64(c.B) + float64(eb)*w.w/16),
		}
	}
}

// Diffuse runs the first pass in place on m against the hardware palette hw.
func Diffuse(m *rgb.Image, hw palette.Palette) {
	matcher := palette.NewMatcher(hw)
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := m.PixOffset(x, y)
			old := m.Pix[i]
			c := matcher.Nearest(old)
			if palette.Perceptual(old, c) < Threshold {
				continue
			}
			m.Pix[i] = c
			diffuse(m, x, y, int(old.R)-int(c.R), int(old.G)-int(c.G), int(old.B)-int(c.B))
		}
	}
}

// Snap runs the second pass in place on m, replacing every pixel with its
// nearest color in p.
func Snap(m *rgb.Image, p palette.Palette) {
	if len(p) == 0 {
		return
	}
	matcher := palette.NewMatcher(p)
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := m.PixOffset(x, y)
			m.Pix[i] = matcher.Nearest(m.Pix[i])
		}
	}
}

// FloydSteinberg returns a copy of m dithered against the hardware palette
// hw, containing only colors from the working palette work.
func FloydSteinberg(m *rgb.Image, hw, work palette.Palette) *rgb.Image {
	dup := m.Clone()
	Diffuse(dup, hw)
	Snap(dup, work)
	return dup
}
