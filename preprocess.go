package vdpgfx

import (
	"image"
	"image/color"

	"github.com/disintegration/gift"
	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/draw"
)

// Fixed contrast multiplier applied after converting to grayscale
const contrast = 3.0

func clamp01(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// Convert to grayscale then stretch every pixel away from the mean
// luminance by the contrast multiplier
func grayscale(m image.Image) image.Image {
	g := gift.New(gift.Grayscale())
	gray := image.NewRGBA(g.Bounds(m.Bounds()))
	g.Draw(gray, m)

	n := len(gray.Pix) / 4
	if n == 0 {
		return gray
	}

	var sum int
	for i := 0; i < len(gray.Pix); i += 4 {
		sum += int(gray.Pix[i])
	}
	mean := float32(int(float64(sum)/float64(n)+0.5)) / 0xff

	g = gift.New(gift.ColorFunc(func(r0, g0, b0, a0 float32) (float32, float32, float32, float32) {
		v := clamp01(mean + (r0-mean)*contrast)
		return v, v, v, a0
	}))
	dst := image.NewRGBA(g.Bounds(gray.Bounds()))
	g.Draw(dst, gray)

	return dst
}

// Scale to exactly size. Smooth scaling introduces new colors so is only
// used when the result will be dithered anyway
func resize(m image.Image, size image.Point, smooth bool) image.Image {
	var s draw.Interpolator = draw.NearestNeighbor
	if smooth {
		s = draw.CatmullRom
	}

	dst := image.NewRGBA(image.Rectangle{Max: size})
	s.Scale(dst, dst.Bounds(), m, m.Bounds(), draw.Src, nil)

	return dst
}

// Median cut down to at most n colors
func reduce(m image.Image, n int) image.Image {
	b := m.Bounds()

	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, n), m))
	draw.Draw(pm, b, m, b.Min, draw.Src)

	return pm
}

func preprocess(m image.Image, opts Options) image.Image {
	if opts.Grayscale {
		m = grayscale(m)
	}
	if opts.Resize != (image.Point{}) {
		m = resize(m, opts.Resize, opts.Target.Dither())
	}
	if opts.Reduce > 0 {
		m = reduce(m, opts.Reduce)
	}
	return m
}
