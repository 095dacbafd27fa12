/*
Package rgb implements an in-memory 24-bit RGB image.

Every conversion works on one of these rather than an arbitrary image.Image
so that palette-indexed, grayscale and alpha-bearing sources all look the
same by the time any quantization happens.
*/
package rgb

import (
	"image"
	"image/color"
	"sort"
)

// Color is a single 24-bit RGB color. It is comparable so can be used as a
// map key.
type Color struct {
	R, G, B uint8
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Magnitude returns r²+g²+b², a cheap luminance-like ordering key.
func (c Color) Magnitude() int {
	return int(c.R)*int(c.R) + int(c.G)*int(c.G) + int(c.B)*int(c.B)
}

// Model converts any color to an RGB Color, dropping any alpha without
// compositing.
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if rgb, ok := c.(Color); ok {
		return rgb
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{n.R, n.G, n.B}
}

// Image is an in-memory image whose At method returns Color values.
type Image struct {
	Pix    []Color
	Stride int
	Rect   image.Rectangle
}

// New returns a new Image with the given bounds.
func New(r image.Rectangle) *Image {
	return &Image{
		Pix:    make([]Color, r.Dx()*r.Dy()),
		Stride: r.Dx(),
		Rect:   r,
	}
}

// Convert returns a copy of m as an Image, with its top-left corner at (0, 0).
func Convert(m image.Image) *Image {
	b := m.Bounds()
	dst := New(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.Pix[(y-b.Min.Y)*dst.Stride+x-b.Min.X] = model(m.At(x, y)).(Color)
		}
	}
	return dst
}

func (p *Image) ColorModel() color.Model {
	return Model
}

func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Image) PixOffset(x, y int) int {
	off := image.Pt(x, y).Sub(p.Rect.Min)
	return off.Y*p.Stride + off.X
}

func (p *Image) At(x, y int) color.Color {
	return p.RGBAt(x, y)
}

// RGBAt returns the Color at (x, y), or black if outside the bounds.
func (p *Image) RGBAt(x, y int) Color {
	if !(image.Point{x, y}).In(p.Rect) {
		return Color{}
	}
	return p.Pix[p.PixOffset(x, y)]
}

func (p *Image) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}).In(p.Rect) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = model(c).(Color)
}

// SetRGB sets the Color at (x, y).
func (p *Image) SetRGB(x, y int, c Color) {
	if !(image.Point{x, y}).In(p.Rect) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = c
}

// Clone returns a deep copy of the image.
func (p *Image) Clone() *Image {
	dup := *p
	dup.Pix = append([]Color(nil), p.Pix...)
	return &dup
}

// Colors returns the distinct colors in the image, sorted by ascending
// Magnitude. Colors of equal magnitude are ordered by R, then G, then B so
// the result never depends on the order pixels were scanned.
func (p *Image) Colors() []Color {
	seen := make(map[Color]struct{})
	var colors []Color
	for y := p.Rect.Min.Y; y < p.Rect.Max.Y; y++ {
		for x := p.Rect.Min.X; x < p.Rect.Max.X; x++ {
			c := p.Pix[p.PixOffset(x, y)]
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			colors = append(colors, c)
		}
	}
	Sort(colors)
	return colors
}

// Sort sorts colors in place by ascending Magnitude.
func Sort(colors []Color) {
	sort.Slice(colors, func(i, j int) bool {
		a, b := colors[i], colors[j]
		if ma, mb := a.Magnitude(), b.Magnitude(); ma != mb {
			return ma < mb
		}
		if a.R != b.R {
			return a.R < b.R
		}
		if a.G != b.G {
			return a.G < b.G
		}
		return a.B < b.B
	})
}
