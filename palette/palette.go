/*
Package palette implements the fixed hardware palettes of the Sega 8-bit
consoles, the color distance metrics used to match against them and the
working palette derived from a single image.

The 64 color tables are a regular 4x4x4 cube of intensity levels; the
hardware index of a color is r + 4*g + 16*b where r, g and b are the level
numbers 0-3 of each channel, matching the VDP's --BBGGRR color RAM layout.
*/
package palette

import (
	"image/color"

	"github.com/bodgit/vdpgfx/rgb"
)

// Palette is an ordered list of hardware colors. The position of a color is
// its hardware index.
type Palette []rgb.Color

// GameGear is the 64 color table used by the non-dithered 4bpp target, with
// channel levels 0x00, 0x55, 0xaa and 0xff.
var GameGear = Palette{
	{R: 0x00, G: 0x00, B: 0x00}, {R: 0x55, G: 0x00, B: 0x00}, {R: 0xaa, G: 0x00, B: 0x00}, {R: 0xff, G: 0x00, B: 0x00},
	{R: 0x00, G: 0x55, B: 0x00}, {R: 0x55, G: 0x55, B: 0x00}, {R: 0xaa, G: 0x55, B: 0x00}, {R: 0xff, G: 0x55, B: 0x00},
	{R: 0x00, G: 0xaa, B: 0x00}, {R: 0x55, G: 0xaa, B: 0x00}, {R: 0xaa, G: 0xaa, B: 0x00}, {R: 0xff, G: 0xaa, B: 0x00},
	{R: 0x00, G: 0xff, B: 0x00}, {R: 0x55, G: 0xff, B: 0x00}, {R: 0xaa, G: 0xff, B: 0x00}, {R: 0xff, G: 0xff, B: 0x00},
	{R: 0x00, G: 0x00, B: 0x55}, {R: 0x55, G: 0x00, B: 0x55}, {R: 0xaa, G: 0x00, B: 0x55}, {R: 0xff, G: 0x00, B: 0x55},
	{R: 0x00, G: 0x55, B: 0x55}, {R: 0x55, G: 0x55, B: 0x55}, {R: 0xaa, G: 0x55, B: 0x55}, {R: 0xff, G: 0x55, B: 0x55},
	{R: 0x00, G: 0xaa, B: 0x55}, {R: 0x55, G: 0xaa, B: 0x55}, {R: 0xaa, G: 0xaa, B: 0x55}, {R: 0xff, G: 0xaa, B: 0x55},
	{R: 0x00, G: 0xff, B: 0x55}, {R: 0x55, G: 0xff, B: 0x55}, {R: 0xaa, G: 0xff, B: 0x55}, {R: 0xff, G: 0xff, B: 0x55},
	{R: 0x00, G: 0x00, B: 0xaa}, {R: 0x55, G: 0x00, B: 0xaa}, {R: 0xaa, G: 0x00, B: 0xaa}, {R: 0xff, G: 0x00, B: 0xaa},
	{R: 0x00, G: 0x55, B: 0xaa}, {R: 0x55, G: 0x55, B: 0xaa}, {R: 0xaa, G: 0x55, B: 0xaa}, {R: 0xff, G: 0x55, B: 0xaa},
	{R: 0x00, G: 0xaa, B: 0xaa}, {R: 0x55, G: 0xaa, B: 0xaa}, {R: 0xaa, G: 0xaa, B: 0xaa}, {R: 0xff, G: 0xaa, B: 0xaa},
	{R: 0x00, G: 0xff, B: 0xaa}, {R: 0x55, G: 0xff, B: 0xaa}, {R: 0xaa, G: 0xff, B: 0xaa}, {R: 0xff, G: 0xff, B: 0xaa},
	{R: 0x00, G: 0x00, B: 0xff}, {R: 0x55, G: 0x00, B: 0xff}, {R: 0xaa, G: 0x00, B: 0xff}, {R: 0xff, G: 0x00, B: 0xff},
	{R: 0x00, G: 0x55, B: 0xff}, {R: 0x55, G: 0x55, B: 0xff}, {R: 0xaa, G: 0x55, B: 0xff}, {R: 0xff, G: 0x55, B: 0xff},
	{R: 0x00, G: 0xaa, B: 0xff}, {R: 0x55, G: 0xaa, B: 0xff}, {R: 0xaa, G: 0xaa, B: 0xff}, {R: 0xff, G: 0xaa, B: 0xff},
	{R: 0x00, G: 0xff, B: 0xff}, {R: 0x55, G: 0xff, B: 0xff}, {R: 0xaa, G: 0xff, B: 0xff}, {R: 0xff, G: 0xff, B: 0xff},
}

// MasterSystem is the 64 color table used by the dithered 4bpp target, with
// channel levels 0x00, 0x54, 0xab and 0xff.
var MasterSystem = Palette{
	{R: 0x00, G: 0x00, B: 0x00}, {R: 0x54, G: 0x00, B: 0x00}, {R: 0xab, G: 0x00, B: 0x00}, {R: 0xff, G: 0x00, B: 0x00},
	{R: 0x00, G: 0x54, B: 0x00}, {R: 0x54, G: 0x54, B: 0x00}, {R: 0xab, G: 0x54, B: 0x00}, {R: 0xff, G: 0x54, B: 0x00},
	{R: 0x00, G: 0xab, B: 0x00}, {R: 0x54, G: 0xab, B: 0x00}, {R: 0xab, G: 0xab, B: 0x00}, {R: 0xff, G: 0xab, B: 0x00},
	{R: 0x00, G: 0xff, B: 0x00}, {R: 0x54, G: 0xff, B: 0x00}, {R: 0xab, G: 0xff, B: 0x00}, {R: 0xff, G: 0xff, B: 0x00},
	{R: 0x00, G: 0x00, B: 0x54}, {R: 0x54, G: 0x00, B: 0x54}, {R: 0xab, G: 0x00, B: 0x54}, {R: 0xff, G: 0x00, B: 0x54},
	{R: 0x00, G: 0x54, B: 0x54}, {R: 0x54, G: 0x54, B: 0x54}, {R: 0xab, G: 0x54, B: 0x54}, {R: 0xff, G: 0x54, B: 0x54},
	{R: 0x00, G: 0xab, B: 0x54}, {R: 0x54, G: 0xab, B: 0x54}, {R: 0xab, G: 0xab, B: 0x54}, {R: 0xff, G: 0xab, B: 0x54},
	{R: 0x00, G: 0xff, B: 0x54}, {R: 0x54, G: 0xff, B: 0x54}, {R: 0xab, G: 0xff, B: 0x54}, {R: 0xff, G: 0xff, B: 0x54},
	{R: 0x00, G: 0x00, B: 0xab}, {R: 0x54, G: 0x00, B: 0xab}, {R: 0xab, G: 0x00, B: 0xab}, {R: 0xff, G: 0x00, B: 0xab},
	{R: 0x00, G: 0x54, B: 0xab}, {R: 0x54, G: 0x54, B: 0xab}, {R: 0xab, G: 0x54, B: 0xab}, {R: 0xff, G: 0x54, B: 0xab},
	{R: 0x00, G: 0xab, B: 0xab}, {R: 0x54, G: 0xab, B: 0xab}, {R: 0xab, G: 0xab, B: 0xab}, {R: 0xff, G: 0xab, B: 0xab},
	{R: 0x00, G: 0xff, B: 0xab}, {R: 0x54, G: 0xff, B: 0xab}, {R: 0xab, G: 0xff, B: 0xab}, {R: 0xff, G: 0xff, B: 0xab},
	{R: 0x00, G: 0x00, B: 0xff}, {R: 0x54, G: 0x00, B: 0xff}, {R: 0xab, G: 0x00, B: 0xff}, {R: 0xff, G: 0x00, B: 0xff},
	{R: 0x00, G: 0x54, B: 0xff}, {R: 0x54, G: 0x54, B: 0xff}, {R: 0xab, G: 0x54, B: 0xff}, {R: 0xff, G: 0x54, B: 0xff},
	{R: 0x00, G: 0xab, B: 0xff}, {R: 0x54, G: 0xab, B: 0xff}, {R: 0xab, G: 0xab, B: 0xff}, {R: 0xff, G: 0xab, B: 0xff},
	{R: 0x00, G: 0xff, B: 0xff}, {R: 0x54, G: 0xff, B: 0xff}, {R: 0xab, G: 0xff, B: 0xff}, {R: 0xff, G: 0xff, B: 0xff},
}

// SG1000 is the 16 color TMS9918 table used by the 1bpp target. Index 0 is
// transparent and duplicates the black at index 1.
var SG1000 = Palette{
	{R: 0x00, G: 0x00, B: 0x00}, {R: 0x00, G: 0x00, B: 0x00}, {R: 0x21, G: 0xc8, B: 0x42}, {R: 0x5e, G: 0xdc, B: 0x78},
	{R: 0x54, G: 0x55, B: 0xed}, {R: 0x7d, G: 0x76, B: 0xfc}, {R: 0xd4, G: 0x52, B: 0x4d}, {R: 0x42, G: 0xeb, B: 0xf5},
	{R: 0xfc, G: 0x55, B: 0x54}, {R: 0xff, G: 0x79, B: 0x78}, {R: 0xd4, G: 0xc1, B: 0x54}, {R: 0xe6, G: 0xce, B: 0x80},
	{R: 0x21, G: 0xb0, B: 0x3b}, {R: 0xc9, G: 0x5b, B: 0xba}, {R: 0xcc, G: 0xcc, B: 0xcc}, {R: 0xff, G: 0xff, B: 0xff},
}

// Transparent is the SG1000 index that must never be written to a palette
// table.
const Transparent = 0

// Index returns the position of the first entry equal to c, or -1 if c is
// not in the palette.
func (p Palette) Index(c rgb.Color) int {
	for i, e := range p {
		if e == c {
			return i
		}
	}
	return -1
}

// Nearest returns the position of the entry closest to c by Distance. Ties
// resolve to the lowest position.
func (p Palette) Nearest(c rgb.Color) int {
	best, bestDist := -1, int(^uint(0)>>1)
	for i, e := range p {
		if d := Distance(c, e); d < bestDist {
			best, bestDist = i, d
			if d == 0 {
				break
			}
		}
	}
	return best
}

// Color converts the palette to a color.Palette.
func (p Palette) Color() color.Palette {
	cp := make(color.Palette, len(p))
	for i, c := range p {
		cp[i] = c
	}
	return cp
}
