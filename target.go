package vdpgfx

import (
	"fmt"

	"github.com/bodgit/vdpgfx/palette"
)

// Target is one of the supported output formats.
type Target int

const (
	// GameGear is 4bpp output matched against the even 64 color table with
	// no dithering.
	GameGear Target = iota
	// SG1000 is 1bpp output for the TMS9918 16 color palette.
	SG1000
	// MasterSystem is 4bpp output dithered against the 64 color table. It
	// tolerates images over its limits, degrading the result rather than
	// failing.
	MasterSystem
)

type limits struct {
	name     string
	depth    int
	width    int
	height   int
	palette  palette.Palette
	fill     byte
	reserved bool
	dither   bool
}

var targets = [...]limits{
	GameGear: {
		name:    "gg",
		depth:   4,
		width:   256,
		height:  224,
		palette: palette.GameGear,
	},
	SG1000: {
		name:     "sg",
		depth:    1,
		width:    256,
		height:   192,
		palette:  palette.SG1000,
		fill:     0x0a,
		reserved: true,
	},
	MasterSystem: {
		name:    "sms",
		depth:   4,
		width:   256,
		height:  240,
		palette: palette.MasterSystem,
		dither:  true,
	},
}

// ParseTarget returns the Target with the given short name.
func ParseTarget(s string) (Target, error) {
	for i, l := range targets {
		if l.name == s {
			return Target(i), nil
		}
	}
	return 0, fmt.Errorf("vdpgfx: unknown target %q", s)
}

func (t Target) valid() bool {
	return t >= 0 && int(t) < len(targets)
}

func (t Target) String() string {
	if !t.valid() {
		return fmt.Sprintf("Target(%d)", int(t))
	}
	return targets[t].name
}

// Depth returns the number of bits per pixel.
func (t Target) Depth() int {
	return targets[t].depth
}

// Colors returns the maximum number of colors in the working palette.
func (t Target) Colors() int {
	return 1 << uint(targets[t].depth)
}

// MaxWidth returns the widest image accepted without complaint.
func (t Target) MaxWidth() int {
	return targets[t].width
}

// MaxHeight returns the tallest image accepted without complaint.
func (t Target) MaxHeight() int {
	return targets[t].height
}

// Palette returns the hardware palette.
func (t Target) Palette() palette.Palette {
	return targets[t].palette
}

// Dither reports whether the target uses error diffusion, which also makes
// its limits advisory.
func (t Target) Dither() bool {
	return targets[t].dither
}
