package vdpgfx

import "github.com/bodgit/vdpgfx/palette"

// PaletteSize is the fixed length of every palette table.
const PaletteSize = 16

// Write the hardware index of every working palette color in slot order,
// padded with the target fill value
func serializePalette(t Target, colors palette.Palette) []byte {
	l := targets[t]

	b := make([]byte, 0, PaletteSize)
	seen := make(map[int]struct{})
	for _, c := range colors {
		i := l.palette.Index(c)
		if i < 0 {
			continue
		}
		if l.reserved && i == palette.Transparent {
			i = palette.Transparent + 1
		}
		if _, ok := seen[i]; ok {
			continue
		}
		seen[i] = struct{}{}
		b = append(b, byte(i))
	}

	for len(b) < PaletteSize {
		b = append(b, l.fill)
	}

	return b[:PaletteSize]
}
