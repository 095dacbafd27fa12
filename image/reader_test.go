package image

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/bodgit/vdpgfx/palette"
	"github.com/bodgit/vdpgfx/rgb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func table(b ...byte) []byte {
	t := make([]byte, paletteBytes)
	copy(t, b)
	return t
}

func TestDecode(t *testing.T) {
	tiles := make([]byte, 2*32)
	tiles[0] = 0x80  // (0, 0) is slot 1
	tiles[32] = 0x01 // (15, 0) is slot 1

	f := Format{Palette: palette.GameGear, Depth: 4, Width: 16}
	m, err := Decode(bytes.NewReader(table(63, 0)), bytes.NewReader(tiles), f)
	require.NoError(t, err)

	b := m.Bounds()
	require.Equal(t, 16, b.Dx())
	require.Equal(t, 8, b.Dy())

	black, white := rgb.Color{}, rgb.Color{R: 0xff, G: 0xff, B: 0xff}
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			want := white
			if y == 0 && (x == 0 || x == 15) {
				want = black
			}
			assert.Equal(t, want, m.At(x, y), "(%d, %d)", x, y)
		}
	}
}

func TestDecodeConfig(t *testing.T) {
	f := Format{Palette: palette.SG1000, Depth: 1, Width: 256}
	c, err := DecodeConfig(bytes.NewReader(table(1, 15)), bytes.NewReader(make([]byte, 32*24*8)), f)
	require.NoError(t, err)

	assert.Equal(t, 256, c.Width)
	assert.Equal(t, 192, c.Height)
	assert.Equal(t, color.Palette{palette.SG1000[1], palette.SG1000[15]}, c.ColorModel)
}

func TestDecodeErrors(t *testing.T) {
	f := Format{Palette: palette.GameGear, Depth: 4, Width: 8}

	_, err := Decode(bytes.NewReader(table(64)), bytes.NewReader(make([]byte, 32)), f)
	assert.Equal(t, errBadPalette, err)

	_, err = Decode(bytes.NewReader(make([]byte, 15)), bytes.NewReader(make([]byte, 32)), f)
	assert.Equal(t, errNotEnough, err)

	_, err = Decode(bytes.NewReader(table()), bytes.NewReader(make([]byte, 31)), f)
	assert.Equal(t, errBadSize, err)

	_, err = Decode(bytes.NewReader(table()), bytes.NewReader(nil), Format{Palette: palette.GameGear, Depth: 4, Width: 12})
	assert.Equal(t, errBadWidth, err)

	_, err = Decode(bytes.NewReader(table()), bytes.NewReader(nil), Format{Palette: palette.GameGear, Depth: 8, Width: 8})
	assert.Equal(t, errBadDepth, err)
}
