package rgb

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tables := map[string]struct {
		src  image.Image
		want Color
	}{
		"paletted": {
			func() image.Image {
				m := image.NewPaletted(image.Rect(0, 0, 2, 2), color.Palette{color.RGBA{0x10, 0x20, 0x30, 0xff}})
				return m
			}(),
			Color{0x10, 0x20, 0x30},
		},
		"gray": {
			func() image.Image {
				m := image.NewGray(image.Rect(0, 0, 2, 2))
				for i := range m.Pix {
					m.Pix[i] = 0x80
				}
				return m
			}(),
			Color{0x80, 0x80, 0x80},
		},
		"alpha": {
			func() image.Image {
				m := image.NewNRGBA(image.Rect(0, 0, 2, 2))
				for i := 0; i < len(m.Pix); i += 4 {
					copy(m.Pix[i:], []uint8{0xff, 0x40, 0x00, 0x00})
				}
				return m
			}(),
			Color{0xff, 0x40, 0x00},
		},
	}

	for name, table := range tables {
		t.Run(name, func(t *testing.T) {
			m := Convert(table.src)
			assert.Equal(t, image.Rect(0, 0, 2, 2), m.Bounds())
			for _, c := range m.Pix {
				assert.Equal(t, table.want, c)
			}
		})
	}
}

func TestConvertOffset(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 12, 11))
	src.Set(11, 10, color.RGBA{1, 2, 3, 0xff})

	m := Convert(src)
	require.Equal(t, image.Rect(0, 0, 2, 1), m.Bounds())
	assert.Equal(t, Color{}, m.RGBAt(0, 0))
	assert.Equal(t, Color{1, 2, 3}, m.RGBAt(1, 0))
}

func TestColors(t *testing.T) {
	m := New(image.Rect(0, 0, 4, 1))
	m.SetRGB(0, 0, Color{0xff, 0xff, 0xff})
	m.SetRGB(1, 0, Color{0, 0, 0x10})
	m.SetRGB(2, 0, Color{0x10, 0, 0})
	m.SetRGB(3, 0, Color{0xff, 0xff, 0xff})

	assert.Equal(t, []Color{{0, 0, 0x10}, {0x10, 0, 0}, {0xff, 0xff, 0xff}}, m.Colors())
}

func TestClone(t *testing.T) {
	m := New(image.Rect(0, 0, 1, 1))
	dup := m.Clone()
	dup.SetRGB(0, 0, Color{1, 1, 1})
	assert.Equal(t, Color{}, m.RGBAt(0, 0))
}

func TestRGBA(t *testing.T) {
	r, g, b, a := Color{0xff, 0x80, 0x00}.RGBA()
	assert.Equal(t, []uint32{0xffff, 0x8080, 0, 0xffff}, []uint32{r, g, b, a})
}
