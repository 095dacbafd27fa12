package tile

import (
	"errors"
	"image"
	"io"
)

var (
	errBadDepth = errors.New("tile: invalid bit depth")
	errBadIndex = errors.New("tile: color index out of range")
)

type encoder struct {
	w     io.Writer
	depth int
}

func (e *encoder) encode(m *image.Paletted) error {
	b := m.Bounds()
	row := make([]byte, e.depth)

	for ty := 0; ty < b.Dy()/tileHeight; ty++ {
		for tx := 0; tx < b.Dx()/tileWidth; tx++ {
			for y := 0; y < tileHeight; y++ {
				for p := range row {
					row[p] = 0
				}
				for c := 0; c < tileWidth; c++ {
					// Mirrored, so bit 7 is the leftmost pixel
					dx := b.Min.X + tx*tileWidth + tileWidth - 1 - c
					dy := b.Min.Y + ty*tileHeight + y

					i := m.ColorIndexAt(dx, dy)
					if int(i) >= 1<<uint(e.depth) {
						return errBadIndex
					}
					for p := range row {
						row[p] |= (i >> uint(p) & 1) << uint(c)
					}
				}
				if _, err := e.w.Write(row); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// Encode writes the color indices of m to w as planar tiles with the given
// bit depth. Every index must be less than 1<<depth.
func Encode(w io.Writer, m *image.Paletted, depth int) error {
	if depth < 1 || depth > maxDepth {
		return errBadDepth
	}

	e := encoder{w: w, depth: depth}

	return e.encode(m)
}
