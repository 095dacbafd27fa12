package tile

import (
	"errors"
	"image"
	"image/color"
	"io"
)

var (
	errNotEnough = errors.New("tile: not enough tile data")
	errTooMuch   = errors.New("tile: too much tile data")
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

type decoder struct {
	r     io.Reader
	depth int

	image *image.Paletted

	// Enough to hold one tile
	tmp [tileHeight * maxDepth]byte
}

func (d *decoder) decode(r io.Reader, width, height int, p color.Palette) error {
	d.r = r

	d.image = image.NewPaletted(image.Rect(0, 0, width/tileWidth*tileWidth, height/tileHeight*tileHeight), p)

	buf := d.tmp[:tileHeight*d.depth]
	for ty := 0; ty < height/tileHeight; ty++ {
		for tx := 0; tx < width/tileWidth; tx++ {
			if err := readFull(d.r, buf); err != nil {
				if err != io.ErrUnexpectedEOF {
					return err
				}
				return errNotEnough
			}
			for y := 0; y < tileHeight; y++ {
				for c := 0; c < tileWidth; c++ {
					var i uint8
					for p := 0; p < d.depth; p++ {
						i |= (buf[y*d.depth+p] >> uint(c) & 1) << uint(p)
					}
					d.image.SetColorIndex(tx*tileWidth+tileWidth-1-c, ty*tileHeight+y, i)
				}
			}
		}
	}

	if n, err := r.Read(d.tmp[:1]); n != 0 || (err != io.EOF && err != io.ErrUnexpectedEOF) {
		if err != nil {
			return err
		}
		return errTooMuch
	}

	return nil
}

// Decode reads planar tiles with the given bit depth from r covering an
// image of width by height pixels and returns the color indices as an
// image.Paletted using palette p. Any partial tile row or column is omitted
// from the result.
func Decode(r io.Reader, width, height, depth int, p color.Palette) (*image.Paletted, error) {
	if depth < 1 || depth > maxDepth {
		return nil, errBadDepth
	}
	d := decoder{depth: depth}
	if err := d.decode(r, width, height, p); err != nil {
		return nil, err
	}
	return d.image, nil
}
