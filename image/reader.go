package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"io"
	"io/ioutil"

	"github.com/bodgit/vdpgfx/palette"
	"github.com/bodgit/vdpgfx/tile"
)

var (
	errNotEnough  = errors.New("image: not enough palette data")
	errBadPalette = errors.New("image: invalid palette index")
	errBadDepth   = errors.New("image: invalid bit depth")
	errBadWidth   = errors.New("image: width is not a multiple of 8")
	errBadSize    = errors.New("image: tile data does not fill a whole number of rows")
)

// Format describes the hardware a palette table and tile data were written
// for.
type Format struct {
	Palette palette.Palette
	Depth   int
	Width   int
}

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

type decoder struct {
	f Format

	height  int
	palette color.Palette
	tiles   []byte

	image *image.Paletted

	tmp [paletteBytes]byte
}

func (d *decoder) readPalette(r io.Reader) error {
	if err := readFull(r, d.tmp[:]); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return errNotEnough
	}

	d.palette = make(color.Palette, 1<<uint(d.f.Depth))
	for i := range d.palette {
		if int(d.tmp[i]) >= len(d.f.Palette) {
			return errBadPalette
		}
		d.palette[i] = d.f.Palette[d.tmp[i]]
	}
	return nil
}

func (d *decoder) readTiles(r io.Reader) error {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return err
	}

	tileBytes := tileHeight * d.f.Depth
	perRow := d.f.Width / tileWidth * tileBytes
	if len(b)%perRow != 0 {
		return errBadSize
	}

	d.height = len(b) / perRow * tileHeight
	d.tiles = b
	return nil
}

func (d *decoder) decode(pal, tiles io.Reader, configOnly bool) error {
	if d.f.Depth < 1 || 1<<uint(d.f.Depth) > paletteBytes {
		return errBadDepth
	}
	if d.f.Width < tileWidth || d.f.Width%tileWidth != 0 {
		return errBadWidth
	}

	if err := d.readPalette(pal); err != nil {
		return err
	}

	if err := d.readTiles(tiles); err != nil {
		return err
	}

	if configOnly {
		return nil
	}

	m, err := tile.Decode(bytes.NewReader(d.tiles), d.f.Width, d.height, d.f.Depth, d.palette)
	if err != nil {
		return err
	}
	d.image = m

	return nil
}

// Decode reads a palette table from pal and tile data from tiles and returns
// the result as an image.Image.
func Decode(pal, tiles io.Reader, f Format) (image.Image, error) {
	d := decoder{f: f}
	if err := d.decode(pal, tiles, false); err != nil {
		return nil, err
	}
	return d.image, nil
}

// DecodeConfig returns the color model and dimensions of the image without
// decoding the tiles.
func DecodeConfig(pal, tiles io.Reader, f Format) (image.Config, error) {
	d := decoder{f: f}
	if err := d.decode(pal, tiles, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: d.palette,
		Width:      d.f.Width,
		Height:     d.height,
	}, nil
}
