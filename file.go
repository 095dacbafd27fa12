package vdpgfx

import (
	"crypto/sha1"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

const (
	// PaletteExt is the extension used for palette tables
	PaletteExt = ".pal"
	// TileExt is the extension used for tile data
	TileExt = ".bin"
)

var extensions = map[string]struct{}{
	".bmp":  {},
	".gif":  {},
	".jpeg": {},
	".jpg":  {},
	".png":  {},
	".webp": {},
}

func isImage(file string) bool {
	_, ok := extensions[strings.ToLower(filepath.Ext(file))]
	return ok
}

func decodeFile(file string) (image.Image, string, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, "", &DecodeError{File: file, Err: err}
	}
	defer f.Close()

	h := sha1.New()
	m, _, err := image.Decode(io.TeeReader(f, h))
	if err != nil {
		return nil, "", &DecodeError{File: file, Err: err}
	}

	return m, fmt.Sprintf("%X", h.Sum(nil)), nil
}

// ConvertFile decodes and converts the image in file. If the Converter has a
// database, previous results for the same image contents and options are
// reused.
func (c *Converter) ConvertFile(file string, opts Options) (*Output, error) {
	m, sha, err := decodeFile(file)
	if err != nil {
		return nil, err
	}

	if c.db != nil {
		out, err := c.db.Find(sha, opts)
		if err != nil {
			return nil, err
		}
		if out != nil {
			c.logger.Printf("%s: using cached conversion %s\n", file, sha)
			c.log(file, out)
			return out, nil
		}
	}

	out, err := c.Convert(file, m, opts)
	if err != nil {
		return nil, err
	}

	if c.db != nil {
		if err := c.db.Add(sha, opts, out); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Create both files and write out to them, removing whatever was created if
// anything fails
func writeFiles(base string, out *Output) (err error) {
	pal, err := os.Create(base + PaletteExt)
	if err != nil {
		return err
	}
	defer func() {
		pal.Close()
		if err != nil {
			os.Remove(base + PaletteExt)
		}
	}()

	tiles, err := os.Create(base + TileExt)
	if err != nil {
		return err
	}
	defer func() {
		tiles.Close()
		if err != nil {
			os.Remove(base + TileExt)
		}
	}()

	if err = out.Write(pal, tiles); err != nil {
		return err
	}
	if err = pal.Close(); err != nil {
		return err
	}
	return tiles.Close()
}

// WriteFile converts the image in file and writes the palette table and tile
// data alongside it, or into dir if it is not empty. Nothing is written if
// the conversion fails.
func (c *Converter) WriteFile(file, dir string, opts Options) error {
	out, err := c.ConvertFile(file, opts)
	if err != nil {
		return err
	}

	if dir == "" {
		dir = filepath.Dir(file)
	}
	base := filepath.Join(dir, strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)))

	if err := writeFiles(base, out); err != nil {
		return err
	}

	c.logger.Printf("%s: wrote %d colors, %d bytes of tiles\n", file, len(out.Colors), len(out.Tiles))

	return nil
}
