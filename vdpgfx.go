/*
Package vdpgfx is a library for converting truecolor images into the planar
tile and palette formats used by the Sega Master System, Game Gear and
SG-1000.

Each conversion produces two byte streams: a 16 byte palette table holding
one hardware palette index per color used, and the tile data itself. The
Master System target dithers the image against its hardware palette and
tolerates images that exceed its limits; the other targets reject them.
*/
package vdpgfx

import (
	"image"
	"log"
)

// Converter converts image files, optionally caching the results.
type Converter struct {
	db     *DB
	logger *log.Logger
}

// New returns a Converter. db may be nil to disable caching.
func New(db *DB, logger *log.Logger) *Converter {
	return &Converter{
		db:     db,
		logger: logger,
	}
}

// Convert converts m, logging any diagnostics against name.
func (c *Converter) Convert(name string, m image.Image, opts Options) (*Output, error) {
	out, err := Convert(m, opts)
	if err != nil {
		return nil, err
	}
	c.log(name, out)
	return out, nil
}

func (c *Converter) log(name string, out *Output) {
	for _, d := range out.Diagnostics {
		c.logger.Printf("%s: %s\n", name, d)
	}
}
