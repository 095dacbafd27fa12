/*
Package image implements a decoder for the palette table and tile data pair
written by a conversion, rebuilding the picture the console would display.

The palette table is always 16 bytes, each a hardware palette index, of which
only the first 2^depth are referenced by the tiles. The tile data is a run of
8 by 8 planar tiles in row-major order; as the format carries no dimensions
the image width must be supplied and the height is inferred from the length
of the tile data.
*/
package image

const (
	tileWidth    = 8
	tileHeight   = tileWidth
	paletteBytes = 16
)
