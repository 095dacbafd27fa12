/*
Package tile implements the planar 8 by 8 tile format used by the Sega Master
System, Game Gear and SG-1000 VDPs.

Each tile row is stored as one byte per bitplane, least significant plane
first, with the planes of a row interleaved before the next row starts. Bit
7 of every byte is the leftmost pixel of the row. A 4bpp tile is therefore 32
bytes and a 1bpp tile 8 bytes. Tiles follow each other in row-major order and
any pixels beyond the last whole tile in either direction are not encoded.
*/
package tile

const (
	tileWidth  = 8
	tileHeight = tileWidth
	maxDepth   = 8
)

// Size returns the number of bytes needed to encode an image of the given
// dimensions and bit depth.
func Size(width, height, depth int) int {
	return (width / tileWidth) * (height / tileHeight) * tileHeight * depth
}
