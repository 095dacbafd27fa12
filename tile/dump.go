package tile

import (
	"bufio"
	"io"
)

// Dump writes a text rendering of the tile data read from r to w. Every byte
// becomes a line of eight characters, 'x' for a set bit and '.' otherwise,
// least significant bit first, with a blank line after every eight bytes.
func Dump(w io.Writer, r io.Reader) error {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	var line [tileWidth + 1]byte
	line[tileWidth] = '\n'

	for n := 1; ; n++ {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		for i := 0; i < tileWidth; i++ {
			line[i] = '.'
			if b&(1<<uint(i)) != 0 {
				line[i] = 'x'
			}
		}
		if _, err := bw.Write(line[:]); err != nil {
			return err
		}
		if n%tileHeight == 0 {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
