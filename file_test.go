package vdpgfx

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/bodgit/vdpgfx/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempDir(t *testing.T) string {
	dir, err := ioutil.TempDir("", "vdpgfx")
	require.NoError(t, err)
	return dir
}

func writePNG(t *testing.T, file string, m image.Image) {
	f, err := os.Create(file)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, m))
}

func exists(file string) bool {
	_, err := os.Stat(file)
	return err == nil
}

func discard() *log.Logger {
	return log.New(ioutil.Discard, "", 0)
}

func TestWriteFile(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "logo.png")
	writePNG(t, file, stripes(16, 8, palette.GameGear[:16]))

	c := New(nil, discard())
	require.NoError(t, c.WriteFile(file, "", Options{Target: GameGear}))

	pal, err := ioutil.ReadFile(filepath.Join(dir, "logo.pal"))
	require.NoError(t, err)
	assert.Len(t, pal, PaletteSize)

	tiles, err := ioutil.ReadFile(filepath.Join(dir, "logo.bin"))
	require.NoError(t, err)
	assert.Len(t, tiles, 64)
}

func TestWriteFileInvalid(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "busy.png")
	colors := append(palette.GameGear[:16:16], palette.GameGear[63])
	writePNG(t, file, stripes(17, 8, colors))

	c := New(nil, discard())
	err := c.WriteFile(file, "", Options{Target: GameGear})

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.False(t, exists(filepath.Join(dir, "busy.pal")))
	assert.False(t, exists(filepath.Join(dir, "busy.bin")))
}

func TestWriteFileCleanup(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "logo.png")
	writePNG(t, file, solid(8, 8, color.White))

	// A directory in the way of the tile data
	require.NoError(t, os.Mkdir(filepath.Join(dir, "logo.bin"), 0755))

	c := New(nil, discard())
	assert.Error(t, c.WriteFile(file, "", Options{Target: SG1000}))
	assert.False(t, exists(filepath.Join(dir, "logo.pal")))
}

func TestDecodeError(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "corrupt.png")
	require.NoError(t, ioutil.WriteFile(file, []byte("not an image"), 0644))

	c := New(nil, discard())
	_, err := c.ConvertFile(file, Options{Target: MasterSystem})

	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, file, de.File)
	assert.Equal(t, image.ErrFormat, errors.Unwrap(err))

	_, err = c.ConvertFile(filepath.Join(dir, "missing.png"), Options{Target: MasterSystem})
	assert.True(t, errors.As(err, &de))
	assert.True(t, os.IsNotExist(errors.Unwrap(err)))
}

func TestCache(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	db, err := NewDB(filepath.Join(dir, "cache.db"))
	require.NoError(t, err)
	defer db.Close()

	file := filepath.Join(dir, "noise.png")
	writePNG(t, file, noise(12, 16, 6))

	opts := Options{Target: MasterSystem}

	out, err := db.Find("missing", opts)
	require.NoError(t, err)
	assert.Nil(t, out)

	c := New(db, discard())
	first, err := c.ConvertFile(file, opts)
	require.NoError(t, err)

	_, sha, err := decodeFile(file)
	require.NoError(t, err)

	cached, err := db.Find(sha, opts)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, first.Width, cached.Width)
	assert.Equal(t, first.Height, cached.Height)
	assert.Equal(t, first.Colors, cached.Colors)
	assert.Equal(t, first.Palette, cached.Palette)
	assert.Equal(t, first.Tiles, cached.Tiles)
	assert.Equal(t, first.Diagnostics, cached.Diagnostics)

	second, err := c.ConvertFile(file, opts)
	require.NoError(t, err)
	assert.Equal(t, first.Tiles, second.Tiles)

	// Different options are a different entry
	out, err = db.Find(sha, Options{Target: MasterSystem, Grayscale: true})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestBatch(t *testing.T) {
	src := tempDir(t)
	defer os.RemoveAll(src)
	dst := tempDir(t)
	defer os.RemoveAll(dst)

	require.NoError(t, os.MkdirAll(filepath.Join(src, "sprites"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(src, ".hidden"), 0755))

	writePNG(t, filepath.Join(src, "title.png"), noise(16, 16, 7))
	writePNG(t, filepath.Join(src, "sprites", "hero.png"), solid(8, 8, color.White))
	writePNG(t, filepath.Join(src, ".hidden", "skip.png"), solid(8, 8, color.White))
	require.NoError(t, ioutil.WriteFile(filepath.Join(src, "notes.txt"), []byte("ignored"), 0644))

	c := New(nil, discard())
	require.NoError(t, c.Batch(src, dst, Options{Target: MasterSystem}, 4))

	for _, file := range []string{"title.pal", "title.bin", filepath.Join("sprites", "hero.pal"), filepath.Join("sprites", "hero.bin")} {
		assert.True(t, exists(filepath.Join(dst, file)), file)
	}
	assert.False(t, exists(filepath.Join(dst, ".hidden")))
	assert.False(t, exists(filepath.Join(dst, "notes.pal")))
}

func TestBatchError(t *testing.T) {
	src := tempDir(t)
	defer os.RemoveAll(src)

	writePNG(t, filepath.Join(src, "busy.png"), noise(16, 16, 8))

	c := New(nil, discard())
	err := c.Batch(src, "", Options{Target: GameGear}, 2)

	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.False(t, exists(filepath.Join(src, "busy.pal")))
}
