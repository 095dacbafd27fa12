package vdpgfx

import (
	"database/sql"
	"encoding/json"

	"github.com/bodgit/vdpgfx/palette"
	"github.com/bodgit/vdpgfx/rgb"
	_ "github.com/mattn/go-sqlite3"
)

// DB caches conversion results keyed by the SHA-1 of the source image and the
// options used.
type DB struct {
	db *sql.DB
}

// NewDB opens or creates the sqlite database in file.
func NewDB(file string) (*DB, error) {
	db, err := sql.Open("sqlite3", file)
	if err != nil {
		return nil, err
	}
	// Batch workers share the handle, serialize writes through it
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS conversion (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL, options TEXT NOT NULL, width INTEGER NOT NULL, height INTEGER NOT NULL, colors BLOB, palette BLOB, tiles BLOB, diagnostics TEXT NOT NULL, UNIQUE(sha1, options))"); err != nil {
		db.Close()
		return nil, err
	}

	return &DB{
		db: db,
	}, nil
}

// Close closes the database.
func (db *DB) Close() error {
	return db.db.Close()
}

func packColors(p palette.Palette) []byte {
	b := make([]byte, 0, len(p)*3)
	for _, c := range p {
		b = append(b, c.R, c.G, c.B)
	}
	return b
}

func unpackColors(b []byte) palette.Palette {
	var p palette.Palette
	for i := 0; i+2 < len(b); i += 3 {
		p = append(p, rgb.Color{R: b[i], G: b[i+1], B: b[i+2]})
	}
	return p
}

// Add stores out as the result of converting the image with the given SHA-1
// using opts, replacing any previous result.
func (db *DB) Add(sha string, opts Options, out *Output) error {
	diagnostics, err := json.Marshal(out.Diagnostics)
	if err != nil {
		return err
	}

	if _, err := db.db.Exec("INSERT OR REPLACE INTO conversion (sha1, options, width, height, colors, palette, tiles, diagnostics) VALUES (?, ?, ?, ?, ?, ?, ?, ?)", sha, opts.String(), out.Width, out.Height, packColors(out.Colors), out.Palette, out.Tiles, string(diagnostics)); err != nil {
		return err
	}
	return nil
}

// Find returns the stored result for the image with the given SHA-1 and
// opts, or nil if there isn't one.
func (db *DB) Find(sha string, opts Options) (*Output, error) {
	var colors, pal, tiles []byte
	var diagnostics string
	out := Output{Target: opts.Target}

	switch err := db.db.QueryRow("SELECT width, height, colors, palette, tiles, diagnostics FROM conversion WHERE sha1 = ? AND options = ?", sha, opts.String()).Scan(&out.Width, &out.Height, &colors, &pal, &tiles, &diagnostics); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		if err := json.Unmarshal([]byte(diagnostics), &out.Diagnostics); err != nil {
			return nil, err
		}
		out.Colors = unpackColors(colors)
		out.Palette = pal
		out.Tiles = tiles
		return &out, nil
	default:
		return nil, err
	}
}
