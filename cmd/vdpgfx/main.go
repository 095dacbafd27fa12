package main

import (
	"fmt"
	"image/png"
	"io/ioutil"
	"log"
	"os"
	"runtime"

	"github.com/bodgit/vdpgfx"
	vdpimage "github.com/bodgit/vdpgfx/image"
	"github.com/bodgit/vdpgfx/tile"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func newConverter(c *cli.Context) (*vdpgfx.Converter, func() error, error) {
	if c.String("db") == "" {
		return vdpgfx.New(nil, newLogger(c)), func() error { return nil }, nil
	}
	db, err := vdpgfx.NewDB(c.String("db"))
	if err != nil {
		return nil, nil, err
	}
	return vdpgfx.New(db, newLogger(c)), db.Close, nil
}

func options(c *cli.Context) (vdpgfx.Options, error) {
	t, err := vdpgfx.ParseTarget(c.String("target"))
	if err != nil {
		return vdpgfx.Options{}, err
	}

	opts := vdpgfx.Options{
		Target:    t,
		Grayscale: c.Bool("grayscale"),
		Reduce:    c.Int("reduce"),
	}

	if s := c.String("resize"); s != "" {
		if opts.Resize, err = vdpgfx.ParseSize(s); err != nil {
			return vdpgfx.Options{}, err
		}
	}

	return opts, nil
}

var conversionFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "target",
		Aliases: []string{"t"},
		Value:   "sms",
		Usage:   "output format, one of sms, gg or sg",
	},
	&cli.BoolFlag{
		Name:  "grayscale",
		Usage: "convert to high contrast grayscale first (sms only)",
	},
	&cli.StringFlag{
		Name:  "resize",
		Usage: "resize to `WxH` first",
	},
	&cli.IntFlag{
		Name:  "reduce",
		Usage: "reduce to `N` colors with a median cut first",
	},
	&cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "write output to `DIRECTORY` rather than alongside the input",
	},
}

func main() {
	app := cli.NewApp()

	app.Name = "vdpgfx"
	app.Usage = "Sega 8-bit VDP tile conversion utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"VDPGFX_DB"},
			Usage:   "path to conversion cache database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Convert images to palette and tile data",
			Description: "Writes FILE.pal and FILE.bin for each FILE given.",
			ArgsUsage:   "FILE...",
			Flags:       conversionFlags,
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				opts, err := options(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				m, closer, err := newConverter(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer closer()

				for _, file := range c.Args().Slice() {
					if err := m.WriteFile(file, c.String("output"), opts); err != nil {
						return cli.NewExitError(err, 1)
					}
				}

				return nil
			},
		},
		{
			Name:        "batch",
			Usage:       "Convert every image under a directory",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Flags: append([]cli.Flag{
				&cli.IntFlag{
					Name:  "workers",
					Value: runtime.NumCPU(),
					Usage: "number of concurrent conversions",
				},
			}, conversionFlags...),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				opts, err := options(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				m, closer, err := newConverter(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer closer()

				if err := m.Batch(c.Args().First(), c.String("output"), opts, c.Int("workers")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "view",
			Usage:       "Print tile data as text",
			Description: "",
			ArgsUsage:   "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				f, err := os.Open(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer f.Close()

				if err := tile.Dump(os.Stdout, f); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "preview",
			Usage:       "Render palette and tile data as a PNG",
			Description: "",
			ArgsUsage:   "PALETTE TILES OUTPUT",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "target",
					Aliases: []string{"t"},
					Value:   "sms",
					Usage:   "format of the input, one of sms, gg or sg",
				},
				&cli.IntFlag{
					Name:  "width",
					Value: 256,
					Usage: "image width in pixels",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 3 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				t, err := vdpgfx.ParseTarget(c.String("target"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				pal, err := os.Open(c.Args().Get(0))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer pal.Close()

				tiles, err := os.Open(c.Args().Get(1))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer tiles.Close()

				m, err := vdpimage.Decode(pal, tiles, vdpimage.Format{
					Palette: t.Palette(),
					Depth:   t.Depth(),
					Width:   c.Int("width"),
				})
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				f, err := os.Create(c.Args().Get(2))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer f.Close()

				if err := png.Encode(f, m); err != nil {
					return cli.NewExitError(fmt.Errorf("%s: %w", f.Name(), err), 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
