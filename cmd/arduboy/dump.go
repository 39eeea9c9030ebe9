package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/valerio/go-arduboy/arduboy/bitmap"
	"github.com/valerio/go-arduboy/arduboy/pgm"
)

var dumpCommand = cli.Command{
	Name:      "dump",
	Usage:     "Write every frame of a bitmap file as a plain PGM sprite sheet",
	ArgsUsage: "<bitmap file>",
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:  "plus-mask",
			Usage: "The file interleaves image and mask bytes",
		},
		cli.StringFlag{
			Name:  "out, o",
			Usage: "Output file (default: stdout)",
		},
	},
	Action: dumpBitmap,
}

func dumpBitmap(c *cli.Context) error {
	if c.NArg() == 0 {
		cli.ShowCommandHelp(c, "dump")
		return errors.New("no bitmap file provided")
	}

	data, err := os.ReadFile(c.Args().First())
	if err != nil {
		return fmt.Errorf("failed to read bitmap: %w", err)
	}

	b := bitmap.New(data)
	if c.Bool("plus-mask") {
		b = bitmap.NewPlusMask(data)
	}
	if err := b.Validate(); err != nil {
		return fmt.Errorf("%s: %w", c.Args().First(), err)
	}

	encode := func(out io.Writer) error {
		w := bufio.NewWriter(out)
		if err := pgm.EncodeBitmap(w, b); err != nil {
			return err
		}
		return w.Flush()
	}

	if path := c.String("out"); path != "" {
		return createFile(path, encode)
	}
	return encode(os.Stdout)
}

// createFile creates path, fills it with write and closes it, reporting a
// failed close like a failed write.
func createFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
