package main

import (
	"log/slog"
	"os"

	"github.com/urfave/cli"

	"github.com/valerio/go-arduboy/arduboy/display"
	"github.com/valerio/go-arduboy/arduboy/timing"
)

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		slog.Error("Error running arduboy", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "arduboy"
	app.Description = "Desktop harness for the monochrome handheld display library"
	app.Usage = "arduboy [options]"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "backend",
			Usage: "Where frames go: terminal, headless or sdl2",
			Value: "terminal",
		},
		cli.BoolFlag{
			Name:  "test-pattern",
			Usage: "Display a test pattern instead of the game (for debugging display)",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode (required there)",
		},
		cli.IntFlag{
			Name:  "snapshot-interval",
			Usage: "Save frame snapshots every N frames in headless mode (0 = disabled)",
		},
		cli.StringFlag{
			Name:  "snapshot-dir",
			Usage: "Directory to save frame snapshots (default: temp directory)",
		},
		cli.StringFlag{
			Name:  "snapshot-format",
			Usage: "Snapshot file format: pgm or png",
			Value: "pgm",
		},
		cli.IntFlag{
			Name:  "fps",
			Usage: "Frame rate until the game sets its own (0 = default)",
		},
		cli.StringFlag{
			Name:  "limiter",
			Usage: "Frame pacing: adaptive, ticker or none",
			Value: string(timing.KindAdaptive),
		},
		cli.IntFlag{
			Name:  "scale",
			Usage: "Pixel scale for windows and PNG snapshots",
			Value: display.DefaultPixelScale,
		},
		cli.StringFlag{
			Name:  "ink",
			Usage: "Colour of lit pixels",
			Value: display.DefaultInk,
		},
		cli.StringFlag{
			Name:  "paper",
			Usage: "Colour of unlit pixels",
			Value: display.DefaultPaper,
		},
		cli.Uint64Flag{
			Name:  "seed",
			Usage: "Random seed (0 = from the clock)",
		},
	}
	app.Action = runGame
	app.Commands = []cli.Command{
		dumpCommand,
		convertCommand,
		galleryCommand,
	}
	return app
}
