package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli"

	"github.com/valerio/go-arduboy/arduboy"
	"github.com/valerio/go-arduboy/arduboy/backend"
	"github.com/valerio/go-arduboy/arduboy/backend/headless"
	"github.com/valerio/go-arduboy/arduboy/backend/sdl2"
	"github.com/valerio/go-arduboy/arduboy/backend/terminal"
	"github.com/valerio/go-arduboy/arduboy/debug"
	"github.com/valerio/go-arduboy/arduboy/demo"
	"github.com/valerio/go-arduboy/arduboy/display"
	"github.com/valerio/go-arduboy/arduboy/timing"
	"github.com/valerio/go-arduboy/arduboy/video"
)

func runGame(c *cli.Context) error {
	b, surface, err := newBackend(c)
	if err != nil {
		return err
	}

	limiter := timing.Kind(c.String("limiter"))
	// headless runs as fast as it can unless told otherwise
	if c.String("backend") == "headless" && !c.IsSet("limiter") {
		limiter = timing.KindNone
	}

	console := arduboy.New(arduboy.Config{
		FrameRate: c.Int("fps"),
		Limiter:   limiter,
		Surface:   surface,
		Backend:   b,
		Seed:      c.Uint64("seed"),
		Display: backend.Config{
			Title: "Runner",
			Scale: c.Int("scale"),
			Ink:   c.String("ink"),
			Paper: c.String("paper"),
		},
	})

	if c.Bool("test-pattern") {
		return console.Run(demo.NewTestPattern())
	}
	return console.Run(demo.New())
}

// newBackend picks the backend and the frame buffer strategy that suits it
func newBackend(c *cli.Context) (backend.Backend, video.Surface, error) {
	switch name := c.String("backend"); name {
	case "terminal":
		return terminal.New(), video.NewSurface(), nil
	case "sdl2":
		return sdl2.New(), video.NewSampleBuffer(display.Width, display.Height), nil
	case "headless":
		frames := c.Int("frames")
		if frames <= 0 {
			return nil, nil, errors.New("headless mode requires --frames option with a positive value")
		}
		format, err := debug.ParseFormat(c.String("snapshot-format"))
		if err != nil {
			return nil, nil, err
		}
		snapshots, err := headless.CreateSnapshotConfig(c.Int("snapshot-interval"), c.String("snapshot-dir"), "runner", format)
		if err != nil {
			return nil, nil, err
		}
		return headless.New(frames, snapshots), video.NewSurface(), nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q (want terminal, headless or sdl2)", name)
	}
}
