//go:build tinygo

// Command arduboy-device runs the runner demo on a board with an SSD1306
// panel on I2C0 and six buttons wired to ground.
package main

import (
	"log/slog"
	"machine"

	"github.com/valerio/go-arduboy/arduboy"
	"github.com/valerio/go-arduboy/arduboy/backend/oled"
	"github.com/valerio/go-arduboy/arduboy/demo"
	"github.com/valerio/go-arduboy/arduboy/input/action"
	"github.com/valerio/go-arduboy/arduboy/timing"
)

// Button wiring, GPIO numbers as on a Raspberry Pi Pico
var pins = map[action.Action]machine.Pin{
	action.ButtonUp:    machine.GP2,
	action.ButtonDown:  machine.GP3,
	action.ButtonLeft:  machine.GP4,
	action.ButtonRight: machine.GP5,
	action.ButtonA:     machine.GP6,
	action.ButtonB:     machine.GP7,
}

func main() {
	console := arduboy.New(arduboy.Config{
		Limiter: timing.KindAdaptive,
		Backend: oled.New(machine.I2C0, oled.DefaultAddress, pins),
	})

	if err := console.Run(demo.New()); err != nil {
		slog.Error("Error running arduboy", "error", err)
	}
}
