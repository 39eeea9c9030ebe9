//go:build tinygo

// Package oled presents frames on an SSD1306 panel and reads the console
// buttons from GPIO pins. It only builds with TinyGo.
package oled

import (
	"fmt"
	"log/slog"
	"machine"

	"tinygo.org/x/drivers/ssd1306"

	"github.com/valerio/go-arduboy/arduboy/backend"
	"github.com/valerio/go-arduboy/arduboy/display"
	"github.com/valerio/go-arduboy/arduboy/input/action"
	"github.com/valerio/go-arduboy/arduboy/video"
)

// DefaultAddress is the I2C address most 128x64 modules answer on.
const DefaultAddress = 0x3C

// Backend drives the panel over I2C
type Backend struct {
	bus     *machine.I2C
	address uint16
	pins    map[action.Action]machine.Pin
	held    map[action.Action]bool
	flush   func(buf []byte) error
	staging *video.PackedBuffer
}

// New returns a backend on bus. pins maps console buttons to active-low inputs.
func New(bus *machine.I2C, address uint16, pins map[action.Action]machine.Pin) *Backend {
	return &Backend{
		bus:     bus,
		address: address,
		pins:    pins,
		held:    make(map[action.Action]bool),
	}
}

func (o *Backend) Init(config backend.Config) error {
	if err := o.bus.Configure(machine.I2CConfig{Frequency: 400 * machine.KHz}); err != nil {
		return fmt.Errorf("failed to configure I2C: %w", err)
	}

	dev := ssd1306.NewI2C(o.bus)
	dev.Configure(ssd1306.Config{
		Width:   display.Width,
		Height:  display.Height,
		Address: o.address,
	})
	dev.ClearDisplay()
	o.flush = func(buf []byte) error {
		if err := dev.SetBuffer(buf); err != nil {
			return err
		}
		return dev.Display()
	}

	for _, pin := range o.pins {
		pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}

	slog.Info("OLED backend initialized", "address", o.address, "buttons", len(o.pins))
	return nil
}

// Update pushes the frame to the panel and reports button edges
func (o *Backend) Update(frame video.Surface) ([]backend.InputEvent, error) {
	var events []backend.InputEvent
	for act, pin := range o.pins {
		down := !pin.Get()
		if down != o.held[act] {
			o.held[act] = down
			if down {
				events = append(events, backend.Press(act))
			} else {
				events = append(events, backend.Release(act))
			}
		}
	}

	// packed frames already use the controller's page layout
	packed, ok := frame.(*video.PackedBuffer)
	if !ok || packed.Width() != display.Width || packed.Height() != display.Height {
		if o.staging == nil {
			o.staging = video.NewPackedBuffer(display.Width, display.Height)
		}
		o.staging.Clear()
		video.Copy(o.staging, frame)
		packed = o.staging
	}

	if err := o.flush(packed.Bytes()); err != nil {
		return events, fmt.Errorf("failed to update display: %w", err)
	}
	return events, nil
}

func (o *Backend) Cleanup() error {
	return nil
}
