package arduboy

import (
	"fmt"
	"log/slog"
)

// Game is a program running on the console. Setup runs once after Begin,
// Loop once per frame. Loop draws into the screen buffer and must not call
// Display; Run presents the frame after Loop returns.
type Game interface {
	Setup(a *Arduboy)
	Loop(a *Arduboy)
}

// Run initializes the backend and drives game until the backend or the
// game asks to stop.
func (a *Arduboy) Run(game Game) error {
	if a.config.Backend == nil {
		return ErrNoBackend
	}

	cfg := a.config.Display
	cfg.InputManager = a.inputs
	onQuit := cfg.Callbacks.OnQuit
	cfg.Callbacks.OnQuit = func() {
		if onQuit != nil {
			onQuit()
		}
		a.Stop()
	}

	if err := a.config.Backend.Init(cfg); err != nil {
		return fmt.Errorf("failed to initialize backend: %w", err)
	}
	defer func() {
		if stopper, ok := a.limiter.(interface{ Stop() }); ok {
			stopper.Stop()
		}
		if err := a.config.Backend.Cleanup(); err != nil {
			slog.Error("Backend cleanup failed", "error", err)
		}
	}()

	a.Begin()
	game.Setup(a)
	slog.Info("Game started", "frame_rate", a.frameRate, "limiter", a.config.Limiter)

	for a.NextFrame() {
		a.PollButtons()
		if !a.paused {
			game.Loop(a)
		}
		if err := a.Display(); err != nil {
			return err
		}
	}

	slog.Info("Game stopped", "frames", a.frameCount)
	return nil
}
