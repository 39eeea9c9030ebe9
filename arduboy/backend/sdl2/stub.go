//go:build !sdl2

package sdl2

import (
	"fmt"

	"github.com/valerio/go-arduboy/arduboy/backend"
	"github.com/valerio/go-arduboy/arduboy/video"
)

// Backend stub for when SDL2 is not available
type Backend struct{}

// New creates a stub SDL2 backend that returns an error
func New() *Backend {
	return &Backend{}
}

// Init returns an error indicating SDL2 is not available
func (s *Backend) Init(config backend.Config) error {
	return fmt.Errorf("SDL2 support not compiled in. Build with: go build -tags sdl2")
}

// Update is a no-op for the stub
func (s *Backend) Update(frame video.Surface) ([]backend.InputEvent, error) {
	return nil, fmt.Errorf("SDL2 backend not available")
}

// Cleanup is a no-op for the stub
func (s *Backend) Cleanup() error {
	return nil
}
