package headless

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/valerio/go-arduboy/arduboy/backend"
	"github.com/valerio/go-arduboy/arduboy/debug"
	"github.com/valerio/go-arduboy/arduboy/input/action"
	"github.com/valerio/go-arduboy/arduboy/video"
)

// Backend implements the Backend interface for automated testing and batch
// processing. It writes frames to image files instead of showing them.
type Backend struct {
	config         backend.Config
	frameCount     int
	maxFrames      int
	snapshotConfig SnapshotConfig
	snapshots      []string
}

// SnapshotConfig holds configuration for frame snapshots
type SnapshotConfig struct {
	Enabled   bool
	Interval  int          // Save snapshot every N frames
	Directory string       // Directory to save snapshots
	Name      string       // Prefix for snapshot filenames
	Format    debug.Format // pgm or png
	Options   debug.Options
}

func New(maxFrames int, snapshotConfig SnapshotConfig) *Backend {
	return &Backend{
		maxFrames:      maxFrames,
		snapshotConfig: snapshotConfig,
	}
}

func (h *Backend) Init(config backend.Config) error {
	h.config = config

	if h.snapshotConfig.Enabled && h.snapshotConfig.Format == debug.FormatPNG && config.Ink != "" && config.Paper != "" {
		ink, paper, err := debug.ParseColors(config.Ink, config.Paper)
		if err != nil {
			return err
		}
		h.snapshotConfig.Options.Ink = ink
		h.snapshotConfig.Options.Paper = paper
		if config.Scale > 0 {
			h.snapshotConfig.Options.Scale = config.Scale
		}
	}

	slog.Info("Running headless mode",
		"frames", h.maxFrames,
		"snapshot_interval", h.snapshotConfig.Interval,
		"snapshot_dir", h.snapshotConfig.Directory,
		"snapshot_format", h.snapshotConfig.Format)

	// Set up debug logging for headless mode
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	slog.SetDefault(slog.New(handler))

	return nil
}

// Update processes a frame and handles snapshots
func (h *Backend) Update(frame video.Surface) ([]backend.InputEvent, error) {
	var events []backend.InputEvent

	h.frameCount++

	if h.snapshotConfig.Enabled && h.frameCount%h.snapshotConfig.Interval == 0 {
		if err := h.saveSnapshot(frame); err != nil {
			return nil, err
		}
	}

	// Log progress periodically
	if h.frameCount%60 == 0 {
		slog.Info("Frame progress", "completed", h.frameCount, "total", h.maxFrames)
	}

	if h.maxFrames > 0 && h.frameCount >= h.maxFrames {
		// Save final snapshot if enabled and we haven't just saved one
		if h.snapshotConfig.Enabled && h.frameCount%h.snapshotConfig.Interval != 0 {
			if err := h.saveSnapshot(frame); err != nil {
				return nil, err
			}
		}

		if h.snapshotConfig.Enabled {
			slog.Info("Headless execution completed", "frames", h.maxFrames, "snapshots", len(h.snapshots), "dir", h.snapshotConfig.Directory)
		} else {
			slog.Info("Headless execution completed", "frames", h.maxFrames)
		}

		// Signal completion via quit event
		events = append(events, backend.Press(action.SystemQuit))
	}

	return events, nil
}

func (h *Backend) Cleanup() error {
	return nil
}

// FrameCount returns the number of frames presented so far.
func (h *Backend) FrameCount() int {
	return h.frameCount
}

// Snapshots returns the paths of every snapshot written so far.
func (h *Backend) Snapshots() []string {
	return h.snapshots
}

// CreateSnapshotConfig creates a snapshot configuration from CLI parameters
func CreateSnapshotConfig(interval int, directory, name string, format debug.Format) (SnapshotConfig, error) {
	config := SnapshotConfig{
		Enabled:  interval > 0,
		Interval: interval,
		Format:   format,
		Options:  debug.DefaultOptions(),
	}
	if config.Format == "" {
		config.Format = debug.FormatPGM
	}

	if !config.Enabled {
		return config, nil
	}

	// Set up snapshot directory
	if directory == "" {
		tempDir, err := os.MkdirTemp("", "arduboy-snapshots-*")
		if err != nil {
			return config, fmt.Errorf("failed to create snapshot directory: %w", err)
		}
		config.Directory = tempDir
	} else {
		if err := os.MkdirAll(directory, 0755); err != nil {
			return config, fmt.Errorf("failed to create snapshot directory: %w", err)
		}
		config.Directory = directory
	}

	config.Name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if config.Name == "" || config.Name == "." {
		config.Name = "arduboy"
	}

	return config, nil
}

// saveSnapshot writes the current frame in the configured format
func (h *Backend) saveSnapshot(frame video.Surface) error {
	baseName := fmt.Sprintf("%s_frame_%d", h.snapshotConfig.Name, h.frameCount)

	path, err := debug.SaveFrame(frame, baseName, h.snapshotConfig.Directory, h.snapshotConfig.Format, h.snapshotConfig.Options)
	if err != nil {
		return fmt.Errorf("failed to save snapshot at frame %d: %w", h.frameCount, err)
	}
	h.snapshots = append(h.snapshots, path)
	return nil
}
