package debug

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"

	"github.com/valerio/go-arduboy/arduboy/display"
	"github.com/valerio/go-arduboy/arduboy/pgm"
	"github.com/valerio/go-arduboy/arduboy/video"
)

// Format selects the file format snapshots are written in
type Format string

const (
	FormatPGM Format = "pgm"
	FormatPNG Format = "png"
)

// ParseFormat validates a format name coming from the command line.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatPGM, FormatPNG:
		return Format(name), nil
	default:
		return "", fmt.Errorf("unknown snapshot format %q (want pgm or png)", name)
	}
}

// Options control how PNG snapshots are rendered
type Options struct {
	Scale int
	Ink   color.Color // lit pixels
	Paper color.Color // unlit pixels
}

// DefaultOptions renders white on black at the default window scale.
func DefaultOptions() Options {
	ink, paper, _ := ParseColors(display.DefaultInk, display.DefaultPaper)
	return Options{
		Scale: display.DefaultPixelScale,
		Ink:   ink,
		Paper: paper,
	}
}

// ParseColors parses hex colours such as "#33ff99" for lit and unlit pixels.
func ParseColors(ink, paper string) (color.Color, color.Color, error) {
	inkColor, err := colorful.Hex(ink)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid ink colour %q: %w", ink, err)
	}
	paperColor, err := colorful.Hex(paper)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid paper colour %q: %w", paper, err)
	}
	return inkColor, paperColor, nil
}

// TakeSnapshot handles the snapshot action for interactive backends
func TakeSnapshot(frame video.Surface) {
	if frame == nil {
		slog.Warn("No frame data available for snapshot")
		return
	}

	if _, err := SaveFramePNGToDir(frame, "arduboy_snapshot", "", DefaultOptions()); err != nil {
		slog.Error("Failed to save snapshot", "error", err)
	}
}

// RenderImage converts a surface to a scaled paletted image.
func RenderImage(frame video.Surface, opts Options) image.Image {
	if opts.Scale < 1 {
		opts.Scale = 1
	}

	src := image.NewPaletted(image.Rect(0, 0, frame.Width(), frame.Height()), color.Palette{opts.Paper, opts.Ink})
	for y := 0; y < frame.Height(); y++ {
		for x := 0; x < frame.Width(); x++ {
			if frame.Pixel(x, y) {
				src.SetColorIndex(x, y, 1)
			}
		}
	}

	if opts.Scale == 1 {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, frame.Width()*opts.Scale, frame.Height()*opts.Scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// SaveFramePNGToDir saves a frame as PNG with timestamp to a specific directory
// and returns the path written.
func SaveFramePNGToDir(frame video.Surface, baseName, directory string, opts Options) (string, error) {
	filePath, err := writeSnapshot(baseName, directory, FormatPNG, func(w io.Writer) error {
		if err := png.Encode(w, RenderImage(frame, opts)); err != nil {
			return fmt.Errorf("failed to encode PNG: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	slog.Info("Snapshot saved", "path", filePath, "size", fmt.Sprintf("%dx%d", frame.Width(), frame.Height()), "format", "PNG")
	return filePath, nil
}

// SaveFramePGMToDir saves a frame as a plain PGM image with timestamp to a
// specific directory and returns the path written.
func SaveFramePGMToDir(frame video.Surface, baseName, directory string) (string, error) {
	filePath, err := writeSnapshot(baseName, directory, FormatPGM, func(w io.Writer) error {
		return pgm.Encode(w, frame)
	})
	if err != nil {
		return "", err
	}

	slog.Debug("Snapshot saved", "path", filePath, "format", "PGM")
	return filePath, nil
}

// SaveFrame dispatches to the writer for the given format.
func SaveFrame(frame video.Surface, baseName, directory string, format Format, opts Options) (string, error) {
	if format == FormatPNG {
		return SaveFramePNGToDir(frame, baseName, directory, opts)
	}
	return SaveFramePGMToDir(frame, baseName, directory)
}

// writeSnapshot creates a new snapshot file, fills it with encode and closes
// it. A close error is returned like any write error.
func writeSnapshot(baseName, directory string, format Format, encode func(io.Writer) error) (string, error) {
	file, filePath, err := createSnapshotFile(baseName, directory, format)
	if err != nil {
		return "", err
	}

	if err := encode(file); err != nil {
		file.Close()
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filePath, err)
	}
	return filePath, nil
}

// createSnapshotFile opens a file that did not exist before. Names carry a
// millisecond timestamp; snapshots landing on the same millisecond get a
// counter suffix instead of overwriting each other.
func createSnapshotFile(baseName, directory string, format Format) (*os.File, string, error) {
	timestamp := strings.Replace(time.Now().Format("20060102_150405.000"), ".", "_", 1)

	// Determine output directory
	outputDir := directory
	if outputDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, "", fmt.Errorf("failed to get current directory: %w", err)
		}
		outputDir = cwd
	}

	for n := 0; ; n++ {
		filename := fmt.Sprintf("%s_%s.%s", baseName, timestamp, format)
		if n > 0 {
			filename = fmt.Sprintf("%s_%s_%d.%s", baseName, timestamp, n, format)
		}

		filePath := filepath.Join(outputDir, filename)
		file, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return nil, "", fmt.Errorf("failed to create file %s: %w", filePath, err)
		}
		return file, filePath, nil
	}
}
