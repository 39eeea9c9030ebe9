package main

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"unicode"

	_ "github.com/spakin/netpbm"
	"github.com/urfave/cli"
	"golang.org/x/sync/errgroup"

	"github.com/valerio/go-arduboy/arduboy/convert"
)

var convertCommand = cli.Command{
	Name:      "convert",
	Usage:     "Convert images to bitmap data as Go source",
	ArgsUsage: "<images...>",
	Flags: []cli.Flag{
		cli.IntFlag{
			Name:  "width",
			Usage: "Output width (0 = image width)",
		},
		cli.IntFlag{
			Name:  "height",
			Usage: "Output height (0 = image height), padded to a multiple of 8",
		},
		cli.IntFlag{
			Name:  "threshold",
			Usage: "Gray level above which pixels are lit; disables dithering when set",
			Value: -1,
		},
		cli.Float64Flag{
			Name:  "contrast",
			Usage: "Contrast adjustment in percent",
		},
		cli.BoolFlag{
			Name:  "invert",
			Usage: "Light dark pixels instead of bright ones",
		},
		cli.BoolFlag{
			Name:  "plus-mask",
			Usage: "Emit plus-mask data with the mask taken from transparency",
		},
		cli.StringFlag{
			Name:  "package",
			Usage: "Package name of the generated files",
			Value: "assets",
		},
		cli.StringFlag{
			Name:  "out",
			Usage: "Directory for the generated files",
			Value: ".",
		},
	},
	Action: convertImages,
}

func convertImages(c *cli.Context) error {
	if c.NArg() == 0 {
		cli.ShowCommandHelp(c, "convert")
		return errors.New("no images provided")
	}

	opts := convert.DefaultOptions()
	opts.Width = c.Int("width")
	opts.Height = c.Int("height")
	opts.Contrast = float32(c.Float64("contrast"))
	opts.Invert = c.Bool("invert")
	opts.PlusMask = c.Bool("plus-mask")
	if t := c.Int("threshold"); t >= 0 {
		if t > 255 {
			return fmt.Errorf("threshold %d out of range", t)
		}
		opts.Dither = false
		opts.Threshold = uint8(t)
	}

	outDir := c.String("out")
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	jobs, err := planOutputs(c.Args(), outDir)
	if err != nil {
		return err
	}

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for _, job := range jobs {
		g.Go(func() error {
			return convertFile(job, c.String("package"), opts)
		})
	}
	return g.Wait()
}

// conversion is one input image and the Go file it turns into
type conversion struct {
	input  string
	output string
	name   string
}

// planOutputs maps every input to its output file and variable name. Two
// inputs sharing either one would clobber each other, so that is an error.
func planOutputs(inputs []string, outDir string) ([]conversion, error) {
	outputs := make(map[string]string, len(inputs))
	names := make(map[string]string, len(inputs))

	jobs := make([]conversion, 0, len(inputs))
	for _, path := range inputs {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		job := conversion{
			input:  path,
			output: filepath.Join(outDir, base+".go"),
			name:   identifier(base),
		}
		if prev, ok := outputs[job.output]; ok {
			return nil, fmt.Errorf("%s and %s both write %s", prev, path, job.output)
		}
		if prev, ok := names[job.name]; ok {
			return nil, fmt.Errorf("%s and %s both declare %s", prev, path, job.name)
		}
		outputs[job.output] = path
		names[job.name] = path
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func convertFile(job conversion, pkg string, opts convert.Options) error {
	path := job.input
	img, err := decodeImage(path)
	if err != nil {
		return err
	}

	data, err := convert.Image(img, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	err = createFile(job.output, func(w io.Writer) error {
		return convert.WriteGoSource(w, pkg, job.name, data)
	})
	if err != nil {
		return err
	}

	slog.Info("Converted image", "input", path, "output", job.output, "bytes", len(data))
	return nil
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	slog.Debug("Decoded image", "path", path, "format", format, "size", img.Bounds().Size())
	return img, nil
}

// identifier turns a file name such as "player-run" into "PlayerRun"
func identifier(name string) string {
	var sb strings.Builder
	upper := true
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if sb.Len() == 0 && unicode.IsDigit(r) {
			sb.WriteString("Bitmap")
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		sb.WriteRune(r)
	}
	if sb.Len() == 0 {
		return "Bitmap"
	}
	return sb.String()
}
