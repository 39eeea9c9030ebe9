package main

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/urfave/cli"
)

const (
	galleryStart = "<!-- SNAPSHOTS:START -->"
	galleryEnd   = "<!-- SNAPSHOTS:END -->"
)

var galleryCommand = cli.Command{
	Name:      "gallery",
	Usage:     "Rewrite the snapshot table of a README from a directory of PNG snapshots",
	ArgsUsage: "<snapshot dir>",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "readme",
			Usage: "README file to update in place",
			Value: "README.md",
		},
		cli.IntFlag{
			Name:  "cols",
			Usage: "Number of columns per row",
			Value: 4,
		},
		cli.IntFlag{
			Name:  "width",
			Usage: "Image width in pixels",
			Value: 128,
		},
	},
	Action: updateGallery,
}

type snapshotItem struct {
	Name string
	Path string
}

func updateGallery(c *cli.Context) error {
	if c.NArg() == 0 {
		cli.ShowCommandHelp(c, "gallery")
		return errors.New("no snapshot directory provided")
	}
	dir := c.Args().First()

	items, err := listSnapshots(dir)
	if err != nil {
		return err
	}

	readme := c.String("readme")
	content, err := os.ReadFile(readme)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", readme, err)
	}

	updated, err := replaceGallery(string(content), galleryTable(items, c.Int("cols"), c.Int("width")))
	if err != nil {
		return fmt.Errorf("%s: %w", readme, err)
	}
	return os.WriteFile(readme, []byte(updated), 0644)
}

// listSnapshots returns the PNG files of dir sorted by name.
func listSnapshots(dir string) ([]snapshotItem, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var items []snapshotItem
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(name), ".png") {
			continue
		}
		items = append(items, snapshotItem{
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
			Path: filepath.ToSlash(filepath.Join(dir, url.PathEscape(name))),
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func galleryTable(items []snapshotItem, cols, width int) string {
	if cols <= 0 {
		cols = 3
	}

	var buf bytes.Buffer
	buf.WriteString("<table>\n")
	for i := 0; i < len(items); i += cols {
		buf.WriteString("  <tr>\n")
		for c := 0; c < cols; c++ {
			if i+c >= len(items) {
				buf.WriteString("    <td></td>\n")
				continue
			}
			it := items[i+c]
			fmt.Fprintf(&buf, "    <td align=\"center\"><img src=\"%s\" width=\"%d\" style=\"image-rendering:pixelated;\" /><br><sub>%s</sub></td>\n", it.Path, width, it.Name)
		}
		buf.WriteString("  </tr>\n")
	}
	buf.WriteString("</table>\n")
	return buf.String()
}

// replaceGallery swaps whatever sits between the gallery markers for table.
func replaceGallery(content, table string) (string, error) {
	start := strings.Index(content, galleryStart)
	end := strings.Index(content, galleryEnd)
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("markers %s and %s not found", galleryStart, galleryEnd)
	}

	var out strings.Builder
	out.WriteString(content[:start+len(galleryStart)])
	out.WriteString("\n")
	out.WriteString(table)
	after := content[end:]
	if !strings.HasPrefix(after, "\n") && !strings.HasSuffix(table, "\n") {
		out.WriteString("\n")
	}
	out.WriteString(after)
	return out.String(), nil
}
