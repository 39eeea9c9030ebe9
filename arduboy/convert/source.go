package convert

import (
	"bytes"
	"fmt"
	"go/format"
	"io"

	"github.com/valerio/go-arduboy/arduboy/bitmap"
)

const bytesPerLine = 12

// WriteGoSource writes data as a Go byte slice variable so converted
// bitmaps can be compiled into a game.
func WriteGoSource(w io.Writer, pkg, name string, data []byte) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by arduboy convert. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	b := bitmap.New(data)
	fmt.Fprintf(&buf, "// %s is %dx%d, %d frame(s).\n", name, b.Width(), b.Height(), b.FrameCount())
	fmt.Fprintf(&buf, "var %s = []byte{\n", name)
	if len(data) >= bitmap.HeaderSize {
		fmt.Fprintf(&buf, "\t%d, %d,\n", data[0], data[1])
		data = data[bitmap.HeaderSize:]
	}
	for len(data) > 0 {
		n := min(bytesPerLine, len(data))
		buf.WriteByte('\t')
		for i, v := range data[:n] {
			if i > 0 {
				buf.WriteByte(' ')
			}
			fmt.Fprintf(&buf, "0x%02x,", v)
		}
		buf.WriteByte('\n')
		data = data[n:]
	}
	buf.WriteString("}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("generated invalid source for %s: %w", name, err)
	}
	_, err = w.Write(src)
	return err
}
