// Package scroll draws one frame of the marquee: a fixed-width window read
// cyclically out of the composed buffer.
package scroll

import (
	"bytes"
	"fmt"
	"io"

	"github.com/f3rmion/marquee/internal/compose"
	"github.com/f3rmion/marquee/internal/glyph"
)

// DefaultWindow is the number of glyphs visible at once.
const DefaultWindow = 4

// EOL ends every emitted line. Raw mode does not translate '\n'.
const EOL = "\r\n"

// Renderer writes frames for a window of Window glyphs.
type Renderer struct {
	Window    int
	Separator byte
}

// New returns a renderer showing window glyphs, with a dashed separator.
func New(window int) *Renderer {
	return &Renderer{Window: window, Separator: '-'}
}

// Width returns the window width in cells.
func (r *Renderer) Width() int {
	return r.Window * glyph.Width
}

// Frame returns the visible rows with the window starting at column offset.
// Columns past the end of the buffer wrap around. An empty buffer yields
// empty rows.
func (r *Renderer) Frame(buf *compose.Buffer, offset int) [][]byte {
	rows := make([][]byte, buf.Rows())
	cols := buf.Cols()
	if cols == 0 {
		for i := range rows {
			rows[i] = []byte{}
		}
		return rows
	}

	width := r.Width()
	for i := range rows {
		line := make([]byte, width)
		for k := 0; k < width; k++ {
			line[k] = buf.At(i, (offset+k)%cols)
		}
		rows[i] = line
	}
	return rows
}

// Render writes the frame at offset followed by the separator and the speed
// status line, then flushes w if it buffers.
func (r *Renderer) Render(w io.Writer, buf *compose.Buffer, offset, speed int) error {
	var b bytes.Buffer
	for _, line := range r.Frame(buf, offset) {
		b.Write(line)
		b.WriteString(EOL)
	}
	b.Write(bytes.Repeat([]byte{r.Separator}, r.Width()))
	b.WriteString(EOL)
	fmt.Fprintf(&b, "Speed = %d sym/s%s", speed, EOL)

	if _, err := w.Write(b.Bytes()); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	if f, ok := w.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flushing frame: %w", err)
		}
	}
	return nil
}
