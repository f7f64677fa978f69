// Package compose lays out a line of text as one wide glyph bitmap.
package compose

import (
	"github.com/f3rmion/marquee/internal/glyph"
)

// Fill marks a slot whose character has no glyph.
const Fill byte = '_'

// Buffer is the composed bitmap of a whole line: glyph.Height rows of
// glyph.Width columns per character.
type Buffer struct {
	rows [glyph.Height][]byte
	cols int
}

// New returns a buffer sized for l characters, every cell set to Fill.
func New(l int) *Buffer {
	b := &Buffer{cols: l * glyph.Width}
	for r := range b.rows {
		row := make([]byte, b.cols)
		for c := range row {
			row[c] = Fill
		}
		b.rows[r] = row
	}
	return b
}

// Rows returns glyph.Height.
func (b *Buffer) Rows() int { return glyph.Height }

// Cols returns the buffer width in cells.
func (b *Buffer) Cols() int { return b.cols }

// At returns the cell at row r, column c.
func (b *Buffer) At(r, c int) byte { return b.rows[r][c] }

// Row returns row r. The slice aliases the buffer.
func (b *Buffer) Row(r int) []byte { return b.rows[r] }

// Set writes the glyph drawn by ch into slot i. Spaces become a blank block;
// characters outside every table leave the slot untouched. It reports
// whether the slot was written.
func (b *Buffer) Set(set *glyph.Set, i int, ch rune) bool {
	off := i * glyph.Width
	if ch == ' ' {
		for r := range b.rows {
			for c := 0; c < glyph.Width; c++ {
				b.rows[r][off+c] = glyph.Blank
			}
		}
		return true
	}

	tbl, k, ok := set.Lookup(ch)
	if !ok {
		return false
	}
	for r := range b.rows {
		copy(b.rows[r][off:off+glyph.Width], tbl.Row(k, r))
	}
	return true
}

// Compose builds the buffer for line.
func Compose(set *glyph.Set, line []rune) *Buffer {
	b := New(len(line))
	for i, ch := range line {
		b.Set(set, i, ch)
	}
	return b
}

// Lines returns the buffer as strings, one per row.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.rows))
	for r, row := range b.rows {
		out[r] = string(row)
	}
	return out
}
