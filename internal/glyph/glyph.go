// Package glyph loads the block-glyph tables used to draw marquee text.
//
// A table file is an ASCII grid. Only '#' and ' ' bytes are kept; everything
// else (line endings, separators, labels) is discarded, and the remaining
// cells are laid out row-major into a Height x (Width*N) grid.
package glyph

import (
	"errors"
	"fmt"
)

// Glyph cell dimensions.
const (
	Height = 5 // rows per glyph
	Width  = 6 // columns per glyph, including the spacer column
)

// Cell values.
const (
	Ink   byte = '#'
	Blank byte = ' '
)

// ErrShapeMismatch is matched by every ShapeMismatchError.
var ErrShapeMismatch = errors.New("glyph table shape mismatch")

// ShapeMismatchError reports a blob that did not hold exactly enough cells
// for its declared shape.
type ShapeMismatchError struct {
	Name string
	Want int
	Got  int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("glyph table %q: want %d cells (%dx%d), got %d",
		e.Name, e.Want, Height, e.Want/Height, e.Got)
}

// Is lets errors.Is(err, ErrShapeMismatch) succeed.
func (e *ShapeMismatchError) Is(target error) bool {
	return target == ErrShapeMismatch
}

// Table is an immutable grid of Height rows holding N glyphs side by side.
type Table struct {
	name  string
	base  rune
	n     int
	cells [Height][]byte
}

// Parse builds a table of n glyphs from blob. base is the character drawn
// by the first glyph; glyph k draws base+k.
func Parse(name string, base rune, n int, blob []byte) (*Table, error) {
	cols := Width * n
	want := Height * cols

	kept := make([]byte, 0, want)
	for _, b := range blob {
		if b == Ink || b == Blank {
			kept = append(kept, b)
		}
	}
	if len(kept) != want {
		return nil, &ShapeMismatchError{Name: name, Want: want, Got: len(kept)}
	}

	t := &Table{name: name, base: base, n: n}
	for r := 0; r < Height; r++ {
		t.cells[r] = kept[r*cols : (r+1)*cols : (r+1)*cols]
	}
	return t, nil
}

// Name returns the table's name.
func (t *Table) Name() string { return t.name }

// Base returns the character drawn by glyph 0.
func (t *Table) Base() rune { return t.base }

// Len returns the number of glyphs.
func (t *Table) Len() int { return t.n }

// Rows returns Height.
func (t *Table) Rows() int { return Height }

// Cols returns Width * Len().
func (t *Table) Cols() int { return Width * t.n }

// Contains reports whether ch has a glyph in this table.
func (t *Table) Contains(ch rune) bool {
	return ch >= t.base && ch < t.base+rune(t.n)
}

// Index returns the glyph index of ch, or false when ch is out of range.
func (t *Table) Index(ch rune) (int, bool) {
	if !t.Contains(ch) {
		return 0, false
	}
	return int(ch - t.base), true
}

// Row returns the cells of glyph k on row r. The slice aliases the table
// and must not be modified.
func (t *Table) Row(k, r int) []byte {
	return t.cells[r][k*Width : (k+1)*Width : (k+1)*Width]
}

// at returns the cell at row r, column c of the whole table.
func (t *Table) at(r, c int) byte {
	return t.cells[r][c]
}
