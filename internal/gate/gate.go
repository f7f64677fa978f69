// Package gate reads the marquee text and reduces it to printable characters.
package gate

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrInputRead is returned when the initial line cannot be read.
var ErrInputRead = errors.New("reading input line")

var upper = cases.Upper(language.Und)

// ReadLine reads one newline-terminated line from r. A final line without a
// newline is returned as is; an empty stream yields "".
func ReadLine(r io.Reader) (string, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	line, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%w: %w", ErrInputRead, err)
	}
	return line, nil
}

// Filter uppercases s and keeps only alphabetic characters (letters and
// vowel-sign marks), numbers and non-control whitespace. Letters the glyph
// tables cannot draw survive; the compositor leaves their slot unfilled.
func Filter(s string) []rune {
	s = upper.String(s)
	out := make([]rune, 0, len(s))
	for _, ch := range s {
		if keep(ch) {
			out = append(out, ch)
		}
	}
	return out
}

func keep(ch rune) bool {
	if unicode.IsLetter(ch) || unicode.IsNumber(ch) || unicode.Is(unicode.Other_Alphabetic, ch) {
		return true
	}
	return unicode.IsSpace(ch) && !unicode.IsControl(ch)
}

// Read reads and filters one line.
func Read(r io.Reader) ([]rune, error) {
	line, err := ReadLine(r)
	if err != nil {
		return nil, err
	}
	return Filter(strings.TrimRight(line, "\r\n")), nil
}
