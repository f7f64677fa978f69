package glyph

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed fonts/*.txt
var fonts embed.FS

// Alphabet describes one table: its file, first character and size.
type Alphabet struct {
	Key  string
	File string
	Base rune
	N    int
}

// Alphabets lists the supported tables in lookup order.
var Alphabets = []Alphabet{
	{Key: "digits", File: "digits.txt", Base: '0', N: 10},
	{Key: "en", File: "letters_en.txt", Base: 'A', N: 26},
	{Key: "ru", File: "letters_ru.txt", Base: 'А', N: 32},
}

// AlphabetByKey returns the alphabet registered under key.
func AlphabetByKey(key string) (Alphabet, bool) {
	for _, a := range Alphabets {
		if a.Key == key {
			return a, true
		}
	}
	return Alphabet{}, false
}

// Set holds the three glyph tables. It is shared read-only once loaded.
type Set struct {
	Digits *Table
	Latin  *Table
	Cyril  *Table
}

// Tables returns the tables in Alphabets order.
func (s *Set) Tables() []*Table {
	return []*Table{s.Digits, s.Latin, s.Cyril}
}

// Lookup returns the table that draws ch and the glyph index inside it.
func (s *Set) Lookup(ch rune) (*Table, int, bool) {
	for _, t := range s.Tables() {
		if k, ok := t.Index(ch); ok {
			return t, k, true
		}
	}
	return nil, 0, false
}

// Embedded returns the raw bytes of an embedded table file.
func Embedded(file string) ([]byte, error) {
	return fonts.ReadFile("fonts/" + file)
}

// LoadEmbedded parses the tables compiled into the binary.
func LoadEmbedded() (*Set, error) {
	return LoadSet("")
}

// LoadSet parses the three tables. When dir is non-empty, a table file found
// in dir replaces the embedded one; missing files fall back to the embedded
// copy.
func LoadSet(dir string) (*Set, error) {
	tables := make([]*Table, len(Alphabets))
	for i, a := range Alphabets {
		blob, err := readTable(dir, a.File)
		if err != nil {
			return nil, err
		}
		t, err := Parse(a.Key, a.Base, a.N, blob)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", a.File, err)
		}
		tables[i] = t
	}
	return &Set{Digits: tables[0], Latin: tables[1], Cyril: tables[2]}, nil
}

func readTable(dir, file string) ([]byte, error) {
	if dir != "" {
		data, err := os.ReadFile(filepath.Join(dir, file))
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w", file, err)
		}
	}
	data, err := Embedded(file)
	if err != nil {
		return nil, fmt.Errorf("reading embedded %s: %w", file, err)
	}
	return data, nil
}
