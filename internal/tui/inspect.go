package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/marquee/internal/glyph"
	"github.com/mattn/go-runewidth"
)

// GlyphCard renders glyph k of t in a labelled box.
func GlyphCard(t *glyph.Table, k int) string {
	ch := t.Base() + rune(k)
	label := fmt.Sprintf("%c U+%04X", ch, ch)

	lines := make([]string, 0, glyph.Height+1)
	lines = append(lines, GlyphLabelStyle.Render(padRight(label, glyph.Width)))
	for r := 0; r < glyph.Height; r++ {
		lines = append(lines, GlyphInkStyle.Render(string(t.Row(k, r))))
	}
	return GlyphBoxStyle.Render(strings.Join(lines, "\n"))
}

// InspectTable lays out every glyph of t as cards, perRow to a line.
func InspectTable(t *glyph.Table, perRow int) string {
	perRow = max(perRow, 1)

	var rows []string
	for start := 0; start < t.Len(); start += perRow {
		end := min(start+perRow, t.Len())
		cards := make([]string, 0, end-start)
		for k := start; k < end; k++ {
			cards = append(cards, GlyphCard(t, k))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	header := TitleStyle.Render(t.Name()) + " " +
		SubtitleStyle.Render(fmt.Sprintf("%d glyphs, %dx%d", t.Len(), t.Rows(), t.Cols()))
	return header + "\n" + lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// CardsPerRow returns how many glyph cards fit across width cells.
func CardsPerRow(t *glyph.Table, width int) int {
	w := lipgloss.Width(GlyphCard(t, 0))
	if w == 0 {
		return 1
	}
	return max(width/w, 1)
}

func padRight(s string, width int) string {
	if w := runewidth.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
