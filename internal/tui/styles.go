// Package tui holds the styles and views for the marquee's interactive and
// inspection screens.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#FF6B6B") // Red - titles
	ColorSecondary = lipgloss.Color("#4ecdc4") // Teal - labels, counts
	ColorAccent    = lipgloss.Color("#ffe66d") // Yellow - glyph ink
	ColorMuted     = lipgloss.Color("#666666") // Gray - help text
	ColorText      = lipgloss.Color("#f1faee") // Light text
	ColorBg        = lipgloss.Color("#1a1a2e") // Dark background
	ColorBgAlt     = lipgloss.Color("#2d3436") // Alt background
	ColorBorder    = lipgloss.Color("#3d5a80") // Border color
)

// Title styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorBg).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)
)

// Glyph inspector styles
var (
	GlyphBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	GlyphLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	GlyphInkStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Background(ColorBgAlt)
)

// Status styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	CountStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	CopiedStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)
)
