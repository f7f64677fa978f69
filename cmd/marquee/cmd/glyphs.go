package cmd

import (
	"fmt"
	"os"

	"github.com/f3rmion/marquee/internal/glyph"
	"github.com/f3rmion/marquee/internal/term"
	"github.com/f3rmion/marquee/internal/tui"
	"github.com/spf13/cobra"
)

var glyphsCmd = &cobra.Command{
	Use:   "glyphs [digits|en|ru]",
	Short: "Show the glyph tables",
	Long: `Print every glyph of a table with its character and code point, using
the same tables the marquee would load (including overrides).

Example:
  marquee glyphs
  marquee glyphs ru --glyphs ~/.config/marquee/glyphs`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"digits", "en", "ru"},
	RunE:      runGlyphs,
}

func init() {
	rootCmd.AddCommand(glyphsCmd)
	glyphsCmd.Flags().String("glyphs", "", "directory with glyph table overrides")
}

func runGlyphs(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	if dir, _ := cmd.Flags().GetString("glyphs"); dir != "" {
		cfg.GlyphDir = dir
	}

	set, err := loadGlyphs(cfg)
	if err != nil {
		return err
	}

	tables := set.Tables()
	if len(args) == 1 {
		a, ok := glyph.AlphabetByKey(args[0])
		if !ok {
			return fmt.Errorf("unknown table %q (want digits, en or ru)", args[0])
		}
		for _, t := range tables {
			if t.Name() == a.Key {
				tables = []*glyph.Table{t}
			}
		}
	}

	width, _ := term.Size(os.Stdout)
	for _, t := range tables {
		fmt.Fprintln(cmd.OutOrStdout(), tui.InspectTable(t, tui.CardsPerRow(t, width)))
		fmt.Fprintln(cmd.OutOrStdout())
	}
	return nil
}
