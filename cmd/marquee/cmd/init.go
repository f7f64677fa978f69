package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/marquee/internal/config"
	"github.com/f3rmion/marquee/internal/glyph"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize marquee configuration",
	Long: `Initialize marquee configuration in your config directory.

This creates:
  - marquee.yaml            (speed, window and separator settings)
  - glyphs/digits.txt       (0-9)
  - glyphs/letters_en.txt   (A-Z)
  - glyphs/letters_ru.txt   (А-Я)

Edit the glyph files to change how characters are drawn. Only '#' and
space cells count; everything else in the files is ignored.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()

	// Check if config already exists
	cfgPath := filepath.Join(configDir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil && !force {
		return fmt.Errorf("config already exists: %s\nUse --force to overwrite", cfgPath)
	}

	glyphDir := filepath.Join(configDir, config.GlyphDirName)
	if err := config.EnsureDir(glyphDir); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initializing marquee configuration in %s\n\n", configDir)

	if err := os.WriteFile(cfgPath, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", config.FileName, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Created %s\n", config.FileName)

	for _, a := range glyph.Alphabets {
		data, err := glyph.Embedded(a.File)
		if err != nil {
			return err
		}
		dest := filepath.Join(glyphDir, a.File)
		if err := os.WriteFile(dest, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", a.File, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  Created %s\n", filepath.Join(config.GlyphDirName, a.File))
	}

	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), "Configuration initialized!")
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), "Next steps:")
	fmt.Fprintln(cmd.OutOrStdout(), "  1. Edit the glyph files to restyle characters")
	fmt.Fprintln(cmd.OutOrStdout(), "  2. Run 'marquee glyphs en' to inspect a table")
	fmt.Fprintln(cmd.OutOrStdout(), "  3. Run 'echo hello | marquee' to scroll some text")

	return nil
}

const configTemplate = `# marquee settings
#
# Flags (--speed, --window, --glyphs) and MARQUEE_* environment
# variables take precedence over this file.

# Initial speed in glyphs per second, 1-10. Arrow keys change it live.
speed: 2

# Number of glyphs visible at once.
window: 4

# Character repeated under the scrolling text.
separator: "-"

# Directory with glyph table overrides, relative to this file's directory.
glyph_dir: glyphs
`
