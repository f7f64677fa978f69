package cmd

import (
	"fmt"
	"os"

	"github.com/f3rmion/marquee/internal/glyph"
	"github.com/f3rmion/marquee/internal/raster"
	"github.com/spf13/cobra"
)

var rasterizeCmd = &cobra.Command{
	Use:   "rasterize",
	Short: "Build a glyph table from a TrueType/OpenType font",
	Long: `Draw every character of an alphabet with an outline font, shrink each one
to a 5x5 cell and write a glyph table file that marquee can load.

Example:
  marquee rasterize --font DejaVuSansMono-Bold.ttf --alphabet ru -o ~/.config/marquee/glyphs/letters_ru.txt`,
	Args: cobra.NoArgs,
	RunE: runRasterize,
}

func init() {
	rootCmd.AddCommand(rasterizeCmd)
	rasterizeCmd.Flags().String("font", "", "path to a .ttf, .otf or .ttc font")
	rasterizeCmd.Flags().String("alphabet", "en", "table to build: digits, en or ru")
	rasterizeCmd.Flags().StringP("output", "o", "", "output file (default stdout)")
	rasterizeCmd.Flags().Float64("size", 64, "font size used before downsampling")
	rasterizeCmd.Flags().Uint8("threshold", raster.DefaultThreshold, "brightness (0-255) above which a cell is inked")
	rasterizeCmd.MarkFlagRequired("font")
}

func runRasterize(cmd *cobra.Command, args []string) error {
	fontPath, _ := cmd.Flags().GetString("font")
	key, _ := cmd.Flags().GetString("alphabet")
	output, _ := cmd.Flags().GetString("output")
	size, _ := cmd.Flags().GetFloat64("size")
	threshold, _ := cmd.Flags().GetUint8("threshold")

	a, ok := glyph.AlphabetByKey(key)
	if !ok {
		return fmt.Errorf("unknown alphabet %q (want digits, en or ru)", key)
	}

	face, err := raster.LoadFace(fontPath, size)
	if err != nil {
		return err
	}
	defer face.Close()

	r := raster.New(face)
	r.Threshold = threshold
	data, err := r.Render(a)
	if err != nil {
		return fmt.Errorf("rasterizing %s: %w", a.Key, err)
	}

	// Refuse to write something the loader would reject.
	if _, err := glyph.Parse(a.Key, a.Base, a.N, data); err != nil {
		return err
	}

	if output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	verbosef("Wrote %s (%d glyphs)\n", output, a.N)
	return nil
}
