package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/f3rmion/marquee/internal/clipboard"
	"github.com/f3rmion/marquee/internal/compose"
	"github.com/f3rmion/marquee/internal/gate"
	"github.com/f3rmion/marquee/internal/term"
	"github.com/f3rmion/marquee/internal/tui"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview [text...]",
	Short: "Print the composed banner once without animating",
	Long: `Compose the text with the glyph tables and print the whole banner once.
Without arguments one line is read from standard input.

Lines are clipped to the terminal width unless --width is given
(0 disables clipping).

Example:
  marquee preview hello world
  marquee preview --width 0 --copy "ПРИВЕТ"`,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().Int("width", -1, "clip lines to this many cells (0 = no clipping, default terminal width)")
	previewCmd.Flags().Bool("copy", false, "copy the banner to the clipboard")
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	set, err := loadGlyphs(cfg)
	if err != nil {
		return err
	}

	var line []rune
	if len(args) > 0 {
		line = gate.Filter(strings.Join(args, " "))
	} else if line, err = gate.Read(cmd.InOrStdin()); err != nil {
		return err
	}

	copyOut, _ := cmd.Flags().GetBool("copy")
	if copyOut && !clipboard.Available() {
		return fmt.Errorf("--copy: %w (install pbcopy, wl-copy, xclip or xsel)", clipboard.ErrUnavailable)
	}

	width, _ := cmd.Flags().GetInt("width")
	if width < 0 {
		width, _ = term.Size(os.Stdout)
	}

	banner := renderBanner(compose.Compose(set, line), width)
	fmt.Fprint(cmd.OutOrStdout(), banner)

	if copyOut {
		if err := clipboard.Write(banner); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), tui.CopiedStyle.Render("Copied to clipboard"))
	}
	return nil
}

// renderBanner returns the buffer rows joined by newlines, each clipped to
// width cells when width > 0.
func renderBanner(buf *compose.Buffer, width int) string {
	var b strings.Builder
	for _, row := range buf.Lines() {
		if width > 0 {
			row = runewidth.Truncate(row, width, "")
		}
		b.WriteString(strings.TrimRight(row, " "))
		b.WriteByte('\n')
	}
	return b.String()
}
