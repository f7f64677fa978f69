// Package cmd contains all CLI commands for marquee.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/f3rmion/marquee/internal/compose"
	"github.com/f3rmion/marquee/internal/config"
	"github.com/f3rmion/marquee/internal/gate"
	"github.com/f3rmion/marquee/internal/glyph"
	"github.com/f3rmion/marquee/internal/marquee"
	"github.com/f3rmion/marquee/internal/scroll"
	"github.com/f3rmion/marquee/internal/term"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// ErrStopped is returned when SIGTERM or SIGHUP ends the animation.
var ErrStopped = errors.New("stopped by signal")

// ExitCode maps an Execute error to a process exit status: 0 on success,
// 143 when stopped by a signal, 1 otherwise.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrStopped):
		return 143
	default:
		return 1
	}
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "marquee",
	Short: "Scroll a line of text across the terminal in block letters",
	Long: `marquee reads one line of text from standard input and scrolls it
across the terminal as 5x6 block glyphs until you press q.

Digits, Latin A-Z and Cyrillic А-Я are drawn; lowercase input is
uppercased. Other letters leave a '_' gap, punctuation is dropped.

Controls:
  →       Faster (up to 10 sym/s)
  ←       Slower (down to 1 sym/s)
  q       Quit

Example:
  echo "hello 2024" | marquee`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runMarquee,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/marquee)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")

	def := config.Default()
	rootCmd.Flags().Int("speed", def.Speed, "initial speed in glyphs per second (1-10)")
	rootCmd.Flags().Int("window", def.Window, "number of glyphs visible at once")
	rootCmd.Flags().String("glyphs", "", "directory with digits.txt, letters_en.txt, letters_ru.txt overrides")
	rootCmd.Flags().Bool("prompt", false, "ask for the text with an interactive prompt")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("speed", rootCmd.Flags().Lookup("speed"))
	viper.BindPFlag("window", rootCmd.Flags().Lookup("window"))
	viper.BindPFlag("glyph_dir", rootCmd.Flags().Lookup("glyphs"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	viper.SetEnvPrefix("MARQUEE")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

func verbosef(format string, args ...any) {
	if viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// loadSettings merges marquee.yaml with flags and MARQUEE_* variables.
// Flags and the environment win over the file.
func loadSettings() (*config.Config, error) {
	cfg, err := config.LoadDir(getConfigDir())
	if err != nil {
		return nil, err
	}

	if viper.IsSet("speed") {
		cfg.Speed = marquee.ClampSpeed(viper.GetInt("speed"))
	}
	if viper.IsSet("window") {
		cfg.Window = viper.GetInt("window")
		if cfg.Window < 1 {
			return nil, fmt.Errorf("window %d must be at least 1", cfg.Window)
		}
	}
	if viper.IsSet("glyph_dir") {
		cfg.GlyphDir = viper.GetString("glyph_dir")
	}
	if cfg.GlyphDir != "" && !filepath.IsAbs(cfg.GlyphDir) && !viper.IsSet("glyph_dir") {
		cfg.GlyphDir = filepath.Join(getConfigDir(), cfg.GlyphDir)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadGlyphs parses the three glyph tables for cfg.
func loadGlyphs(cfg *config.Config) (*glyph.Set, error) {
	set, err := glyph.LoadSet(cfg.GlyphDir)
	if err != nil {
		return nil, fmt.Errorf("loading glyph tables: %w", err)
	}
	if cfg.GlyphDir != "" {
		verbosef("Glyph overrides from %s\n", cfg.GlyphDir)
	}
	return set, nil
}

func newRenderer(cfg *config.Config) *scroll.Renderer {
	r := scroll.New(cfg.Window)
	r.Separator = cfg.Separator[0]
	return r
}

// runMarquee reads the line, composes it and animates it until quit.
func runMarquee(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	set, err := loadGlyphs(cfg)
	if err != nil {
		return err
	}

	var line []rune
	usePrompt, _ := cmd.Flags().GetBool("prompt")
	if usePrompt && term.IsTerminal(os.Stdin) {
		line, err = gate.Prompt(os.Stdin, os.Stdout)
	} else {
		line, err = gate.Read(os.Stdin)
	}
	if err != nil {
		return err
	}

	buf := compose.Compose(set, line)
	verbosef("Composed %d characters into %dx%d cells, speed %d, window %d\n",
		len(line), buf.Rows(), buf.Cols(), cfg.Speed, cfg.Window)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	t, err := term.Open(os.Stdout)
	if err != nil {
		return err
	}
	defer t.Close()

	loop := marquee.New(buf, newRenderer(cfg), t, marquee.WithSpeed(cfg.Speed))
	if err := loop.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return ErrStopped
		}
		return fmt.Errorf("animating: %w", err)
	}

	return t.Close()
}
