package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/f3rmion/marquee/internal/clipboard"
	"github.com/f3rmion/marquee/internal/compose"
	"github.com/f3rmion/marquee/internal/config"
	"github.com/f3rmion/marquee/internal/glyph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestPreview(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "preview", "--config", dir, "--width", "0", "a", "b")
	require.NoError(t, err)

	set, err := glyph.LoadEmbedded()
	require.NoError(t, err)
	want := renderBanner(compose.Compose(set, []rune("A B")), 0)
	assert.Equal(t, want, out)
	assert.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), glyph.Height)
}

func TestRenderBanner_clips(t *testing.T) {
	set, err := glyph.LoadEmbedded()
	require.NoError(t, err)
	buf := compose.Compose(set, []rune("HELLO"))

	for _, line := range strings.Split(strings.TrimSuffix(renderBanner(buf, 10), "\n"), "\n") {
		assert.LessOrEqual(t, len(line), 10)
	}
	full := renderBanner(buf, 0)
	assert.Contains(t, full, strings.TrimRight(string(buf.Row(0)), " "))
}

func TestInitThenGlyphs(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "init", "--config", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized!")

	cfg, err := config.LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Speed)
	assert.Equal(t, "glyphs", cfg.GlyphDir)
	for _, a := range glyph.Alphabets {
		assert.FileExists(t, filepath.Join(dir, config.GlyphDirName, a.File))
	}

	_, err = execute(t, "init", "--config", dir)
	assert.Error(t, err)

	// A broken override must stop the glyphs command.
	broken := filepath.Join(dir, config.GlyphDirName, "digits.txt")
	require.NoError(t, os.WriteFile(broken, []byte("#\n"), 0644))
	_, err = execute(t, "glyphs", "digits", "--config", dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, glyph.ErrShapeMismatch)

	// Without the file the embedded table is used again.
	require.NoError(t, os.Remove(broken))
	out, err = execute(t, "glyphs", "en", "--config", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "A U+0041")
}

func TestLoadSettings_fileValues(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, config.Save(filepath.Join(dir, config.FileName),
		&config.Config{Speed: 6, Window: 2, Separator: "="}))

	_, err := execute(t, "preview", "--config", dir, "--width", "0", "x")
	require.NoError(t, err)

	cfg, err := loadSettings()
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Speed)
	assert.Equal(t, 2, cfg.Window)
	assert.Equal(t, byte('='), newRenderer(cfg).Separator)
}

func TestLoadSettings_windowZeroRejected(t *testing.T) {
	t.Setenv("MARQUEE_WINDOW", "0")
	_, err := execute(t, "preview", "--config", t.TempDir(), "--width", "0", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "window 0 must be at least 1")
}

func TestLoadSettings_speedClampedEverywhere(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("speed: 15\n"), 0644))
	_, err := execute(t, "preview", "--config", dir, "--width", "0", "x")
	require.NoError(t, err)

	cfg, err := loadSettings()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Speed)

	t.Setenv("MARQUEE_SPEED", "15")
	cfg, err = loadSettings()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Speed)
}

func TestPreview_copyWithoutClipboardTool(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	out, err := execute(t, "preview", "--config", t.TempDir(), "--width", "0", "--copy", "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, clipboard.ErrUnavailable)
	assert.NotContains(t, out, "#")

	// Later tests must not inherit --copy.
	require.NoError(t, previewCmd.Flags().Set("copy", "false"))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(errors.New("boom")))
	assert.Equal(t, 143, ExitCode(ErrStopped))
	assert.Equal(t, 143, ExitCode(fmt.Errorf("run: %w", ErrStopped)))
}
