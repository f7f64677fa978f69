// Package clipboard copies rendered banners to the system clipboard.
package clipboard

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnavailable is returned when no clipboard tool is installed.
var ErrUnavailable = errors.New("no clipboard tool found")

// candidates lists clipboard writers per platform, in preference order.
var candidates = map[string][][]string{
	"darwin":  {{"pbcopy"}},
	"linux":   {{"wl-copy"}, {"xclip", "-selection", "clipboard"}, {"xsel", "--clipboard", "--input"}},
	"windows": {{"cmd", "/c", "clip"}},
}

// command picks the first installed tool for goos.
func command(goos string, lookPath func(string) (string, error)) []string {
	list, ok := candidates[goos]
	if !ok {
		list = candidates["linux"]
	}
	for _, argv := range list {
		if _, err := lookPath(argv[0]); err == nil {
			return argv
		}
	}
	return nil
}

// Write copies text to the system clipboard.
func Write(text string) error {
	argv := command(runtime.GOOS, exec.LookPath)
	if argv == nil {
		return ErrUnavailable
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// Available checks if clipboard functionality is available.
func Available() bool {
	return command(runtime.GOOS, exec.LookPath) != nil
}
