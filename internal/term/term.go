//go:build unix

// Package term drives the raw-mode terminal the marquee draws on.
package term

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ErrTerminalMode reports that raw mode could not be entered or the
// terminal could not be written.
var ErrTerminalMode = errors.New("terminal mode failure")

// ClearHome clears the screen and moves the cursor to row 1, column 1.
const ClearHome = "\x1b[2J\x1b[1;1H"

// Terminal is a TTY held in raw mode. Close restores the previous mode.
type Terminal struct {
	in      *os.File
	out     *bufio.Writer
	inFd    int
	oldTerm *term.State
	ownsIn  bool
	closed  bool
}

// Open puts the keyboard into raw mode. Keys are read from stdin when it is a
// terminal, otherwise from /dev/tty so text can be piped in. Frames go to out.
func Open(out *os.File) (*Terminal, error) {
	in, owns := os.Stdin, false
	if !term.IsTerminal(int(in.Fd())) {
		tty, err := os.Open("/dev/tty")
		if err != nil {
			return nil, fmt.Errorf("%w: no controlling terminal: %w", ErrTerminalMode, err)
		}
		in, owns = tty, true
	}

	t := &Terminal{
		in:     in,
		out:    bufio.NewWriterSize(out, 4096),
		inFd:   int(in.Fd()),
		ownsIn: owns,
	}

	old, err := term.MakeRaw(t.inFd)
	if err != nil {
		t.release()
		return nil, fmt.Errorf("%w: entering raw mode: %w", ErrTerminalMode, err)
	}
	t.oldTerm = old
	return t, nil
}

// Close restores the terminal. It is safe to call more than once.
func (t *Terminal) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true

	flushErr := t.out.Flush()
	var restoreErr error
	if t.oldTerm != nil {
		restoreErr = term.Restore(t.inFd, t.oldTerm)
	}
	t.release()
	return errors.Join(flushErr, restoreErr)
}

func (t *Terminal) release() {
	if t.ownsIn {
		t.in.Close()
	}
}

// Clear clears the screen and homes the cursor.
func (t *Terminal) Clear() error {
	_, err := t.Write([]byte(ClearHome))
	return err
}

// Write buffers p for the next Flush.
func (t *Terminal) Write(p []byte) (int, error) {
	if t.closed {
		return 0, fmt.Errorf("%w: write after close", ErrTerminalMode)
	}
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("%w: %w", ErrTerminalMode, err)
	}
	return n, nil
}

// Flush writes buffered output to the terminal.
func (t *Terminal) Flush() error {
	if err := t.out.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrTerminalMode, err)
	}
	return nil
}

// PollByte returns one pending input byte without blocking. ok is false
// when nothing is waiting.
func (t *Terminal) PollByte() (b byte, ok bool, err error) {
	fds := []unix.PollFd{{Fd: int32(t.inFd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, 0)
	if err != nil {
		if err == unix.EINTR {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("polling input: %w", err)
	}
	if n == 0 || fds[0].Revents&unix.POLLIN == 0 {
		return 0, false, nil
	}

	var buf [1]byte
	rn, err := unix.Read(t.inFd, buf[:])
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("reading input: %w", err)
	}
	if rn == 0 {
		return 0, false, nil
	}
	return buf[0], true, nil
}

// Size returns the width and height of the terminal attached to f, falling
// back to 80x24.
func Size(f *os.File) (int, int) {
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 80, 24
	}
	return w, h
}

// IsTerminal reports whether f is a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
