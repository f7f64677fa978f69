package marquee

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/f3rmion/marquee/internal/compose"
	"github.com/f3rmion/marquee/internal/scroll"
)

// Terminal is the raw-mode screen the loop owns while it runs.
type Terminal interface {
	io.Writer
	Clear() error
	Flush() error
	PollByte() (byte, bool, error)
}

// SleepFunc pauses between frames. It returns early when ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration)

// Sleep waits for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// Loop scrolls a composed buffer across a terminal until quit.
type Loop struct {
	buf      *compose.Buffer
	renderer *scroll.Renderer
	term     Terminal
	sleep    SleepFunc
	state    FrameState
	frames   int
}

// Option configures a Loop.
type Option func(*Loop)

// WithSpeed sets the initial speed, clamped to [MinSpeed, MaxSpeed].
func WithSpeed(speed int) Option {
	return func(l *Loop) {
		l.state.Speed = ClampSpeed(speed)
	}
}

// WithSleep replaces the pause between frames.
func WithSleep(fn SleepFunc) Option {
	return func(l *Loop) {
		l.sleep = fn
	}
}

// New returns a loop at offset 0 and DefaultSpeed.
func New(buf *compose.Buffer, renderer *scroll.Renderer, term Terminal, opts ...Option) *Loop {
	l := &Loop{
		buf:      buf,
		renderer: renderer,
		term:     term,
		sleep:    Sleep,
		state:    FrameState{Speed: DefaultSpeed},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// State returns a copy of the current frame state.
func (l *Loop) State() FrameState { return l.state }

// Frames returns the number of frames drawn so far.
func (l *Loop) Frames() int { return l.frames }

// Step draws one frame, advances the offset and applies at most one pending
// key. It does not sleep.
func (l *Loop) Step() error {
	if err := l.term.Clear(); err != nil {
		return fmt.Errorf("clearing screen: %w", err)
	}
	if err := l.renderer.Render(l.term, l.buf, l.state.Offset, l.state.Speed); err != nil {
		return err
	}
	l.frames++

	l.state.Advance(l.buf.Cols())

	b, ok, err := l.term.PollByte()
	if err != nil {
		return err
	}
	if ok {
		l.state.HandleKey(b)
	}
	return nil
}

// Run animates until 'q' is pressed or ctx is cancelled. Quitting returns
// nil; cancellation returns ctx.Err().
func (l *Loop) Run(ctx context.Context) error {
	for !l.state.Quit {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := l.Step(); err != nil {
			return err
		}
		if l.state.Quit {
			break
		}
		l.sleep(ctx, Delay(l.state.Speed))
	}
	return nil
}
