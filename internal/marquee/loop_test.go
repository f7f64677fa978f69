package marquee

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/f3rmion/marquee/internal/compose"
	"github.com/f3rmion/marquee/internal/glyph"
	"github.com/f3rmion/marquee/internal/scroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTerm struct {
	out     bytes.Buffer
	keys    []byte
	clears  int
	flushes int
	frames  []string
	failAt  int
}

func (f *fakeTerm) Write(p []byte) (int, error) {
	if f.failAt > 0 && f.flushes+1 >= f.failAt {
		return 0, errors.New("write failed")
	}
	return f.out.Write(p)
}

func (f *fakeTerm) Clear() error {
	f.clears++
	f.out.Reset()
	return nil
}

func (f *fakeTerm) Flush() error {
	f.flushes++
	f.frames = append(f.frames, f.out.String())
	return nil
}

func (f *fakeTerm) PollByte() (byte, bool, error) {
	if len(f.keys) == 0 {
		return 0, false, nil
	}
	b := f.keys[0]
	f.keys = f.keys[1:]
	return b, true, nil
}

func noSleep(context.Context, time.Duration) {}

func newLoop(t *testing.T, line string, ft *fakeTerm, opts ...Option) (*Loop, *compose.Buffer) {
	t.Helper()
	set, err := glyph.LoadEmbedded()
	require.NoError(t, err)
	buf := compose.Compose(set, []rune(line))
	opts = append([]Option{WithSleep(noSleep)}, opts...)
	return New(buf, scroll.New(scroll.DefaultWindow), ft, opts...), buf
}

func TestFrameState_speedClamps(t *testing.T) {
	s := FrameState{Speed: DefaultSpeed}
	for i := 0; i < 12; i++ {
		s.HandleKey(KeyFaster)
		assert.LessOrEqual(t, s.Speed, MaxSpeed)
	}
	assert.Equal(t, 10, s.Speed)

	s = FrameState{Speed: DefaultSpeed}
	for i := 0; i < 20; i++ {
		s.HandleKey(KeySlower)
		assert.GreaterOrEqual(t, s.Speed, MinSpeed)
	}
	assert.Equal(t, 1, s.Speed)

	s.HandleKey('x')
	s.HandleKey(0x1b)
	s.HandleKey('[')
	assert.Equal(t, 1, s.Speed)
	assert.False(t, s.Quit)
}

func TestFrameState_advance(t *testing.T) {
	s := FrameState{}
	for i := 0; i < 100; i++ {
		s.Advance(18)
		assert.GreaterOrEqual(t, s.Offset, 0)
		assert.Less(t, s.Offset, 18)
	}
	assert.Equal(t, 100%18, s.Offset)

	s = FrameState{}
	s.Advance(0)
	assert.Equal(t, 0, s.Offset)
}

func TestDelay(t *testing.T) {
	assert.Equal(t, 166*time.Millisecond, Delay(1))
	assert.Equal(t, 83*time.Millisecond, Delay(2))
	assert.Equal(t, 55*time.Millisecond, Delay(3))
	assert.Equal(t, 16*time.Millisecond, Delay(10))
}

func TestLoop_quitWithinOneFrame(t *testing.T) {
	ft := &fakeTerm{keys: []byte{KeyQuit}}
	l, _ := newLoop(t, "HI", ft)
	require.NoError(t, l.Run(context.Background()))
	assert.Equal(t, 1, l.Frames())
	assert.True(t, l.State().Quit)
	assert.Equal(t, 1, ft.clears)
}

func TestLoop_arrowKeys(t *testing.T) {
	keys := bytes.Repeat([]byte("\x1b[C"), 12)
	keys = append(keys, 'q')
	ft := &fakeTerm{keys: keys}
	l, _ := newLoop(t, "A", ft)
	require.NoError(t, l.Run(context.Background()))
	assert.Equal(t, 10, l.State().Speed)
	assert.Contains(t, ft.frames[len(ft.frames)-1], "Speed = 10 sym/s")

	keys = bytes.Repeat([]byte("\x1b[D"), 20)
	keys = append(keys, 'q')
	ft = &fakeTerm{keys: keys}
	l, _ = newLoop(t, "A", ft)
	require.NoError(t, l.Run(context.Background()))
	assert.Equal(t, 1, l.State().Speed)
}

func TestLoop_speedAppliesNextFrame(t *testing.T) {
	ft := &fakeTerm{keys: []byte{KeyFaster, 'q'}}
	l, _ := newLoop(t, "A", ft)
	require.NoError(t, l.Run(context.Background()))
	require.Len(t, ft.frames, 2)
	assert.Contains(t, ft.frames[0], "Speed = 2 sym/s")
	assert.Contains(t, ft.frames[1], "Speed = 3 sym/s")
}

func TestLoop_emptyLine(t *testing.T) {
	ft := &fakeTerm{keys: []byte{0, 0, 0, 'q'}}
	l, buf := newLoop(t, "", ft)
	require.Equal(t, 0, buf.Cols())
	require.NoError(t, l.Run(context.Background()))
	assert.Equal(t, 4, l.Frames())
	assert.Equal(t, 0, l.State().Offset)
	assert.Equal(t, "\r\n\r\n\r\n\r\n\r\n"+strings.Repeat("-", 24)+"\r\nSpeed = 2 sym/s\r\n", ft.frames[0])
}

func TestLoop_fullCycleRepeatsOutput(t *testing.T) {
	ft := &fakeTerm{}
	l, buf := newLoop(t, "AB", ft)
	for i := 0; i < 2*buf.Cols(); i++ {
		require.NoError(t, l.Step())
		assert.Less(t, l.State().Offset, buf.Cols())
	}
	require.Len(t, ft.frames, 2*buf.Cols())
	for i := 0; i < buf.Cols(); i++ {
		assert.Equal(t, ft.frames[i], ft.frames[i+buf.Cols()])
	}
}

func TestLoop_writeFailureIsFatal(t *testing.T) {
	ft := &fakeTerm{failAt: 3}
	l, _ := newLoop(t, "A", ft)
	err := l.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, 2, l.Frames())
}

func TestLoop_contextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ft := &fakeTerm{}
	l, _ := newLoop(t, "A", ft, WithSleep(func(context.Context, time.Duration) { cancel() }))
	err := l.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, l.Frames())
	assert.False(t, l.State().Quit)
}

func TestLoop_initialSpeedOption(t *testing.T) {
	l, _ := newLoop(t, "A", &fakeTerm{}, WithSpeed(42))
	assert.Equal(t, MaxSpeed, l.State().Speed)
	l, _ = newLoop(t, "A", &fakeTerm{}, WithSpeed(0))
	assert.Equal(t, MinSpeed, l.State().Speed)
}

func TestSleep_returnsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	Sleep(ctx, time.Hour)
	assert.Less(t, time.Since(start), time.Second)
}
