// Package marquee runs the scrolling animation.
package marquee

import "time"

// Speed limits in glyphs per second.
const (
	MinSpeed     = 1
	MaxSpeed     = 10
	DefaultSpeed = 2
)

// Keys the loop reacts to. Arrow keys arrive as ESC [ C and ESC [ D; only
// the final byte is inspected, so a bare 'C' or 'D' acts the same.
const (
	KeyQuit   byte = 'q'
	KeyFaster byte = 67
	KeySlower byte = 68
)

// frameBudget is the per-frame delay at speed 1.
const frameBudget = 1000 / 6 * time.Millisecond

// FrameState is the loop's mutable state.
type FrameState struct {
	Offset int
	Speed  int
	Quit   bool
}

// ClampSpeed limits s to [MinSpeed, MaxSpeed].
func ClampSpeed(s int) int {
	return max(MinSpeed, min(s, MaxSpeed))
}

// Advance moves the window one column, wrapping at cols. An empty buffer
// holds the offset at 0.
func (s *FrameState) Advance(cols int) {
	if cols <= 0 {
		s.Offset = 0
		return
	}
	s.Offset++
	if s.Offset >= cols {
		s.Offset = 0
	}
}

// HandleKey applies one input byte. Unknown bytes are ignored.
func (s *FrameState) HandleKey(b byte) {
	switch b {
	case KeyQuit:
		s.Quit = true
	case KeyFaster:
		s.Speed = min(s.Speed+1, MaxSpeed)
	case KeySlower:
		s.Speed = max(s.Speed-1, MinSpeed)
	}
}

// Delay returns the pause after a frame at the given speed: 166/speed ms.
func Delay(speed int) time.Duration {
	return time.Duration(int(frameBudget/time.Millisecond)/ClampSpeed(speed)) * time.Millisecond
}
