// Package loop drives a frame callback for hosts that have no display-refresh
// scheduler of their own, such as a terminal.
//
// Frames run synchronously on the caller's goroutine, one at a time. The
// context is checked at the top of every frame; there is no cancellation in
// the middle of a frame.
package loop

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// DefaultInterval is roughly one display refresh at 60Hz.
const DefaultInterval = time.Second / 60

// ErrStop can be returned by a FrameFunc to end the loop without an error.
var ErrStop = errors.New("stop frame loop")

// FrameFunc renders one frame. now is the wall-clock time of the frame.
type FrameFunc func(now time.Time) error

// Options configures Run.
type Options struct {
	// Interval between frame starts. Zero means DefaultInterval.
	Interval time.Duration
	// StartupDelay is waited once before the first frame.
	StartupDelay time.Duration
	// Now returns the frame time. Nil means time.Now.
	Now func() time.Time
}

// Run calls frame repeatedly until ctx is done or frame returns an error.
//
// It returns nil when ctx is cancelled or frame returns ErrStop, and the
// frame's error otherwise. A frame that takes longer than the interval is
// followed immediately by the next one; missed ticks are not replayed.
func Run(ctx context.Context, opts Options, frame FrameFunc) error {
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	if opts.StartupDelay > 0 {
		timer := time.NewTimer(opts.StartupDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for frames := 0; ; frames++ {
		if ctx.Err() != nil {
			return nil
		}

		if err := frame(now()); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}
			return fmt.Errorf("frame %d: %w", frames, err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
