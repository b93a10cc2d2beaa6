package tween

import (
	"context"
	"fmt"
	"time"
)

// Run drives iv from a stream of frame timestamps, such as a ticker's C
// channel or a display's vsync events. The first frame only sets the time
// base; every later frame steps iv by the wall time since the previous one.
//
// Run returns nil once iv is done, ctx.Err() if ctx is cancelled, or
// ErrFramesClosed if frames closes first. An interval that is already done
// returns nil without reading a frame.
func Run(ctx context.Context, iv *Interval, frames <-chan time.Time) error {
	if iv.Done() {
		return nil
	}

	var last time.Time
	started := false
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now, ok := <-frames:
			if !ok {
				return ErrFramesClosed
			}
			if !started {
				last, started = now, true
				continue
			}
			dt := now.Sub(last)
			last = now
			if !iv.StepDuration(dt) {
				return nil
			}
		}
	}
}

// Play runs iv in real time at fps frames per second.
func Play(ctx context.Context, iv *Interval, fps float64) error {
	if !(fps > 0) {
		return fmt.Errorf("%w: %v", ErrInvalidFrameRate, fps)
	}

	period := time.Duration(float64(time.Second) / fps)
	if period <= 0 {
		return fmt.Errorf("%w: %v exceeds clock resolution", ErrInvalidFrameRate, fps)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	// Seed the time base with the start instant so the first tick already
	// advances the interval.
	frames := make(chan time.Time, 1)
	frames <- time.Now()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				select {
				case frames <- now:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return Run(ctx, iv, frames)
}
