package tween

import (
	"math"
	"time"
)

// Interval reports eased progress over a fixed duration, one callback per
// host frame. It is a resumable state machine: the host calls Step with the
// frame's Δt and the interval advances, fires its callback and reports
// whether it is still running.
//
// Raw progress is elapsed/duration, computed after elapsed has advanced and
// never clamped, so the final callback may see raw progress past 1.
//
// An Interval is not safe for concurrent use.
type Interval struct {
	duration float64
	elapsed  float64
	progress float64
	curve    Curve
	tick     func(easedT float64)
	done     bool
}

// NewInterval creates an interval lasting abs(duration) seconds. Each Step
// passes curve.Evaluate(elapsed/duration) to tick; nil curve means Linear
// and nil tick is allowed. Nothing fires until the first Step.
//
// A zero (or NaN) duration produces an interval that is already done and
// never calls tick.
func NewInterval(duration float64, tick func(easedT float64), c Curve) *Interval {
	iv := &Interval{
		duration: math.Abs(duration),
		curve:    resolveCurve(c),
		tick:     tick,
	}
	iv.Reset()
	return iv
}

// Step advances the interval by dt seconds and fires the callback once.
// It returns true while the interval is still running. Once done, Step
// does nothing and returns false.
//
// dt is applied as given; a negative dt moves elapsed backwards.
func (iv *Interval) Step(dt float64) bool {
	if iv.done {
		return false
	}

	iv.elapsed += dt
	iv.progress = iv.elapsed / iv.duration
	if iv.tick != nil {
		iv.tick(iv.curve.Evaluate(iv.progress))
	}

	if !(iv.elapsed < iv.duration) {
		iv.done = true
	}
	return !iv.done
}

// StepDuration is Step with a time.Duration.
func (iv *Interval) StepDuration(d time.Duration) bool {
	return iv.Step(d.Seconds())
}

// Reset rewinds the interval to its initial state.
func (iv *Interval) Reset() {
	iv.elapsed = 0
	iv.progress = 0
	iv.done = !(iv.duration > 0)
}

// Done reports whether the interval has finished.
func (iv *Interval) Done() bool { return iv.done }

// Elapsed returns the accumulated time in seconds.
func (iv *Interval) Elapsed() float64 { return iv.elapsed }

// Duration returns the normalized (non-negative) duration in seconds.
func (iv *Interval) Duration() float64 { return iv.duration }

// Progress returns the raw progress passed to the curve on the last Step,
// or 0 before the first Step.
func (iv *Interval) Progress() float64 { return iv.progress }
