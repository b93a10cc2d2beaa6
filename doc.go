// Package tween provides easing curves, interpolation and a frame-driven
// progress scheduler for animation in pure Go.
//
// The easing formulas follow Robert Penner's classic easing equations, with
// the usual spring curve added, and the scheduler is driven by the host's
// frame delta so it plugs into any game loop or UI ticker.
//
// # Features
//
//   - 31 built-in easing modes selected by the closed [Ease] enumeration
//   - Generic interpolation of scalars, vectors and colours
//   - Sampled curves fitted through keyframes with gonum interpolators
//   - A resumable [Interval] state machine stepped by frame delta
//   - A [Scheduler] for many concurrent tweens in one game loop
//   - SIMD-accelerated blending of whole sample buffers via github.com/tphakala/simd
//
// # Quick Start
//
// Interpolate directly with an eased progress value:
//
//	x := tween.Lerp(0.0, 10.0, 0.5, tween.QuadIn) // 2.5
//
// Or let an interval drive a callback once per frame:
//
//	iv := tween.NewInterval(2.0, func(t float64) {
//	    sprite.X = tween.Lerp(startX, endX, t, nil)
//	}, tween.BackOut)
//
//	// In the game loop:
//	iv.Step(dt)
//
// # Easing Modes
//
// Every [Ease] evaluates a curve over raw progress in [0, 1]. The families
// are Quad, Cubic, Quart, Quint, Sine, Expo, Circ, Back, Elastic and Bounce,
// each with In, Out and InOut variants, plus [Linear] and [Spring].
// Inputs outside [0, 1] are not clamped (except by Spring), so callers see
// the natural continuation of each formula.
//
// The start/end form used by tweening libraries is available through
// [Evaluate]:
//
//	y := tween.Evaluate(tween.ElasticOut, 100, 200, t)
//
// # Curves
//
// Anything with an Evaluate(t float64) float64 method is a [Curve]. Every
// [Ease] is a Curve, [CurveFunc] adapts a plain function, and
// [KeyframeCurve] fits a curve through authored keys:
//
//	pop, err := tween.NewKeyframeCurve(
//	    []float64{0, 0.7, 1},
//	    []float64{0, 1.1, 1},
//	    tween.InterpAkima,
//	)
//
// # Interpolable Values
//
// [Lerp] blends float types, [LerpVector] blends any type with Add, Sub and
// Mult methods (such as cp.Vector or [Color]), and [LerpOps] blends types
// whose arithmetic is provided as free functions, such as gonum's r2 and r3
// vectors via [R2Ops] and [R3Ops]. [LerpSlice] blends audio-sized buffers.
//
// # Scheduling
//
// An [Interval] computes raw progress as elapsed/duration after adding each
// frame delta and never clamps it, so the last callback may overshoot 1
// slightly. Zero-length intervals are done immediately and never fire.
// [Run] and [Play] drive an interval from wall-clock frames.
//
// # Thread Safety
//
// Easing and interpolation functions are pure and safe for concurrent use.
// [Interval] and [Scheduler] are single-goroutine state machines; drive each
// one from the goroutine that owns the game loop.
package tween
