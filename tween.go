package tween

import "errors"

// Curve maps raw progress to eased progress. Implementations are owned by
// the caller; tween only ever calls Evaluate.
//
// Every [Ease] is a Curve, so any function taking a Curve accepts either a
// built-in easing mode or a sampled curve such as [KeyframeCurve].
type Curve interface {
	// Evaluate returns the eased progress for raw progress t.
	Evaluate(t float64) float64
}

// CurveFunc is an adapter for plain progress functions. For example:
//
//	CurveFunc(func(t float64) float64 { return t * t })
type CurveFunc func(t float64) float64

// Evaluate calls f(t).
func (f CurveFunc) Evaluate(t float64) float64 {
	return f(t)
}

// resolveCurve substitutes Linear for a nil curve.
func resolveCurve(c Curve) Curve {
	if c == nil {
		return Linear
	}
	return c
}

// Common errors returned by tween.
var (
	// ErrUnknownEase indicates an easing name that does not match any Ease.
	ErrUnknownEase = errors.New("unknown ease")

	// ErrUnsupportedOperation indicates an Ops table missing an arithmetic operation.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrLengthMismatch indicates slice arguments of different lengths.
	ErrLengthMismatch = errors.New("slice length mismatch")

	// ErrInvalidKeyframes indicates keyframes that cannot define a curve.
	ErrInvalidKeyframes = errors.New("invalid keyframes")

	// ErrFramesClosed indicates the frame source closed before the interval finished.
	ErrFramesClosed = errors.New("frame source closed")

	// ErrInvalidFrameRate indicates a non-positive frame rate.
	ErrInvalidFrameRate = errors.New("invalid frame rate")
)
