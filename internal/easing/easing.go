// Package easing implements the easing transfer functions used by tween.
//
// Every function has the form f(start, end, t) and returns the value that
// sits at eased progress t between start and end. t is conventionally in
// [0, 1] but is never rejected: values outside that range extrapolate
// through the formula. Only [Spring] clamps its input. NaN and Inf are
// passed through.
package easing

// Func is an easing transfer function.
type Func func(start, end, t float64) float64

// Linear blends start and end proportionally to t.
func Linear(start, end, t float64) float64 {
	delta := end - start
	return start + delta*t
}
