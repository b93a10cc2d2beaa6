// Package simdops provides generic SIMD vector kernels for float32 and float64
// buffers, so tween can blend whole sample slices at both precisions
// without duplicating code.
package simdops

import (
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Ops provides SIMD-accelerated element-wise operations for type F.
// All destination and source slices must have equal length.
type Ops[F Float] struct {
	// Add computes dst[i] = a[i] + b[i].
	Add func(dst, a, b []F)

	// Sub computes dst[i] = a[i] - b[i].
	Sub func(dst, a, b []F)

	// Scale computes dst[i] = a[i] * s.
	Scale func(dst, a []F, s F)
}

var (
	ops32 = Ops[float32]{
		Add:   f32.Add,
		Sub:   f32.Sub,
		Scale: f32.Scale,
	}
	ops64 = Ops[float64]{
		Add:   f64.Add,
		Sub:   f64.Sub,
		Scale: f64.Scale,
	}
)

// For returns the Ops instance for type F.
func For[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&ops32).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&ops64).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float64")
		}
		return ops
	default:
		panic("simdops: unsupported float type")
	}
}

// Lerp writes from + (to-from)*t into dst. dst may alias to, but not from.
func Lerp[F Float](ops *Ops[F], dst, from, to []F, t F) {
	if len(dst) == 0 {
		return
	}
	ops.Sub(dst, to, from)
	ops.Scale(dst, dst, t)
	ops.Add(dst, dst, from)
}
