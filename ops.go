package tween

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Ops describes the arithmetic of a value type whose operations are free
// functions rather than methods. It lets [LerpOps] blend types that cannot
// satisfy [Vector], such as gonum's spatial vectors.
type Ops[T any] struct {
	// Add returns a + b.
	Add func(a, b T) T

	// Sub returns a - b.
	Sub func(a, b T) T

	// Scale returns v * s.
	Scale func(v T, s float64) T
}

// Pre-built tables for gonum spatial vectors.
var (
	R2Ops = Ops[r2.Vec]{
		Add:   r2.Add,
		Sub:   r2.Sub,
		Scale: func(v r2.Vec, s float64) r2.Vec { return r2.Scale(s, v) },
	}
	R3Ops = Ops[r3.Vec]{
		Add:   r3.Add,
		Sub:   r3.Sub,
		Scale: func(v r3.Vec, s float64) r3.Vec { return r3.Scale(s, v) },
	}
)

// Validate reports the first missing operation, naming it and the value type.
func (o Ops[T]) Validate() error {
	var zero T
	switch {
	case o.Sub == nil:
		return fmt.Errorf("%w: Sub on %T", ErrUnsupportedOperation, zero)
	case o.Scale == nil:
		return fmt.Errorf("%w: Scale on %T", ErrUnsupportedOperation, zero)
	case o.Add == nil:
		return fmt.Errorf("%w: Add on %T", ErrUnsupportedOperation, zero)
	}
	return nil
}

// LerpOps is Lerp for types described by an [Ops] table.
// It panics if ops is missing an operation; the panic value is the error
// returned by [Ops.Validate].
func LerpOps[T any](ops Ops[T], from, to T, t float64, c Curve) T {
	if err := ops.Validate(); err != nil {
		panic(err)
	}
	eased := resolveCurve(c).Evaluate(t)
	delta := ops.Sub(to, from)
	return ops.Add(from, ops.Scale(delta, eased))
}
