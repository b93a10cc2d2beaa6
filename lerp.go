package tween

// Float is the constraint for scalar values Lerp can blend.
type Float interface {
	~float32 | ~float64
}

// Vector is the constraint for values that carry their own arithmetic.
// It matches the method set of common 2D vector types, for example
// cp.Vector from github.com/jakecoffman/cp, as well as [Color].
type Vector[V any] interface {
	Add(other V) V
	Sub(other V) V
	Mult(s float64) V
}

// Lerp interpolates between from and to. The raw progress t is first
// shaped by c (nil means Linear), always over the unit interval, then the
// result is from + (to-from)*eased.
//
//	tween.Lerp(0.0, 10.0, 0.5, tween.QuadIn) // 2.5
func Lerp[F Float](from, to F, t float64, c Curve) F {
	eased := resolveCurve(c).Evaluate(t)
	delta := to - from
	return from + delta*F(eased)
}

// LerpVector is Lerp for types implementing [Vector].
func LerpVector[V Vector[V]](from, to V, t float64, c Curve) V {
	eased := resolveCurve(c).Evaluate(t)
	delta := to.Sub(from)
	return from.Add(delta.Mult(eased))
}
