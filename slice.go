package tween

import (
	"fmt"

	"github.com/tphakala/go-tween/internal/simdops"
)

// LerpSlice blends two equally sized sample buffers element-wise into dst,
// using SIMD kernels where the CPU supports them. The eased progress is
// computed once from t and c (nil means Linear).
//
// dst may be the same slice as to, but must not overlap from.
func LerpSlice[F float32 | float64](dst, from, to []F, t float64, c Curve) error {
	if len(from) != len(to) || len(dst) != len(from) {
		return fmt.Errorf("%w: dst=%d from=%d to=%d", ErrLengthMismatch, len(dst), len(from), len(to))
	}
	eased := resolveCurve(c).Evaluate(t)
	simdops.Lerp(simdops.For[F](), dst, from, to, F(eased))
	return nil
}
