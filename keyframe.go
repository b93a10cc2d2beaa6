package tween

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"gonum.org/v1/gonum/interp"
)

// Interpolation selects how a [KeyframeCurve] fills the space between keys.
type Interpolation int

const (
	// InterpLinear joins keys with straight segments.
	InterpLinear Interpolation = iota

	// InterpAkima fits an Akima spline: smooth, with little overshoot near outliers.
	InterpAkima

	// InterpFritschButland fits a monotone cubic that never overshoots its keys.
	InterpFritschButland

	// InterpNaturalCubic fits a natural cubic spline (zero curvature at the ends).
	InterpNaturalCubic
)

// Minimum key counts per interpolation.
const (
	minKeyframes             = 2
	minNaturalCubicKeyframes = 3
)

var interpolationNames = map[Interpolation]string{
	InterpLinear:         "linear",
	InterpAkima:          "akima",
	InterpFritschButland: "fritsch-butland",
	InterpNaturalCubic:   "natural-cubic",
}

// String returns the configuration name of i.
func (i Interpolation) String() string {
	if name, ok := interpolationNames[i]; ok {
		return name
	}
	return fmt.Sprintf("Interpolation(%d)", int(i))
}

// ParseInterpolation returns the Interpolation named s. An empty name is linear.
func ParseInterpolation(s string) (Interpolation, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	if want == "" {
		return InterpLinear, nil
	}
	for i, name := range interpolationNames {
		if name == want {
			return i, nil
		}
	}
	return InterpLinear, fmt.Errorf("%w: unknown interpolation %q", ErrInvalidKeyframes, s)
}

// KeyframeCurve is a sampled curve defined by (time, value) keys, in the
// manner of an animation-curve asset. Outside the key time range the curve
// holds its first or last value.
type KeyframeCurve struct {
	times     []float64
	values    []float64
	kind      Interpolation
	predictor interp.Predictor
}

// NewKeyframeCurve fits a curve through the given keys. times must be
// strictly increasing and every key must be finite.
func NewKeyframeCurve(times, values []float64, kind Interpolation) (*KeyframeCurve, error) {
	if len(times) != len(values) {
		return nil, fmt.Errorf("%w: %d times but %d values", ErrInvalidKeyframes, len(times), len(values))
	}

	need := minKeyframes
	if kind == InterpNaturalCubic {
		need = minNaturalCubicKeyframes
	}
	if len(times) < need {
		return nil, fmt.Errorf("%w: %s needs at least %d keys, got %d", ErrInvalidKeyframes, kind, need, len(times))
	}

	for i := range times {
		if !isFinite(times[i]) || !isFinite(values[i]) {
			return nil, fmt.Errorf("%w: key %d is not finite", ErrInvalidKeyframes, i)
		}
		if i > 0 && times[i] <= times[i-1] {
			return nil, fmt.Errorf("%w: key times must be strictly increasing (key %d)", ErrInvalidKeyframes, i)
		}
	}

	var fp interp.FittablePredictor
	switch kind {
	case InterpLinear:
		fp = &interp.PiecewiseLinear{}
	case InterpAkima:
		fp = &interp.AkimaSpline{}
	case InterpFritschButland:
		fp = &interp.FritschButland{}
	case InterpNaturalCubic:
		fp = &interp.NaturalCubic{}
	default:
		return nil, fmt.Errorf("%w: unsupported interpolation %s", ErrInvalidKeyframes, kind)
	}

	c := &KeyframeCurve{
		times:  slices.Clone(times),
		values: slices.Clone(values),
		kind:   kind,
	}
	if err := fp.Fit(c.times, c.values); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKeyframes, err)
	}
	c.predictor = fp

	return c, nil
}

// Evaluate implements [Curve].
func (c *KeyframeCurve) Evaluate(t float64) float64 {
	if math.IsNaN(t) {
		return t
	}
	t = max(c.times[0], min(c.times[len(c.times)-1], t))
	return c.predictor.Predict(t)
}

// Keys returns copies of the key times and values.
func (c *KeyframeCurve) Keys() (times, values []float64) {
	return slices.Clone(c.times), slices.Clone(c.values)
}

// Interpolation returns how the curve was fitted.
func (c *KeyframeCurve) Interpolation() Interpolation {
	return c.kind
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
