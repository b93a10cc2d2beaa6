package easing

import "math"

// Spring overshoots end and wobbles back into place. It is the only
// function in the set that clamps t into [0, 1].
func Spring(start, end, t float64) float64 {
	t = max(0, min(1, t))
	inv := 1 - t
	t = (math.Sin(t*math.Pi*(springFreqBase+springFreqCubic*t*t*t))*math.Pow(inv, springDecayPow) + t) *
		(1 + springOverBoost*inv)
	return start + (end-start)*t
}
