package tween

import "math"

// Sample evaluates c (nil means Linear) at n evenly spaced points covering
// [0, 1] inclusive. It returns nil for n < 1; a single sample is taken at 0.
func Sample(c Curve, n int) []float64 {
	if n < 1 {
		return nil
	}
	out := make([]float64, n)
	SampleInto(out, c)
	return out
}

// SampleInto fills dst with len(dst) evenly spaced samples of c over [0, 1].
func SampleInto(dst []float64, c Curve) {
	c = resolveCurve(c)
	if len(dst) < minSamples {
		for i := range dst {
			dst[i] = c.Evaluate(0)
		}
		return
	}
	last := float64(len(dst) - 1)
	for i := range dst {
		dst[i] = c.Evaluate(float64(i) / last)
	}
}

// CurveStats summarizes the shape of a curve over [0, 1].
type CurveStats struct {
	Min        float64 // Smallest sampled value
	Max        float64 // Largest sampled value
	Undershoot float64 // How far the curve dips below 0, or 0
	Overshoot  float64 // How far the curve rises above 1, or 0
	Monotonic  bool    // Whether samples never decrease
}

// Analyze samples c at n points and summarizes the result. n is raised to
// two if smaller.
func Analyze(c Curve, n int) CurveStats {
	samples := Sample(c, max(n, minSamples))

	stats := CurveStats{
		Min:       math.Inf(1),
		Max:       math.Inf(-1),
		Monotonic: true,
	}
	for i, v := range samples {
		stats.Min = min(stats.Min, v)
		stats.Max = max(stats.Max, v)
		if i > 0 && v < samples[i-1] {
			stats.Monotonic = false
		}
	}
	stats.Undershoot = max(0, -stats.Min)
	stats.Overshoot = max(0, stats.Max-1)
	return stats
}
