package easing

import "math"

// Sine

// SineIn follows the first quarter of a cosine wave.
func SineIn(start, end, t float64) float64 {
	delta := end - start
	return -delta*math.Cos(t*(math.Pi/halfDivisor)) + delta + start
}

// SineOut follows the first quarter of a sine wave.
func SineOut(start, end, t float64) float64 {
	delta := end - start
	return delta*math.Sin(t*(math.Pi/halfDivisor)) + start
}

// SineInOut follows half a cosine period.
func SineInOut(start, end, t float64) float64 {
	delta := end - start
	return -delta/halfDivisor*(math.Cos(math.Pi*t)-1) + start
}

// Expo
//
// The raw exponential never reaches its endpoints (it is off by delta/1024),
// so t == 0 and t == 1 are returned exactly.

// ExpoIn accelerates exponentially.
func ExpoIn(start, end, t float64) float64 {
	delta := end - start
	switch t {
	case 0:
		return start
	case 1:
		return start + delta
	}
	return delta*math.Pow(expoBase, expoScale*(t-1)) + start
}

// ExpoOut decelerates exponentially.
func ExpoOut(start, end, t float64) float64 {
	delta := end - start
	switch t {
	case 0:
		return start
	case 1:
		return start + delta
	}
	return delta*(-math.Pow(expoBase, -expoScale*t)+1) + start
}

// ExpoInOut is the two-sided exponential ease.
func ExpoInOut(start, end, t float64) float64 {
	delta := end - start
	switch t {
	case 0:
		return start
	case 1:
		return start + delta
	}
	t *= inOutDoubler
	if t < 1 {
		return delta/halfDivisor*math.Pow(expoBase, expoScale*(t-1)) + start
	}
	t--
	return delta/halfDivisor*(-math.Pow(expoBase, -expoScale*t)+2) + start
}

// Circ

// CircIn follows a quarter circle, accelerating.
func CircIn(start, end, t float64) float64 {
	delta := end - start
	return -delta*(math.Sqrt(1-t*t)-1) + start
}

// CircOut follows a quarter circle, decelerating.
func CircOut(start, end, t float64) float64 {
	delta := end - start
	t--
	return delta*math.Sqrt(1-t*t) + start
}

// CircInOut joins CircIn and CircOut at the midpoint.
func CircInOut(start, end, t float64) float64 {
	delta := end - start
	t *= inOutDoubler
	if t < 1 {
		return -delta/halfDivisor*(math.Sqrt(1-t*t)-1) + start
	}
	t -= 2
	return delta/halfDivisor*(math.Sqrt(1-t*t)+1) + start
}
