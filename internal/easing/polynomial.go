package easing

// Quad

// QuadIn accelerates from zero velocity with t².
func QuadIn(start, end, t float64) float64 {
	delta := end - start
	return delta*t*t + start
}

// QuadOut decelerates to zero velocity.
func QuadOut(start, end, t float64) float64 {
	delta := end - start
	return -delta*t*(t-2) + start
}

// QuadInOut accelerates until halfway, then decelerates.
func QuadInOut(start, end, t float64) float64 {
	delta := end - start
	t *= inOutDoubler
	if t < 1 {
		return delta/halfDivisor*t*t + start
	}
	t--
	return -delta/halfDivisor*(t*(t-2)-1) + start
}

// Cubic

// CubicIn accelerates with t³.
func CubicIn(start, end, t float64) float64 {
	delta := end - start
	return delta*t*t*t + start
}

// CubicOut decelerates with (t-1)³.
func CubicOut(start, end, t float64) float64 {
	delta := end - start
	t--
	return delta*(t*t*t+1) + start
}

// CubicInOut is the two-sided cubic ease.
func CubicInOut(start, end, t float64) float64 {
	delta := end - start
	t *= inOutDoubler
	if t < 1 {
		return delta/halfDivisor*t*t*t + start
	}
	t -= 2
	return delta/halfDivisor*(t*t*t+2) + start
}

// Quart

// QuartIn accelerates with t⁴.
func QuartIn(start, end, t float64) float64 {
	delta := end - start
	return delta*t*t*t*t + start
}

// QuartOut decelerates with (t-1)⁴.
func QuartOut(start, end, t float64) float64 {
	delta := end - start
	t--
	return -delta*(t*t*t*t-1) + start
}

// QuartInOut is the two-sided quartic ease.
func QuartInOut(start, end, t float64) float64 {
	delta := end - start
	t *= inOutDoubler
	if t < 1 {
		return delta/halfDivisor*t*t*t*t + start
	}
	t -= 2
	return -delta/halfDivisor*(t*t*t*t-2) + start
}

// Quint

// QuintIn accelerates with t⁵.
func QuintIn(start, end, t float64) float64 {
	delta := end - start
	return delta*t*t*t*t*t + start
}

// QuintOut decelerates with (t-1)⁵.
func QuintOut(start, end, t float64) float64 {
	delta := end - start
	t--
	return delta*(t*t*t*t*t+1) + start
}

// QuintInOut is the two-sided quintic ease.
func QuintInOut(start, end, t float64) float64 {
	delta := end - start
	t *= inOutDoubler
	if t < 1 {
		return delta/halfDivisor*t*t*t*t*t + start
	}
	t -= 2
	return delta/halfDivisor*(t*t*t*t*t+2) + start
}
