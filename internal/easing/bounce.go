package easing

// BounceOut reaches end and bounces three times with decaying height.
func BounceOut(start, end, t float64) float64 {
	delta := end - start
	switch {
	case t < bounceThreshold1:
		return delta*(bounceGain*t*t) + start
	case t < bounceThreshold2:
		t -= bounceShift2
		return delta*(bounceGain*t*t+bounceLift2) + start
	case t < bounceThreshold3:
		t -= bounceShift3
		return delta*(bounceGain*t*t+bounceLift3) + start
	default:
		t -= bounceShift4
		return delta*(bounceGain*t*t+bounceLift4) + start
	}
}

// BounceIn is BounceOut played backwards.
func BounceIn(start, end, t float64) float64 {
	delta := end - start
	return delta - BounceOut(0, delta, 1-t) + start
}
