package easing

// BackIn pulls back below start before accelerating towards end.
func BackIn(start, end, t float64) float64 {
	delta := end - start
	k := backOvershoot
	return delta*t*t*((k+1)*t-k) + start
}

// BackOut overshoots end and settles back.
func BackOut(start, end, t float64) float64 {
	delta := end - start
	k := backOvershoot
	t--
	return delta*(t*t*((k+1)*t+k)+1) + start
}

// BackInOut pulls back at the start and overshoots at the end.
func BackInOut(start, end, t float64) float64 {
	delta := end - start
	k := backOvershoot * backInOutOvershoot
	t *= inOutDoubler
	if t < 1 {
		return delta/halfDivisor*(t*t*((k+1)*t-k)) + start
	}
	t -= 2
	return delta/halfDivisor*(t*t*((k+1)*t+k)+2) + start
}
