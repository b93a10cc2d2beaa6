package easing

import "math"

// ElasticIn winds up with a growing oscillation before snapping to end.
func ElasticIn(start, end, t float64) float64 {
	return ElasticInWith(start, end, t, 0, DefaultElasticPeriod)
}

// ElasticOut snaps to end and rings down around it.
func ElasticOut(start, end, t float64) float64 {
	return ElasticOutWith(start, end, t, 0, DefaultElasticPeriod)
}

// ElasticInOut winds up to the midpoint and rings down after it.
func ElasticInOut(start, end, t float64) float64 {
	return ElasticInOutWith(start, end, t, 0, DefaultElasticPeriod)
}

// ElasticInWith is ElasticIn with an explicit amplitude and period.
// An amplitude of zero, or one smaller than |end-start|, uses end-start.
// A period of zero uses DefaultElasticPeriod.
func ElasticInWith(start, end, t, amplitude, period float64) float64 {
	delta := end - start
	if t == 0 {
		return start
	}
	if t == 1 {
		return start + delta
	}

	period = elasticPeriod(period)
	a, phase := elasticShape(delta, amplitude, period)

	t--
	return -(a * math.Pow(2, elasticDecay*t) * math.Sin((t-phase)*(2*math.Pi)/period)) + start
}

// ElasticOutWith is ElasticOut with an explicit amplitude and period.
func ElasticOutWith(start, end, t, amplitude, period float64) float64 {
	delta := end - start
	if t == 0 {
		return start
	}
	if t == 1 {
		return start + delta
	}

	period = elasticPeriod(period)
	a, phase := elasticShape(delta, amplitude, period)

	return a*math.Pow(2, -elasticDecay*t)*math.Sin((t-phase)*(2*math.Pi)/period) + delta + start
}

// ElasticInOutWith is ElasticInOut with an explicit amplitude and period.
func ElasticInOutWith(start, end, t, amplitude, period float64) float64 {
	delta := end - start
	if t == 0 {
		return start
	}
	t *= inOutDoubler
	if t == 2 {
		return start + delta
	}

	period = elasticPeriod(period)
	a, phase := elasticShape(delta, amplitude, period)

	t--
	if t < 0 {
		return -0.5*(a*math.Pow(2, elasticDecay*t)*math.Sin((t-phase)*(2*math.Pi)/period)) + start
	}
	return a*math.Pow(2, -elasticDecay*t)*math.Sin((t-phase)*(2*math.Pi)/period)*0.5 + delta + start
}

func elasticPeriod(period float64) float64 {
	if period == 0 {
		return DefaultElasticPeriod
	}
	return period
}

// elasticShape resolves the oscillation amplitude and its phase offset.
func elasticShape(delta, amplitude, period float64) (a, phase float64) {
	if amplitude == 0 || amplitude < math.Abs(delta) {
		return delta, period / elasticPhaseDivisor
	}
	return amplitude, period / (2 * math.Pi) * math.Asin(delta/amplitude)
}
