package tween

import "github.com/tphakala/go-tween/internal/easing"

// easeFuncs maps every Ease to its transfer function.
var easeFuncs = [numEases]easing.Func{
	Linear:       easing.Linear,
	Spring:       easing.Spring,
	QuadIn:       easing.QuadIn,
	QuadOut:      easing.QuadOut,
	QuadInOut:    easing.QuadInOut,
	CubicIn:      easing.CubicIn,
	CubicOut:     easing.CubicOut,
	CubicInOut:   easing.CubicInOut,
	BounceIn:     easing.BounceIn,
	BounceOut:    easing.BounceOut,
	ElasticIn:    easing.ElasticIn,
	ElasticOut:   easing.ElasticOut,
	ElasticInOut: easing.ElasticInOut,
	QuartIn:      easing.QuartIn,
	QuartOut:     easing.QuartOut,
	QuartInOut:   easing.QuartInOut,
	QuintIn:      easing.QuintIn,
	QuintOut:     easing.QuintOut,
	QuintInOut:   easing.QuintInOut,
	SineIn:       easing.SineIn,
	SineOut:      easing.SineOut,
	SineInOut:    easing.SineInOut,
	ExpoIn:       easing.ExpoIn,
	ExpoOut:      easing.ExpoOut,
	ExpoInOut:    easing.ExpoInOut,
	CircIn:       easing.CircIn,
	CircOut:      easing.CircOut,
	CircInOut:    easing.CircInOut,
	BackIn:       easing.BackIn,
	BackOut:      easing.BackOut,
	BackInOut:    easing.BackInOut,
}

// Func returns the transfer function f(start, end, t) for e.
// Values outside the declared set resolve to Linear.
func (e Ease) Func() func(start, end, t float64) float64 {
	if !e.Valid() {
		return easing.Linear
	}
	return easeFuncs[e]
}

// Evaluate returns the value at progress t between start and end, shaped by ease.
func Evaluate(ease Ease, start, end, t float64) float64 {
	return ease.Func()(start, end, t)
}

// Evaluate implements [Curve] over the unit interval: it returns the eased
// progress for raw progress t.
func (e Ease) Evaluate(t float64) float64 {
	return Evaluate(e, 0, 1, t)
}
