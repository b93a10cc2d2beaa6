package tween

import (
	"fmt"
	"strings"
)

// Ease enumerates the built-in easing curves.
// The set is closed: every value declared here maps to exactly one formula.
type Ease int

const (
	// Linear moves at constant speed.
	Linear Ease = iota

	// Spring overshoots and wobbles into place. Progress is clamped to [0, 1].
	Spring

	QuadIn
	QuadOut
	QuadInOut

	CubicIn
	CubicOut
	CubicInOut

	BounceIn
	BounceOut

	ElasticIn
	ElasticOut
	ElasticInOut

	QuartIn
	QuartOut
	QuartInOut

	QuintIn
	QuintOut
	QuintInOut

	SineIn
	SineOut
	SineInOut

	ExpoIn
	ExpoOut
	ExpoInOut

	CircIn
	CircOut
	CircInOut

	// BackIn dips about 10% below the start before moving.
	BackIn

	// BackOut overshoots the end by about 10% before settling.
	BackOut

	BackInOut

	numEases
)

var easeNames = [numEases]string{
	Linear:       "linear",
	Spring:       "spring",
	QuadIn:       "quad-in",
	QuadOut:      "quad-out",
	QuadInOut:    "quad-in-out",
	CubicIn:      "cubic-in",
	CubicOut:     "cubic-out",
	CubicInOut:   "cubic-in-out",
	BounceIn:     "bounce-in",
	BounceOut:    "bounce-out",
	ElasticIn:    "elastic-in",
	ElasticOut:   "elastic-out",
	ElasticInOut: "elastic-in-out",
	QuartIn:      "quart-in",
	QuartOut:     "quart-out",
	QuartInOut:   "quart-in-out",
	QuintIn:      "quint-in",
	QuintOut:     "quint-out",
	QuintInOut:   "quint-in-out",
	SineIn:       "sine-in",
	SineOut:      "sine-out",
	SineInOut:    "sine-in-out",
	ExpoIn:       "expo-in",
	ExpoOut:      "expo-out",
	ExpoInOut:    "expo-in-out",
	CircIn:       "circ-in",
	CircOut:      "circ-out",
	CircInOut:    "circ-in-out",
	BackIn:       "back-in",
	BackOut:      "back-out",
	BackInOut:    "back-in-out",
}

// easeLookup is keyed by the name with separators removed and lower-cased.
var easeLookup = func() map[string]Ease {
	m := make(map[string]Ease, numEases)
	for e, name := range easeNames {
		m[normalizeEaseName(name)] = Ease(e)
	}
	return m
}()

// Eases returns every easing mode in declaration order.
func Eases() []Ease {
	out := make([]Ease, numEases)
	for i := range out {
		out[i] = Ease(i)
	}
	return out
}

// Valid reports whether e is one of the declared easing modes.
func (e Ease) Valid() bool {
	return e >= 0 && e < numEases
}

// String returns the kebab-case name of e, such as "quad-in-out".
func (e Ease) String() string {
	if !e.Valid() {
		return fmt.Sprintf("Ease(%d)", int(e))
	}
	return easeNames[e]
}

// ParseEase returns the Ease named s. Matching ignores case and treats
// '-', '_' and spaces as optional separators, so "quad-in-out",
// "QuadInOut" and "QUAD_IN_OUT" are equivalent.
func ParseEase(s string) (Ease, error) {
	if e, ok := easeLookup[normalizeEaseName(s)]; ok {
		return e, nil
	}
	return Linear, fmt.Errorf("%w: %q", ErrUnknownEase, s)
}

// MarshalText implements encoding.TextMarshaler.
func (e Ease) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEase, int(e))
	}
	return []byte(easeNames[e]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Ease) UnmarshalText(text []byte) error {
	parsed, err := ParseEase(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

func normalizeEaseName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}
