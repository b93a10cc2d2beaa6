package easing

// InOut split point. InOut families double t and branch on t < 1.
const (
	halfDivisor  = 2.0
	inOutDoubler = 2.0
)

// Back (overshoot) constants
const (
	backOvershoot      = 1.70158 // Classic 10% overshoot
	backInOutOvershoot = 1.525   // Scale applied to backOvershoot for InOut
)

// Bounce constants. The four parabolic segments of BounceOut.
const (
	bounceGain = 7.5625
	bounceBase = 2.75

	bounceThreshold1 = 1.0 / bounceBase
	bounceThreshold2 = 2.0 / bounceBase
	bounceThreshold3 = 2.5 / bounceBase

	bounceShift2 = 1.5 / bounceBase
	bounceShift3 = 2.25 / bounceBase
	bounceShift4 = 2.625 / bounceBase

	bounceLift2 = 0.75
	bounceLift3 = 0.9375
	bounceLift4 = 0.984375
)

// Elastic constants
const (
	// DefaultElasticPeriod is the oscillation period used by the ElasticIn,
	// ElasticOut and ElasticInOut presets.
	DefaultElasticPeriod = 0.3

	elasticPhaseDivisor = 4.0  // phase = period/4 when amplitude defaults to delta
	elasticDecay        = 10.0 // exponent scale of the 2^(±10t) envelope
)

// Expo constants
const (
	expoBase  = 2.0
	expoScale = 10.0
)

// Spring constants
const (
	springFreqBase  = 0.2
	springFreqCubic = 2.5
	springDecayPow  = 2.2
	springOverBoost = 1.2
)
