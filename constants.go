package tween

// Common frame rates for Play and for fixed-step hosts.
const (
	// FPS30 is the console and video frame rate.
	FPS30 = 30.0

	// FPS60 is the usual display refresh rate and ebiten's default TPS.
	FPS60 = 60.0

	// FPS120 is the high refresh rate of modern phones and laptops.
	FPS120 = 120.0

	// FPS144 is the common gaming monitor refresh rate.
	FPS144 = 144.0
)

// Sampling
const (
	minSamples = 2 // Fewest samples that span both ends of [0, 1]
)
