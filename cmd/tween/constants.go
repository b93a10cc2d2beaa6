package main

const (
	// CLI defaults
	defaultSamples  = 11
	defaultDuration = 1.0
	defaultWidth    = 60
	defaultHeight   = 16
	analyzeSamples  = 1001

	// Plot limits
	minPlotWidth  = 2
	minPlotHeight = 2

	// Plot glyphs
	plotPoint = '*'
	plotGuide = '-'
	plotBlank = ' '

	// Playback progress bar
	barWidth = 40
	barFull  = '#'
	barEmpty = '.'

	// Environment variable prefix, e.g. TWEEN_SAMPLES=21
	envPrefix = "TWEEN"

	// Config file name (without extension) searched in the working directory
	configName = "tween"
)
