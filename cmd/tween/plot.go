package main

import (
	"fmt"
	"math"
	"strings"

	tween "github.com/tphakala/go-tween"
)

// renderPlot draws c over [0, 1] as a width x height character grid. The
// vertical range always includes 0 and 1, which are drawn as guide lines,
// and grows to fit any overshoot.
func renderPlot(c tween.Curve, width, height int) string {
	samples := tween.Sample(c, width)
	lo, hi := 0.0, 1.0
	for _, v := range samples {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = min(lo, v)
		hi = max(hi, v)
	}

	rowOf := func(v float64) int {
		return int(math.Round((hi - v) / (hi - lo) * float64(height-1)))
	}

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(string(plotBlank), width))
	}
	for _, guide := range []float64{0, 1} {
		row := grid[rowOf(guide)]
		for col := range row {
			row[col] = plotGuide
		}
	}
	for col, v := range samples {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		grid[rowOf(v)][col] = plotPoint
	}

	var b strings.Builder
	for r, row := range grid {
		y := hi - (hi-lo)*float64(r)/float64(height-1)
		fmt.Fprintf(&b, "%6.2f |%s\n", y, string(row))
	}
	return b.String()
}

// renderBar draws a progress bar for eased progress v. The bar is clamped
// but the printed value is not, so overshoot stays visible. A non-finite v
// draws an empty bar.
func renderBar(v float64) string {
	filled := 0
	if !math.IsNaN(v) && !math.IsInf(v, 0) {
		filled = int(math.Round(max(0, min(1, v)) * barWidth))
	}
	return fmt.Sprintf("[%s%s] %6.3f",
		strings.Repeat(string(barFull), filled),
		strings.Repeat(string(barEmpty), barWidth-filled),
		v)
}
