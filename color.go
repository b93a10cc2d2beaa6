package tween

import (
	"image/color"
	"math"
)

const colorMax = 0xffff

// Color is a non-premultiplied RGBA colour with float components, nominally
// in [0, 1]. Unlike color.RGBA it can hold the negative deltas produced
// while blending, so it satisfies [Vector] and can be passed to LerpVector.
// It implements color.Color, clamping components on conversion.
type Color struct {
	R, G, B, A float64
}

// ColorFrom converts any color.Color to a Color.
func ColorFrom(c color.Color) Color {
	n, _ := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{
		R: float64(n.R) / colorMax,
		G: float64(n.G) / colorMax,
		B: float64(n.B) / colorMax,
		A: float64(n.A) / colorMax,
	}
}

// Add returns the component-wise sum.
func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B, A: c.A + o.A}
}

// Sub returns the component-wise difference.
func (c Color) Sub(o Color) Color {
	return Color{R: c.R - o.R, G: c.G - o.G, B: c.B - o.B, A: c.A - o.A}
}

// Mult scales every component by s.
func (c Color) Mult(s float64) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A * s}
}

// NRGBA64 returns c clamped to 16-bit non-premultiplied components.
func (c Color) NRGBA64() color.NRGBA64 {
	return color.NRGBA64{
		R: clampChannel(c.R),
		G: clampChannel(c.G),
		B: clampChannel(c.B),
		A: clampChannel(c.A),
	}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA64().RGBA()
}

func clampChannel(v float64) uint16 {
	if math.IsNaN(v) {
		return 0
	}
	return uint16(math.Round(max(0, min(1, v)) * colorMax))
}
