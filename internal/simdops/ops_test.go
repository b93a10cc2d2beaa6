package simdops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor_ReturnsMatchingInstance(t *testing.T) {
	assert.Same(t, &ops32, For[float32]())
	assert.Same(t, &ops64, For[float64]())
}

func TestLerp_Float64(t *testing.T) {
	from := []float64{0, 10, -4, 2}
	to := []float64{10, 20, 4, 2}
	dst := make([]float64, len(from))

	Lerp(For[float64](), dst, from, to, 0.25)

	assert.InDeltaSlice(t, []float64{2.5, 12.5, -2, 2}, dst, 1e-12)
	assert.Equal(t, []float64{0, 10, -4, 2}, from, "from must not be modified")
}

func TestLerp_Float32(t *testing.T) {
	from := []float32{1, 2, 3}
	to := []float32{3, 2, 1}
	dst := make([]float32, len(from))

	Lerp(For[float32](), dst, from, to, 0.5)

	assert.InDeltaSlice(t, []float32{2, 2, 2}, dst, 1e-6)
}

func TestLerp_InPlaceOverTo(t *testing.T) {
	from := []float64{0, 0, 0}
	to := []float64{4, 8, 12}

	Lerp(For[float64](), to, from, to, 0.5)

	assert.InDeltaSlice(t, []float64{2, 4, 6}, to, 1e-12)
}

func TestLerp_Empty(t *testing.T) {
	assert.NotPanics(t, func() {
		Lerp(For[float64](), nil, nil, nil, 0.5)
	})
}

// BenchmarkLerpF64 measures a full blend through the Ops indirection.
func BenchmarkLerpF64(b *testing.B) {
	ops := For[float64]()
	from := make([]float64, 1024)
	to := make([]float64, 1024)
	dst := make([]float64, 1024)
	for i := range from {
		from[i] = float64(i) * 0.01
		to[i] = float64(i) * 0.02
	}

	b.ReportAllocs()
	for b.Loop() {
		Lerp(ops, dst, from, to, 0.37)
	}
}

// BenchmarkLerpF32 measures a full blend through the Ops indirection.
func BenchmarkLerpF32(b *testing.B) {
	ops := For[float32]()
	from := make([]float32, 1024)
	to := make([]float32, 1024)
	dst := make([]float32, 1024)
	for i := range from {
		from[i] = float32(i) * 0.01
		to[i] = float32(i) * 0.02
	}

	b.ReportAllocs()
	for b.Loop() {
		Lerp(ops, dst, from, to, 0.37)
	}
}
