package tween

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-tween/internal/testutil"
)

func TestLerpSliceFloat64(t *testing.T) {
	from := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8}
	to := []float64{8, 7, 6, 5, 4, 3, 2, 1, 0}
	dst := make([]float64, len(from))

	require.NoError(t, LerpSlice(dst, from, to, 0.5, QuadIn))
	for i := range dst {
		want := Lerp(from[i], to[i], 0.5, QuadIn)
		assert.InDelta(t, want, dst[i], testutil.DefaultTolerance, "index %d", i)
	}
}

func TestLerpSliceFloat32InPlace(t *testing.T) {
	from := []float32{0, 0, 0, 0, 0}
	to := []float32{1, 2, 3, 4, 5}

	require.NoError(t, LerpSlice(to, from, to, 0.5, nil))
	assert.InDeltaSlice(t, []float32{0.5, 1, 1.5, 2, 2.5}, to, 1e-6)
}

func TestLerpSliceLengthMismatch(t *testing.T) {
	err := LerpSlice(make([]float64, 2), []float64{1, 2}, []float64{1}, 0.5, nil)
	require.ErrorIs(t, err, ErrLengthMismatch)

	err = LerpSlice(make([]float64, 3), []float64{1, 2}, []float64{1, 2}, 0.5, nil)
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestLerpSliceEmpty(t *testing.T) {
	require.NoError(t, LerpSlice[float64](nil, nil, nil, 0.5, nil))
}

func BenchmarkLerpSlice(b *testing.B) {
	const n = 4096
	from := make([]float64, n)
	to := testutil.Linspace(0, 1, n)
	dst := make([]float64, n)

	for b.Loop() {
		_ = LerpSlice(dst, from, to, 0.5, SineInOut)
	}
}
