package tween

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-tween/internal/testutil"
)

// frameTimes returns a buffered, closed channel of timestamps at the given
// offsets (seconds) from a fixed base.
func frameTimes(offsets ...float64) <-chan time.Time {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ch := make(chan time.Time, len(offsets))
	for _, off := range offsets {
		ch <- base.Add(time.Duration(off * float64(time.Second)))
	}
	close(ch)
	return ch
}

func TestRunSyntheticFrames(t *testing.T) {
	var rec recorder
	iv := NewInterval(2.0, rec.tick, Linear)

	err := Run(t.Context(), iv, frameTimes(0, 0.5, 1.0, 1.5, 2.1, 3.0))
	require.NoError(t, err)

	want := []float64{0.25, 0.5, 0.75, 1.05}
	require.Len(t, rec.values, len(want))
	for i := range want {
		assert.InDelta(t, want[i], rec.values[i], testutil.LooseTolerance)
	}
}

func TestRunFramesClosed(t *testing.T) {
	iv := NewInterval(2.0, nil, nil)
	err := Run(t.Context(), iv, frameTimes(0, 0.5))
	require.ErrorIs(t, err, ErrFramesClosed)
	assert.False(t, iv.Done())
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	frames := make(chan time.Time)
	err := Run(ctx, NewInterval(1, nil, nil), frames)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunAlreadyDone(t *testing.T) {
	err := Run(t.Context(), NewInterval(0, nil, nil), nil)
	require.NoError(t, err)
}

func TestPlayInvalidFrameRate(t *testing.T) {
	for _, fps := range []float64{0, -60} {
		err := Play(t.Context(), NewInterval(1, nil, nil), fps)
		require.ErrorIs(t, err, ErrInvalidFrameRate)
	}
}

func TestPlayFinishes(t *testing.T) {
	var rec recorder
	iv := NewInterval(0.05, rec.tick, nil)

	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer cancel()

	require.NoError(t, Play(ctx, iv, 200))
	assert.True(t, iv.Done())
	require.NotEmpty(t, rec.values)
	assert.GreaterOrEqual(t, rec.values[len(rec.values)-1], 1.0)
}
