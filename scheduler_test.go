package tween

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerDropsFinished(t *testing.T) {
	var short, long recorder
	s := NewScheduler(
		NewInterval(0.5, short.tick, nil),
		NewInterval(1.0, long.tick, nil),
		nil,
	)
	require.Equal(t, 2, s.Len())

	s.Update(0.5)
	assert.Equal(t, 1, s.Len())

	s.Update(0.5)
	assert.Equal(t, 0, s.Len())

	s.Update(0.5)
	assert.Len(t, short.values, 1)
	assert.Len(t, long.values, 2)
}

func TestSchedulerCancel(t *testing.T) {
	var rec recorder
	iv := NewInterval(1.0, rec.tick, nil)
	s := NewScheduler(iv)

	s.Update(0.25)
	assert.True(t, s.Cancel(iv))
	assert.False(t, s.Cancel(iv), "second cancel finds nothing")
	assert.Equal(t, 0, s.Len())

	s.Update(0.25)
	assert.Len(t, rec.values, 1)
}

func TestSchedulerCancelDuringUpdate(t *testing.T) {
	var victimRec recorder
	victim := NewInterval(1.0, victimRec.tick, nil)

	s := NewScheduler()
	killer := NewInterval(1.0, func(float64) {
		s.Cancel(victim)
	}, nil)
	s.Add(killer)
	s.Add(victim)

	s.Update(0.25)
	assert.Empty(t, victimRec.values, "victim was cancelled before its turn")
	assert.Equal(t, 1, s.Len())
}

func TestSchedulerAddDuringUpdate(t *testing.T) {
	var childRec recorder
	s := NewScheduler()

	spawned := false
	parent := NewInterval(1.0, func(float64) {
		if !spawned {
			spawned = true
			s.Add(NewInterval(1.0, childRec.tick, nil))
		}
	}, nil)
	s.Add(parent)

	s.Update(0.25)
	assert.Empty(t, childRec.values, "intervals added mid-update start next update")
	assert.Equal(t, 2, s.Len())

	s.Update(0.25)
	require.Len(t, childRec.values, 1)
	assert.InDelta(t, 0.25, childRec.values[0], 1e-12)
}

func TestSchedulerCancelPending(t *testing.T) {
	s := NewScheduler()
	var child *Interval
	parent := NewInterval(1.0, func(float64) {
		if child == nil {
			child = NewInterval(1.0, nil, nil)
			s.Add(child)
			assert.True(t, s.Cancel(child))
		}
	}, nil)
	s.Add(parent)

	s.Update(0.1)
	assert.Equal(t, 1, s.Len())
}

func TestSchedulerClear(t *testing.T) {
	var rec recorder
	s := NewScheduler(NewInterval(1, rec.tick, nil), NewInterval(2, rec.tick, nil))
	s.Clear()
	assert.Equal(t, 0, s.Len())

	s.Update(0.5)
	assert.Empty(t, rec.values)
}

func TestSchedulerClearDuringUpdate(t *testing.T) {
	var rec recorder
	s := NewScheduler()
	s.Add(NewInterval(1, func(float64) { s.Clear() }, nil))
	s.Add(NewInterval(1, rec.tick, nil))

	s.Update(0.5)
	assert.Empty(t, rec.values)
	assert.Equal(t, 0, s.Len())
}

func TestSchedulerAddTwiceStepsOnce(t *testing.T) {
	var rec recorder
	iv := NewInterval(1.0, rec.tick, nil)
	s := NewScheduler(iv, iv)
	s.Add(iv)
	require.Equal(t, 1, s.Len())

	s.Update(0.25)
	require.Len(t, rec.values, 1)
	assert.InDelta(t, 0.25, rec.values[0], 1e-12)
	assert.InDelta(t, 0.25, iv.Elapsed(), 1e-12)
}

func TestSchedulerReAddAfterCancelDuringUpdate(t *testing.T) {
	var rec recorder
	iv := NewInterval(1.0, rec.tick, nil)
	s := NewScheduler()

	first := true
	s.Add(NewInterval(1.0, func(float64) {
		if first {
			first = false
			s.Cancel(iv)
			s.Add(iv)
			s.Add(iv)
		}
	}, nil))
	s.Add(iv)

	s.Update(0.25)
	assert.Empty(t, rec.values, "cancelled before its turn")
	assert.Equal(t, 2, s.Len())

	s.Update(0.25)
	require.Len(t, rec.values, 1)
	assert.InDelta(t, 0.25, rec.values[0], 1e-12)
}
