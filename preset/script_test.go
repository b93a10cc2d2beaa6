package preset

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptCurveEvaluate(t *testing.T) {
	c, err := NewScriptCurve("out = math.sin(t * math.pi / 2)")
	require.NoError(t, err)

	assert.InDelta(t, 0.0, c.Evaluate(0), 1e-12)
	assert.InDelta(t, 1.0, c.Evaluate(1), 1e-12)
	assert.InDelta(t, 0.7071067811865476, c.Evaluate(0.5), 1e-12)
	assert.NoError(t, c.Err())
	assert.Equal(t, "out = math.sin(t * math.pi / 2)", c.Source())
}

func TestScriptCurveIntegerResult(t *testing.T) {
	c, err := NewScriptCurve("out = 1")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c.Evaluate(0.3), 1e-12)
}

func TestScriptCurveCompileError(t *testing.T) {
	_, err := NewScriptCurve("out = (")
	require.ErrorIs(t, err, ErrScript)
}

func TestScriptCurveWrongType(t *testing.T) {
	_, err := NewScriptCurve(`out = "fast"`)
	require.ErrorIs(t, err, ErrScript)
}

func TestScriptCurveRuntimeFailureFallsBack(t *testing.T) {
	// Fails only once t passes 0.5.
	c, err := NewScriptCurve(`
if t > 0.5 {
	out = "late"
} else {
	out = t
}`)
	require.NoError(t, err)

	assert.InDelta(t, 0.25, c.Evaluate(0.25), 1e-12)
	assert.NoError(t, c.Err())

	assert.InDelta(t, 0.75, c.Evaluate(0.75), 1e-12, "failures fall back to raw progress")
	require.ErrorIs(t, c.Err(), ErrScript)
}

func TestScriptCurveConcurrent(t *testing.T) {
	c, err := NewScriptCurve("out = t * 2")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Go(func() {
			v := float64(i) / 8
			assert.InDelta(t, v*2, c.Evaluate(v), 1e-12)
		})
	}
	wg.Wait()
}
