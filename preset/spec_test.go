package preset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tween "github.com/tphakala/go-tween"
)

const sampleYAML = `
presets:
  fade-in:
    duration: 0.5
    ease: quad-out
  pop:
    duration: 0.3
    interpolation: linear
    keyframes:
      - {t: 0, v: 0}
      - {t: 0.5, v: 1.2}
      - {t: 1, v: 1}
  smooth:
    duration: 1
    script: "out = t * t * (3 - 2 * t)"
  plain:
    duration: 2
`

func TestParse(t *testing.T) {
	presets, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)
	require.Len(t, presets, 4)

	fade := presets["fade-in"]
	assert.Equal(t, "fade-in", fade.Name)
	assert.InDelta(t, 0.5, fade.Duration, 1e-12)
	assert.Equal(t, tween.QuadOut, fade.Curve)

	pop := presets["pop"]
	assert.InDelta(t, 1.2, pop.Curve.Evaluate(0.5), 1e-9)
	assert.InDelta(t, 1.1, pop.Curve.Evaluate(0.75), 1e-9)

	smooth := presets["smooth"]
	assert.InDelta(t, 0.5, smooth.Curve.Evaluate(0.5), 1e-12)
	assert.InDelta(t, 0.15625, smooth.Curve.Evaluate(0.25), 1e-12)

	assert.Equal(t, tween.Linear, presets["plain"].Curve)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "presets: [oops"},
		{"unknown ease", "presets:\n  a: {duration: 1, ease: wiggle}"},
		{"negative duration", "presets:\n  a: {duration: -1}"},
		{"two sources", "presets:\n  a: {duration: 1, ease: quad-in, script: \"out = t\"}"},
		{"interpolation alone", "presets:\n  a: {duration: 1, interpolation: akima}"},
		{"bad interpolation", "presets:\n  a: {duration: 1, interpolation: bezier, keyframes: [{t: 0, v: 0}, {t: 1, v: 1}]}"},
		{"one keyframe", "presets:\n  a: {duration: 1, keyframes: [{t: 0, v: 0}]}"},
		{"bad script", "presets:\n  a: {duration: 1, script: \"out = = t\"}"},
		{"missing script file", "presets:\n  a: {duration: 1, script_file: nowhere.tengo}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.ErrorIs(t, err, ErrInvalidPreset)
		})
	}
}

func TestParseWrapsCauses(t *testing.T) {
	_, err := Parse([]byte("presets:\n  a: {duration: 1, ease: wiggle}"))
	require.ErrorIs(t, err, tween.ErrUnknownEase)

	_, err = Parse([]byte("presets:\n  a: {duration: 1, keyframes: [{t: 1, v: 0}, {t: 0, v: 1}]}"))
	require.ErrorIs(t, err, tween.ErrInvalidKeyframes)

	_, err = Parse([]byte("presets:\n  a: {duration: 1, script: \"out = \"}"))
	require.ErrorIs(t, err, ErrScript)
}

func TestLoadFileScriptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ease.tengo"), []byte("out = t * t"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "presets.yaml"),
		[]byte("presets:\n  sq:\n    duration: 1\n    script_file: ease.tengo\n"), 0o600))

	presets, err := LoadFile(filepath.Join(dir, "presets.yaml"))
	require.NoError(t, err)
	assert.InDelta(t, 0.25, presets["sq"].Curve.Evaluate(0.5), 1e-12)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestPresetInterval(t *testing.T) {
	ease := tween.QuadIn
	p, err := Spec{Duration: 1, Ease: &ease}.Build("quad")
	require.NoError(t, err)

	var got []float64
	iv := p.Interval(func(v float64) { got = append(got, v) })
	for iv.Step(0.5) {
	}
	assert.InDeltaSlice(t, []float64{0.25, 1}, got, 1e-12)
}

func TestBuildEmptyName(t *testing.T) {
	_, err := Spec{Duration: 1}.Build(" ")
	require.ErrorIs(t, err, ErrInvalidPreset)
}

func TestDefaults(t *testing.T) {
	presets := Defaults()
	for _, name := range []string{"fade-in", "fade-out", "pop", "wobble", "drop"} {
		p, ok := presets[name]
		require.True(t, ok, "missing %s", name)
		assert.InDelta(t, 0.0, p.Curve.Evaluate(0), 1e-9, name)
		assert.InDelta(t, 1.0, p.Curve.Evaluate(1), 1e-9, name)
	}
}
