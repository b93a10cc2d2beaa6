// Package preset loads named tween definitions from YAML files.
//
// A preset file maps names to a duration and a curve, given as a built-in
// ease, a list of keyframes or a tengo script:
//
//	presets:
//	  fade-in:
//	    duration: 0.5
//	    ease: quad-out
//	  pop:
//	    duration: 0.3
//	    interpolation: akima
//	    keyframes:
//	      - {t: 0, v: 0}
//	      - {t: 0.7, v: 1.1}
//	      - {t: 1, v: 1}
//	  wobble:
//	    duration: 1.2
//	    script: "out = t + math.sin(t * 20) * (1 - t) * 0.1"
package preset

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	tween "github.com/tphakala/go-tween"
)

// Errors returned while loading presets.
var (
	// ErrInvalidPreset indicates a preset definition that cannot be built.
	ErrInvalidPreset = errors.New("invalid preset")

	// ErrNotFound indicates a preset name missing from a Library.
	ErrNotFound = errors.New("preset not found")

	// ErrScript indicates a script curve that failed to compile or run.
	ErrScript = errors.New("script error")
)

// FileSpec is the top-level layout of a preset file.
type FileSpec struct {
	Presets map[string]Spec `yaml:"presets"`
}

// Spec is one preset as written in YAML. At most one of Ease, Keyframes,
// Script and ScriptFile may be set; with none the curve is linear.
type Spec struct {
	Duration      float64     `yaml:"duration"`
	Ease          *tween.Ease `yaml:"ease,omitempty"`
	Keyframes     []KeySpec   `yaml:"keyframes,omitempty"`
	Interpolation string      `yaml:"interpolation,omitempty"`
	Script        string      `yaml:"script,omitempty"`
	ScriptFile    string      `yaml:"script_file,omitempty"`
}

// KeySpec is a single (time, value) keyframe.
type KeySpec struct {
	T float64 `yaml:"t"`
	V float64 `yaml:"v"`
}

// Preset is a built, ready-to-run tween definition.
type Preset struct {
	Name     string
	Duration float64
	Curve    tween.Curve
}

// Interval starts a new interval for the preset.
func (p Preset) Interval(tick func(easedT float64)) *tween.Interval {
	return tween.NewInterval(p.Duration, tick, p.Curve)
}

// Parse builds every preset in a YAML document. Relative script_file paths
// are resolved against the working directory.
func Parse(data []byte) (map[string]Preset, error) {
	return parse(data, "")
}

// LoadFile reads and builds a preset file. Relative script_file paths are
// resolved against the file's directory.
func LoadFile(path string) (map[string]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("preset: load %s: %w", path, err)
	}
	presets, err := parse(data, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("preset: %s: %w", path, err)
	}
	return presets, nil
}

func parse(data []byte, baseDir string) (map[string]Preset, error) {
	var file FileSpec
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPreset, err)
	}

	presets := make(map[string]Preset, len(file.Presets))
	for name, spec := range file.Presets {
		p, err := spec.build(name, baseDir)
		if err != nil {
			return nil, err
		}
		presets[name] = p
	}
	return presets, nil
}

// Build turns s into a Preset called name.
func (s Spec) Build(name string) (Preset, error) {
	return s.build(name, "")
}

func (s Spec) build(name, baseDir string) (Preset, error) {
	if strings.TrimSpace(name) == "" {
		return Preset{}, fmt.Errorf("%w: empty name", ErrInvalidPreset)
	}
	if math.IsNaN(s.Duration) || math.IsInf(s.Duration, 0) || s.Duration < 0 {
		return Preset{}, fmt.Errorf("%w: %s: duration %v", ErrInvalidPreset, name, s.Duration)
	}

	curve, err := s.curve(baseDir)
	if err != nil {
		return Preset{}, fmt.Errorf("%w: %s: %w", ErrInvalidPreset, name, err)
	}

	return Preset{Name: name, Duration: s.Duration, Curve: curve}, nil
}

func (s Spec) curve(baseDir string) (tween.Curve, error) {
	sources := 0
	for _, set := range []bool{s.Ease != nil, len(s.Keyframes) > 0, s.Script != "", s.ScriptFile != ""} {
		if set {
			sources++
		}
	}
	if sources > 1 {
		return nil, errors.New("set only one of ease, keyframes, script, script_file")
	}
	if s.Interpolation != "" && len(s.Keyframes) == 0 {
		return nil, errors.New("interpolation needs keyframes")
	}

	switch {
	case s.Ease != nil:
		return *s.Ease, nil
	case len(s.Keyframes) > 0:
		kind, err := tween.ParseInterpolation(s.Interpolation)
		if err != nil {
			return nil, err
		}
		times := make([]float64, len(s.Keyframes))
		values := make([]float64, len(s.Keyframes))
		for i, k := range s.Keyframes {
			times[i], values[i] = k.T, k.V
		}
		return tween.NewKeyframeCurve(times, values, kind)
	case s.Script != "":
		return NewScriptCurve(s.Script)
	case s.ScriptFile != "":
		path := s.ScriptFile
		if !filepath.IsAbs(path) && baseDir != "" {
			path = filepath.Join(baseDir, path)
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load script %s: %w", s.ScriptFile, err)
		}
		return NewScriptCurve(string(src))
	}
	return tween.Linear, nil
}
