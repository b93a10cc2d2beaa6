package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	tween "github.com/tphakala/go-tween"
	"github.com/tphakala/go-tween/preset"
)

const (
	// WAV format tag for integer PCM
	wavFormatPCM = 1

	// Supported PCM bit depths
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32
)

var errUnsupportedFormat = errors.New("unsupported WAV format")

// fadeConfig describes the envelopes applied to a file.
type fadeConfig struct {
	FadeIn  float64 // Seconds
	FadeOut float64 // Seconds
	EaseIn  tween.Curve
	EaseOut tween.Curve
}

type fadeStats struct {
	rate          int
	channels      int
	bitDepth      int
	frames        int
	fadeInFrames  int
	fadeOutFrames int
	clipped       int
}

// resolveCurve looks name up as a built-in ease first, then as a preset.
func resolveCurve(name string, lib *preset.Library) (tween.Curve, error) {
	if e, err := tween.ParseEase(name); err == nil {
		return e, nil
	}
	if p, ok := lib.Get(name); ok {
		return p.Curve, nil
	}
	return nil, fmt.Errorf("%w or %w: %q", tween.ErrUnknownEase, preset.ErrNotFound, name)
}

// fadeEnvelope returns one gain per frame rising along c from near 0 to 1,
// produced by stepping an Interval once per frame at Δt = 1/rate.
//
// Accumulated steps can finish slightly past the end of the fade, where some
// curves (circ-in, scripts) are undefined. Non-finite gains are replaced by
// the curve's value at 1, or by 1 if that is not finite either.
func fadeEnvelope(seconds float64, rate int, c tween.Curve) []float64 {
	if rate <= 0 {
		return nil
	}
	if c == nil {
		c = tween.Linear
	}
	final := c.Evaluate(1)
	if !isFinite(final) {
		final = 1
	}

	gains := make([]float64, 0, int(math.Ceil(math.Abs(seconds)*float64(rate)))+1)
	iv := tween.NewInterval(seconds, func(eased float64) {
		if !isFinite(eased) {
			eased = final
		}
		gains = append(gains, eased)
	}, c)

	dt := 1 / float64(rate)
	for iv.Step(dt) {
	}
	return gains
}

// applyFades scales the interleaved samples in buf in place and returns the
// number of frames touched by each fade and the number of clipped samples.
func applyFades(buf *audio.IntBuffer, bitDepth int, cfg fadeConfig) (inFrames, outFrames, clipped int) {
	channels := buf.Format.NumChannels
	rate := buf.Format.SampleRate
	frames := len(buf.Data) / channels
	peak := maxSampleValue(bitDepth)

	gain := func(frame int, g float64) {
		for ch := range channels {
			i := frame*channels + ch
			v := math.Round(float64(buf.Data[i]) * g)
			if v > peak || v < -peak-1 {
				clipped++
				v = max(-peak-1, min(peak, v))
			}
			buf.Data[i] = int(v)
		}
	}

	if cfg.FadeIn != 0 {
		env := fadeEnvelope(cfg.FadeIn, rate, cfg.EaseIn)
		inFrames = min(len(env), frames)
		for f := range inFrames {
			gain(f, env[f])
		}
	}

	if cfg.FadeOut != 0 {
		env := fadeEnvelope(cfg.FadeOut, rate, cfg.EaseOut)
		// The envelope ends on the last frame; longer fades lose their start.
		skip := max(0, len(env)-frames)
		start := frames - (len(env) - skip)
		for i, g := range env[skip:] {
			gain(start+i, 1-g)
		}
		outFrames = len(env) - skip
	}

	return inFrames, outFrames, clipped
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func maxSampleValue(bitDepth int) float64 {
	return float64(int64(1)<<(bitDepth-1) - 1)
}

// fadeWAV reads inputPath, applies cfg and writes outputPath in the same format.
func fadeWAV(inputPath, outputPath string, cfg fadeConfig) (*fadeStats, error) {
	buf, dec, err := readWAV(inputPath)
	if err != nil {
		return nil, err
	}

	bitDepth := int(dec.BitDepth)
	inFrames, outFrames, clipped := applyFades(buf, bitDepth, cfg)

	if err := writeWAV(outputPath, buf, bitDepth); err != nil {
		return nil, err
	}

	return &fadeStats{
		rate:          buf.Format.SampleRate,
		channels:      buf.Format.NumChannels,
		bitDepth:      bitDepth,
		frames:        len(buf.Data) / buf.Format.NumChannels,
		fadeInFrames:  inFrames,
		fadeOutFrames: outFrames,
		clipped:       clipped,
	}, nil
}

func readWAV(path string) (*audio.IntBuffer, *wav.Decoder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, nil, fmt.Errorf("invalid WAV file: %s", path)
	}
	if dec.WavAudioFormat != wavFormatPCM {
		return nil, nil, fmt.Errorf("%w: format tag %d", errUnsupportedFormat, dec.WavAudioFormat)
	}
	switch dec.BitDepth {
	case bitsPerSample16, bitsPerSample24, bitsPerSample32:
	default:
		return nil, nil, fmt.Errorf("%w: %d-bit", errUnsupportedFormat, dec.BitDepth)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, nil, fmt.Errorf("%w: no channels", errUnsupportedFormat)
	}
	return buf, dec, nil
}

func writeWAV(path string, buf *audio.IntBuffer, bitDepth int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	enc := wav.NewEncoder(f, buf.Format.SampleRate, bitDepth, buf.Format.NumChannels, wavFormatPCM)
	if err := enc.Write(buf); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to finalize WAV: %w", err)
	}
	return f.Close()
}
