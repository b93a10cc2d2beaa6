// Command fade-wav applies eased fade-in and fade-out envelopes to WAV files.
//
// Usage:
//
//	fade-wav --in 2 --out 3 input.wav output.wav
//	fade-wav --in 0.5 --in-ease expo-out --out 0 input.wav output.wav
//	fade-wav --presets fades.yaml --in-ease gentle input.wav output.wav
//
// Fade curves may name a built-in ease or a preset. Curves that overshoot
// (back, elastic, spring) briefly push the gain above unity; samples are
// clipped to the format's range.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/tphakala/go-tween/internal/logging"
	"github.com/tphakala/go-tween/preset"
)

const (
	// CLI defaults
	defaultFadeSeconds = 1.0
	defaultEaseIn      = "quad-out"
	defaultEaseOut     = "quad-in"
	requiredArgs       = 2
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "fade-wav: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := pflag.NewFlagSet("fade-wav", pflag.ContinueOnError)
	fadeIn := fs.Float64("in", defaultFadeSeconds, "Fade-in length in seconds (0 disables)")
	fadeOut := fs.Float64("out", defaultFadeSeconds, "Fade-out length in seconds (0 disables)")
	easeIn := fs.String("in-ease", defaultEaseIn, "Fade-in curve: ease or preset name")
	easeOut := fs.String("out-ease", defaultEaseOut, "Fade-out curve: ease or preset name")
	presetsPath := fs.String("presets", "", "YAML presets file (replaces the built-in presets)")
	verbose := fs.BoolP("verbose", "v", false, "Verbose output")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fade-wav [options] input.wav output.wav\n\nOptions:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() < requiredArgs {
		fs.Usage()
		return errors.New("insufficient arguments")
	}

	level := "warn"
	if *verbose {
		level = "debug"
	}
	logger, err := logging.New(*verbose, level)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // best-effort flush

	lib := preset.NewLibrary(logger)
	lib.Replace(preset.Defaults())
	if *presetsPath != "" {
		if err := lib.Load(*presetsPath); err != nil {
			return err
		}
	}

	cfg := fadeConfig{FadeIn: *fadeIn, FadeOut: *fadeOut}
	if cfg.EaseIn, err = resolveCurve(*easeIn, lib); err != nil {
		return fmt.Errorf("fade-in curve: %w", err)
	}
	if cfg.EaseOut, err = resolveCurve(*easeOut, lib); err != nil {
		return fmt.Errorf("fade-out curve: %w", err)
	}

	inputPath, outputPath := fs.Arg(0), fs.Arg(1)
	logger.Debug("fading",
		zap.String("input", inputPath),
		zap.String("output", outputPath),
		zap.Float64("fade_in", cfg.FadeIn),
		zap.String("fade_in_curve", *easeIn),
		zap.Float64("fade_out", cfg.FadeOut),
		zap.String("fade_out_curve", *easeOut))

	start := time.Now()
	stats, err := fadeWAV(inputPath, outputPath, cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Faded %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  %d Hz, %d channels, %d-bit, %d frames\n",
		stats.rate, stats.channels, stats.bitDepth, stats.frames)
	fmt.Printf("  Fade in: %d frames, fade out: %d frames, %d samples clipped\n",
		stats.fadeInFrames, stats.fadeOutFrames, stats.clipped)
	fmt.Printf("  Took %s\n", time.Since(start).Round(time.Millisecond))
	return nil
}
