// Command tween inspects easing curves and presets.
//
// Usage:
//
//	tween --list
//	tween --ease back-out --samples 21
//	tween --ease elastic-out --plot
//	tween --analyze
//	tween --presets presets.yaml --preset pop --play
//	tween --presets presets.yaml --preset pop --watch   # re-plot on save
//
// Every flag can also be set as a TWEEN_* environment variable (for
// example TWEEN_LOG_LEVEL=debug) or as a key in ./tween.yaml.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	tween "github.com/tphakala/go-tween"
	"github.com/tphakala/go-tween/internal/logging"
	"github.com/tphakala/go-tween/preset"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tween: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Verbose, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // best-effort flush

	lib := preset.NewLibrary(logger)
	lib.Replace(preset.Defaults())
	if cfg.Presets != "" && !cfg.Watch {
		if err := lib.Load(cfg.Presets); err != nil {
			return err
		}
	}

	switch {
	case cfg.List:
		return listCurves(stdout, lib)
	case cfg.Analyze:
		return analyzeCurves(stdout, lib, analyzeSamples)
	case cfg.Watch:
		return watchPreset(ctx, stdout, lib, cfg, logger)
	}

	name, curve, duration, err := resolveCurve(cfg, lib)
	if err != nil {
		return err
	}
	logger.Debug("curve resolved",
		zap.String("name", name),
		zap.Float64("duration", duration))

	switch {
	case cfg.Play:
		return playCurve(ctx, stdout, curve, duration, cfg.FPS)
	case cfg.Plot:
		_, err := fmt.Fprintf(stdout, "%s\n%s", name, renderPlot(curve, cfg.Width, cfg.Height))
		return err
	default:
		return printSamples(stdout, curve, cfg.Samples)
	}
}

// resolveCurve picks the preset named by --preset, or the --ease otherwise.
func resolveCurve(cfg *config, lib *preset.Library) (string, tween.Curve, float64, error) {
	if cfg.Preset != "" {
		p, ok := lib.Get(cfg.Preset)
		if !ok {
			return "", nil, 0, fmt.Errorf("%w: %q", preset.ErrNotFound, cfg.Preset)
		}
		return p.Name, p.Curve, p.Duration, nil
	}

	e, err := tween.ParseEase(cfg.Ease)
	if err != nil {
		return "", nil, 0, err
	}
	return e.String(), e, cfg.Duration, nil
}

func printSamples(w io.Writer, c tween.Curve, n int) error {
	samples := tween.Sample(c, n)
	last := max(n-1, 1)
	for i, v := range samples {
		if _, err := fmt.Fprintf(w, "%.4f\t%.6f\n", float64(i)/float64(last), v); err != nil {
			return err
		}
	}
	return nil
}

func listCurves(w io.Writer, lib *preset.Library) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "EASES")
	for _, e := range tween.Eases() {
		fmt.Fprintf(tw, "  %s\n", e)
	}
	fmt.Fprintln(tw, "\nPRESETS\tDURATION\tCURVE")
	for _, name := range lib.Names() {
		p, _ := lib.Get(name)
		fmt.Fprintf(tw, "  %s\t%.2fs\t%s\n", name, p.Duration, describeCurve(p.Curve))
	}
	return tw.Flush()
}

func describeCurve(c tween.Curve) string {
	switch c := c.(type) {
	case tween.Ease:
		return c.String()
	case *tween.KeyframeCurve:
		times, _ := c.Keys()
		return fmt.Sprintf("keyframes (%d, %s)", len(times), c.Interpolation())
	case *preset.ScriptCurve:
		return "script"
	default:
		return fmt.Sprintf("%T", c)
	}
}

func analyzeCurves(w io.Writer, lib *preset.Library, samples int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "CURVE\tMIN\tMAX\tUNDERSHOOT\tOVERSHOOT\tMONOTONIC\t")

	row := func(name string, c tween.Curve) {
		s := tween.Analyze(c, samples)
		fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%.4f\t%.4f\t%v\t\n",
			name, s.Min, s.Max, s.Undershoot, s.Overshoot, s.Monotonic)
	}
	for _, e := range tween.Eases() {
		row(e.String(), e)
	}
	for _, name := range lib.Names() {
		p, _ := lib.Get(name)
		row("preset:"+name, p.Curve)
	}
	return tw.Flush()
}

func playCurve(ctx context.Context, w io.Writer, c tween.Curve, duration, fps float64) error {
	iv := tween.NewInterval(duration, func(v float64) {
		fmt.Fprintf(w, "\r%s", renderBar(v))
	}, c)
	if iv.Done() {
		_, err := fmt.Fprintln(w, renderBar(1))
		return err
	}
	if err := tween.Play(ctx, iv, fps); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func watchPreset(ctx context.Context, w io.Writer, lib *preset.Library, cfg *config, logger *zap.Logger) error {
	draw := func() {
		p, ok := lib.Get(cfg.Preset)
		if !ok {
			fmt.Fprintf(w, "preset %q not in %s\n", cfg.Preset, cfg.Presets)
			return
		}
		fmt.Fprintf(w, "%s (%.2fs, %s)\n%s", p.Name, p.Duration, describeCurve(p.Curve),
			renderPlot(p.Curve, cfg.Width, cfg.Height))
	}

	if err := lib.Load(cfg.Presets); err != nil {
		return err
	}
	draw()

	logger.Info("watching presets", zap.String("path", cfg.Presets))
	return lib.Watch(ctx, cfg.Presets, func(err error) {
		if err != nil {
			fmt.Fprintf(w, "reload failed: %v\n", err)
			return
		}
		draw()
	})
}
