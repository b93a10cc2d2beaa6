package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	tween "github.com/tphakala/go-tween"
)

// config holds the resolved command settings. Values come from, in order
// of precedence: flags, TWEEN_* environment variables, tween.yaml, defaults.
type config struct {
	List     bool
	Analyze  bool
	Plot     bool
	Play     bool
	Watch    bool
	Ease     string
	Preset   string
	Presets  string
	Samples  int
	Duration float64
	FPS      float64
	Width    int
	Height   int
	Verbose  bool
	LogLevel string
}

func newFlagSet(output io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("tween", pflag.ContinueOnError)
	fs.SetOutput(output)

	fs.BoolP("list", "l", false, "List built-in eases and loaded presets")
	fs.BoolP("analyze", "a", false, "Print range and overshoot of every curve")
	fs.BoolP("plot", "p", false, "Draw the curve as an ASCII plot")
	fs.Bool("play", false, "Play the curve in real time as a progress bar")
	fs.Bool("watch", false, "Re-plot the preset whenever the presets file changes")
	fs.StringP("ease", "e", tween.Linear.String(), "Built-in ease to inspect (e.g. quad-in-out, back-out)")
	fs.String("preset", "", "Preset to inspect instead of an ease")
	fs.String("presets", "", "YAML presets file (replaces the built-in presets)")
	fs.IntP("samples", "n", defaultSamples, "Number of samples to print")
	fs.Float64("duration", defaultDuration, "Playback duration in seconds for eases")
	fs.Float64("fps", tween.FPS60, "Playback frame rate")
	fs.Int("width", defaultWidth, "Plot width in columns")
	fs.Int("height", defaultHeight, "Plot height in rows")
	fs.BoolP("verbose", "v", false, "Human-readable debug logging")
	fs.String("log-level", "", "Log level: debug, info, warn, error")
	fs.String("config", "", "Config file (default ./tween.yaml)")
	return fs
}

// loadConfig parses args and layers them over the environment and config
// file. It returns pflag.ErrHelp when help was requested.
func loadConfig(args []string, output io.Writer) (*config, error) {
	fs := newFlagSet(output)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &config{
		List:     v.GetBool("list"),
		Analyze:  v.GetBool("analyze"),
		Plot:     v.GetBool("plot"),
		Play:     v.GetBool("play"),
		Watch:    v.GetBool("watch"),
		Ease:     v.GetString("ease"),
		Preset:   v.GetString("preset"),
		Presets:  v.GetString("presets"),
		Samples:  v.GetInt("samples"),
		Duration: v.GetFloat64("duration"),
		FPS:      v.GetFloat64("fps"),
		Width:    v.GetInt("width"),
		Height:   v.GetInt("height"),
		Verbose:  v.GetBool("verbose"),
		LogLevel: v.GetString("log-level"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *config) validate() error {
	switch {
	case c.Samples < 1:
		return fmt.Errorf("samples must be at least 1, got %d", c.Samples)
	case c.Width < minPlotWidth || c.Height < minPlotHeight:
		return fmt.Errorf("plot must be at least %dx%d, got %dx%d", minPlotWidth, minPlotHeight, c.Width, c.Height)
	case c.Watch && (c.Presets == "" || c.Preset == ""):
		return errors.New("--watch needs --presets and --preset")
	}
	return nil
}
