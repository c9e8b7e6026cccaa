// Package config loads starfield settings from TOML.
//
// Every field has a default, so a missing file or a partial file is fine.
// Command-line flags are applied on top by the CLI.
//
//	marker_count = 11
//	content = "Generate"
//	seed_policy = "footprint"
//
//	[timing]
//	stagger = "40ms"
//	appear = "600ms"
//
//	[layout]
//	jitter_spread = 30.0
//	padding_floor = 12.0
//	padding_scale = 0.6
//
//	[terminal]
//	cell_width = 8.0
//	cell_height = 16.0
//	fps = 60
//	busy_for = "1.5s"
package config

import (
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/starfield/pkg/animation"
	"github.com/matzehuels/starfield/pkg/control"
	"github.com/matzehuels/starfield/pkg/errors"
	"github.com/matzehuels/starfield/pkg/layout"
)

// Config holds all file-configurable settings.
type Config struct {
	MarkerCount int      `toml:"marker_count"`
	Content     string   `toml:"content"`
	SeedPolicy  string   `toml:"seed_policy"`
	Timing      Timing   `toml:"timing"`
	Layout      Layout   `toml:"layout"`
	Terminal    Terminal `toml:"terminal"`
}

// Timing mirrors [animation.Timing].
type Timing struct {
	Stagger Duration `toml:"stagger"`
	Appear  Duration `toml:"appear"`
}

// Layout mirrors [layout.Options].
type Layout struct {
	JitterSpread float64 `toml:"jitter_spread"`
	PaddingFloor float64 `toml:"padding_floor"`
	PaddingScale float64 `toml:"padding_scale"`
}

// Terminal configures the interactive demo.
type Terminal struct {
	// CellWidth and CellHeight convert terminal cells to footprint units.
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`
	// FPS is the frame rate while an animation is running.
	FPS int `toml:"fps"`
	// BusyFor is how long an activation keeps the demo control loading.
	BusyFor Duration `toml:"busy_for"`
}

// Duration is a time.Duration decoded from strings such as "40ms".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Default returns the built-in configuration.
func Default() Config {
	lo := layout.DefaultOptions()
	return Config{
		MarkerCount: control.DefaultMarkerCount,
		Content:     "Generate",
		SeedPolicy:  control.SeedPerFootprint.String(),
		Timing: Timing{
			Stagger: Duration(animation.DefaultStagger),
			Appear:  Duration(animation.DefaultAppear),
		},
		Layout: Layout{
			JitterSpread: lo.JitterSpread,
			PaddingFloor: lo.PaddingFloor,
			PaddingScale: lo.PaddingScale,
		},
		Terminal: Terminal{
			CellWidth:  8,
			CellHeight: 16,
			FPS:        60,
			BusyFor:    Duration(1500 * time.Millisecond),
		},
	}
}

// Load reads the TOML file at path on top of the defaults.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "open config %s", path)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, errors.Wrap(errors.GetCode(err), err, "config %s", path)
	}
	return cfg, nil
}

// Decode reads TOML from r on top of the defaults and validates the result.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode TOML")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if err := errors.ValidateMarkerCount(c.MarkerCount); err != nil {
		return err
	}
	if _, err := control.ParseSeedPolicy(c.SeedPolicy); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "seed_policy")
	}
	if err := errors.ValidateDuration("timing.stagger", c.Timing.Stagger.Std()); err != nil {
		return err
	}
	if err := errors.ValidateDuration("timing.appear", c.Timing.Appear.Std()); err != nil {
		return err
	}
	if err := errors.ValidateDuration("terminal.busy_for", c.Terminal.BusyFor.Std()); err != nil {
		return err
	}
	if err := c.LayoutOptions().Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "layout")
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "terminal cell size must be positive")
	}
	if c.Terminal.FPS <= 0 || c.Terminal.FPS > 240 {
		return errors.New(errors.ErrCodeInvalidConfig, "terminal.fps must be in 1..240 (got %d)", c.Terminal.FPS)
	}
	return nil
}

// AnimationTiming converts the timing section.
func (c Config) AnimationTiming() animation.Timing {
	return animation.Timing{Stagger: c.Timing.Stagger.Std(), Appear: c.Timing.Appear.Std()}
}

// LayoutOptions converts the layout section.
func (c Config) LayoutOptions() *layout.Options {
	return &layout.Options{
		JitterSpread: c.Layout.JitterSpread,
		PaddingFloor: c.Layout.PaddingFloor,
		PaddingScale: c.Layout.PaddingScale,
	}
}

// Seed returns the parsed seed policy. Validate guarantees it parses.
func (c Config) Seed() control.SeedPolicy {
	p, _ := control.ParseSeedPolicy(c.SeedPolicy)
	return p
}

// ControlOptions returns the control options described by the configuration.
func (c Config) ControlOptions() []control.Option {
	return []control.Option{
		control.WithMarkerCount(c.MarkerCount),
		control.WithContent(c.Content),
		control.WithTiming(c.AnimationTiming()),
		control.WithLayoutOptions(c.LayoutOptions()),
		control.WithSeedPolicy(c.Seed()),
	}
}
