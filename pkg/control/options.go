package control

import (
	"maps"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/starfield/pkg/animation"
	"github.com/matzehuels/starfield/pkg/errors"
	"github.com/matzehuels/starfield/pkg/layout"
)

// DefaultMarkerCount is the number of markers when none is configured.
const DefaultMarkerCount = 11

// SeedPolicy selects how the layout jitter is seeded.
type SeedPolicy int

const (
	// SeedPerFootprint reseeds from every new footprint. Markers reshuffle
	// slightly while the control is resized.
	SeedPerFootprint SeedPolicy = iota
	// SeedAtMount seeds once from the first footprint measured after Mount,
	// so markers track resizes smoothly.
	SeedAtMount
)

// String returns the configuration name of the policy.
func (p SeedPolicy) String() string {
	if p == SeedAtMount {
		return "mount"
	}
	return "footprint"
}

// ParseSeedPolicy parses "footprint" or "mount". An empty string selects
// SeedPerFootprint.
func ParseSeedPolicy(s string) (SeedPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "footprint":
		return SeedPerFootprint, nil
	case "mount":
		return SeedAtMount, nil
	default:
		return SeedPerFootprint, errors.New(errors.ErrCodeInvalidInput, "invalid seed policy: %q (must be 'footprint' or 'mount')", s)
	}
}

// Option configures a Control.
type Option func(*Control)

// WithOnActivate sets the callback invoked for each accepted activation.
func WithOnActivate(fn func()) Option { return func(c *Control) { c.onActivate = fn } }

// WithContent sets the control's content. Plain text also becomes the label.
func WithContent(content any) Option { return func(c *Control) { c.content = content } }

// WithLoading sets the initial loading signal.
func WithLoading(loading bool) Option { return func(c *Control) { c.loading = loading } }

// WithMarkerCount sets the number of markers. Values <= 0 disable markers.
func WithMarkerCount(n int) Option { return func(c *Control) { c.markerCount = n } }

// WithAttributes sets passthrough attributes for the rendering collaborator.
func WithAttributes(attrs map[string]string) Option {
	return func(c *Control) { c.attrs = maps.Clone(attrs) }
}

// WithTiming sets the animation timing.
func WithTiming(t animation.Timing) Option { return func(c *Control) { c.timing = t } }

// WithLayoutOptions sets the layout options. A nil value keeps the defaults.
func WithLayoutOptions(opts *layout.Options) Option {
	return func(c *Control) {
		if opts != nil {
			c.layoutOpts = *opts
		}
	}
}

// WithSeedPolicy sets the jitter seed policy.
func WithSeedPolicy(p SeedPolicy) Option { return func(c *Control) { c.seedPolicy = p } }

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option { return func(c *Control) { c.logger = l } }
