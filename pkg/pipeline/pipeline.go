// Package pipeline renders a control snapshot to artifacts without a live
// host.
//
// The pipeline has two stages:
//
//  1. Snapshot: build a control on a fixed footprint, mount it, apply the
//     requested hover and loading state and capture a [render.Scene] at a
//     point on the animation timeline
//  2. Render: turn the scene into each requested format (SVG, JSON, DOT, PNG)
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Width:       160,
//	    Height:      40,
//	    MarkerCount: 11,
//	    Hover:       true,
//	    Formats:     []string{"svg", "json"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// The snapshot clock starts at a fixed instant, so identical options produce
// identical artifacts apart from the control id (set [Options.ID] to pin it).
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/starfield/pkg/animation"
	"github.com/matzehuels/starfield/pkg/control"
	"github.com/matzehuels/starfield/pkg/errors"
	"github.com/matzehuels/starfield/pkg/footprint"
	"github.com/matzehuels/starfield/pkg/layout"
	"github.com/matzehuels/starfield/pkg/render"
)

// =============================================================================
// Default Values
// =============================================================================

// Default footprint used when both dimensions are zero.
var (
	DefaultWidth  = footprint.Default.Width
	DefaultHeight = footprint.Default.Height
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatPNG  = "png"

	// FormatGraphSVG is the Graphviz drawing of the DOT graph, as opposed to
	// the animated-style SVG of FormatSVG.
	FormatGraphSVG = "dot.svg"
)

// ValidFormats lists the supported output formats.
var ValidFormats = []string{FormatSVG, FormatJSON, FormatDOT, FormatPNG, FormatGraphSVG}

// =============================================================================
// Options
// =============================================================================

// Options configures a pipeline run.
type Options struct {
	// Footprint
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// Control. MarkerCount zero disables markers.
	MarkerCount int                `json:"marker_count"`
	Content     string             `json:"content,omitempty"`
	ID          string             `json:"id,omitempty"` // overrides the control id in renderer output
	SeedPolicy  control.SeedPolicy `json:"seed_policy,omitempty"`
	Timing      *animation.Timing  `json:"timing,omitempty"`
	Layout      *layout.Options    `json:"layout,omitempty"`

	// State applied at the start of the timeline.
	Hover   bool `json:"hover,omitempty"`
	Loading bool `json:"loading,omitempty"`

	// At is the snapshot time after the state was applied. Zero means once
	// every transition has finished.
	At time.Duration `json:"at,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Guides  bool     `json:"guides,omitempty"`

	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Scene is the snapshot every artifact was rendered from.
	Scene render.Scene

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	MarkerCount  int
	Visible      int
	SnapshotTime time.Duration
	RenderTime   time.Duration
}

// SetDefaults fills unset fields.
func (o *Options) SetDefaults() {
	if o.Width == 0 && o.Height == 0 {
		o.Width, o.Height = DefaultWidth, DefaultHeight
	}
	if o.Timing == nil {
		t := animation.DefaultTiming()
		o.Timing = &t
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks option values. Call after [Options.SetDefaults].
func (o *Options) Validate() error {
	if err := errors.ValidateDimension("width", o.Width); err != nil {
		return err
	}
	if err := errors.ValidateDimension("height", o.Height); err != nil {
		return err
	}
	if err := errors.ValidateMarkerCount(o.MarkerCount); err != nil {
		return err
	}
	if err := errors.ValidateDuration("at", o.At); err != nil {
		return err
	}
	if o.Timing != nil {
		if err := errors.ValidateDuration("stagger", o.Timing.Stagger); err != nil {
			return err
		}
		if err := errors.ValidateDuration("appear", o.Timing.Appear); err != nil {
			return err
		}
	}
	if o.Layout != nil {
		if err := o.Layout.Validate(); err != nil {
			return err
		}
	}
	return errors.ValidateFormats(o.Formats, ValidFormats...)
}

// Footprint returns the configured footprint.
func (o *Options) Footprint() footprint.Footprint {
	return footprint.Footprint{Width: o.Width, Height: o.Height}
}

// SettleTime returns when the last marker finishes appearing.
func (o *Options) SettleTime() time.Duration {
	t := animation.DefaultTiming()
	if o.Timing != nil {
		t = *o.Timing
	}
	return t.Stagger*time.Duration(max(0, o.MarkerCount-1)) + t.Appear
}
