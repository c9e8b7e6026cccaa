package layout

import (
	"math"

	"github.com/matzehuels/starfield/pkg/errors"
	"github.com/matzehuels/starfield/pkg/footprint"
	"github.com/matzehuels/starfield/pkg/jitter"
)

// MarkerSpec is the computed placement of one marker.
type MarkerSpec struct {
	Index     int     `json:"index"`
	BaseAngle float64 `json:"base_angle"`
	AngleDeg  float64 `json:"angle"`
	Rand      float64 `json:"rand"`
	Distance  float64 `json:"distance"`
	OffsetX   float64 `json:"x"`
	OffsetY   float64 `json:"y"`
}

// Options configures [Compute]. Start from [DefaultOptions] when overriding
// single fields: JitterSpread and PaddingScale are used as given, so zero
// disables them. A PaddingFloor <= 0 falls back to the default floor.
type Options struct {
	// JitterSpread is the full width in degrees of the angular jitter window.
	// Default: 30 (±15°).
	JitterSpread float64

	// PaddingFloor is the minimum padding between the ring and a marker, and
	// the minimum of the random padding range. Default: 12.
	PaddingFloor float64

	// PaddingScale scales the random padding range with the ring radius.
	// Default: 0.6.
	PaddingScale float64

	// Seed overrides the footprint-derived jitter seed when non-nil.
	Seed *int
}

var defaultOpts = Options{
	JitterSpread: 30,
	PaddingFloor: 12,
	PaddingScale: 0.6,
}

// DefaultOptions returns the default layout options.
func DefaultOptions() Options {
	return defaultOpts
}

// Validate checks that every field is finite, non-negative and that the
// padding floor is positive.
func (o Options) Validate() error {
	if err := errors.ValidateDimension("jitter_spread", o.JitterSpread); err != nil {
		return err
	}
	if err := errors.ValidateDimension("padding_scale", o.PaddingScale); err != nil {
		return err
	}
	if err := errors.ValidateDimension("padding_floor", o.PaddingFloor); err != nil {
		return err
	}
	if o.PaddingFloor == 0 {
		return errors.New(errors.ErrCodeInvalidDimension, "padding_floor must be positive")
	}
	return nil
}

// Compute returns the markers for fp, ordered by index. Pass nil for opts to
// use defaults. count <= 0 yields an empty slice.
func Compute(fp footprint.Footprint, count int, opts *Options) []MarkerSpec {
	if opts == nil {
		opts = &defaultOpts
	}
	if count <= 0 {
		return []MarkerSpec{}
	}

	fp = footprint.Sanitize(fp)
	seed := jitter.SeedFrom(fp.Width, fp.Height)
	if opts.Seed != nil {
		seed = *opts.Seed
	}

	radius := fp.Max() / 2
	spread := max(0, opts.JitterSpread)
	floor := opts.PaddingFloor
	if !(floor > 0) {
		floor = defaultOpts.PaddingFloor
	}
	scale := max(0, opts.PaddingScale)

	markers := make([]MarkerSpec, count)
	for i := range markers {
		base := float64(i) * 360 / float64(count)
		r := jitter.Value(i, seed)
		angle := base + (r-0.5)*spread
		extra := floor + r*max(floor, radius*scale)
		distance := radius + extra
		rad := angle * math.Pi / 180

		markers[i] = MarkerSpec{
			Index:     i,
			BaseAngle: base,
			AngleDeg:  angle,
			Rand:      r,
			Distance:  distance,
			OffsetX:   math.Cos(rad) * distance,
			OffsetY:   math.Sin(rad) * distance,
		}
	}
	return markers
}

// Rect is an axis-aligned box centered on the footprint origin.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the horizontal span of the box.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical span of the box.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Bounds returns the smallest box containing the footprint and every marker
// offset.
func Bounds(fp footprint.Footprint, markers []MarkerSpec) Rect {
	fp = footprint.Sanitize(fp)
	r := Rect{MinX: -fp.Width / 2, MinY: -fp.Height / 2, MaxX: fp.Width / 2, MaxY: fp.Height / 2}
	for _, m := range markers {
		r.MinX = min(r.MinX, m.OffsetX)
		r.MinY = min(r.MinY, m.OffsetY)
		r.MaxX = max(r.MaxX, m.OffsetX)
		r.MaxY = max(r.MaxY, m.OffsetY)
	}
	return r
}
