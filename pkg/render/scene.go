package render

import (
	"time"

	"github.com/matzehuels/starfield/pkg/animation"
	"github.com/matzehuels/starfield/pkg/control"
	"github.com/matzehuels/starfield/pkg/footprint"
	"github.com/matzehuels/starfield/pkg/interaction"
	"github.com/matzehuels/starfield/pkg/layout"
)

// Scene is a snapshot of a control for rendering.
type Scene struct {
	// ID prefixes presentation-only identifiers such as gradient ids.
	ID        string
	Label     string
	Footprint footprint.Footprint
	State     interaction.State
	Icon      interaction.IconMode
	Markers   []layout.MarkerSpec
	Frames    []animation.Frame
	// Elapsed is the time since the snapshot's reference instant.
	Elapsed time.Duration
}

// NewScene snapshots c at now. Elapsed is left zero.
func NewScene(c *control.Control, now time.Time) Scene {
	return Scene{
		ID:        c.ID().String(),
		Label:     c.Label(),
		Footprint: c.Footprint(),
		State:     c.State(),
		Icon:      c.Icon(),
		Markers:   c.Markers(),
		Frames:    c.Frames(now),
	}
}

// Loading reports whether the scene shows the busy state.
func (s Scene) Loading() bool { return s.State == interaction.Loading }

// Bounds returns the extent of the footprint and every marker offset.
// Markers are included at their final offset whether or not they are shown,
// so the canvas does not change size during an animation.
func (s Scene) Bounds() layout.Rect {
	return layout.Bounds(s.Footprint, s.Markers)
}
