package control

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/starfield/pkg/animation"
	"github.com/matzehuels/starfield/pkg/footprint"
	"github.com/matzehuels/starfield/pkg/interaction"
	"github.com/matzehuels/starfield/pkg/jitter"
	"github.com/matzehuels/starfield/pkg/layout"
	"github.com/matzehuels/starfield/pkg/observability"
)

// FallbackLabel is the accessible label used when content is not plain text.
const FallbackLabel = "Activate"

// Control is one call-to-action control instance.
type Control struct {
	id     uuid.UUID
	host   footprint.Host
	target footprint.Target

	onActivate  func()
	content     any
	loading     bool
	markerCount int
	attrs       map[string]string
	timing      animation.Timing
	layoutOpts  layout.Options
	seedPolicy  SeedPolicy
	logger      *log.Logger

	machine  *interaction.Machine
	orch     *animation.Orchestrator
	observer *footprint.Observer
	fp       footprint.Footprint
	markers  []layout.MarkerSpec
	seed     *int
}

// New creates an unmounted control measured through host under target.
// Until Mount the control uses [footprint.Default].
func New(host footprint.Host, target footprint.Target, opts ...Option) *Control {
	c := &Control{
		id:          uuid.New(),
		host:        host,
		target:      target,
		markerCount: DefaultMarkerCount,
		timing:      animation.DefaultTiming(),
		layoutOpts:  layout.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}

	c.machine = interaction.New(c.loading)
	c.orch = animation.New(max(0, c.markerCount), c.timing)
	c.fp = footprint.Default
	c.relayout()
	return c
}

// ID returns the instance id. Renderers use it to derive presentation ids.
func (c *Control) ID() uuid.UUID { return c.id }

// Target returns the element handle the control is measured under.
func (c *Control) Target() footprint.Target { return c.target }

// =============================================================================
// Lifecycle
// =============================================================================

// Mount starts observing the footprint at now. The first measurement is
// applied before Mount returns, and markers are brought in line with the
// interaction state. Mounting a mounted control does nothing.
func (c *Control) Mount(now time.Time) {
	if c.observer != nil {
		return
	}
	c.seed = nil
	c.observer = footprint.Observe(c.host, c.target, c.onFootprint)
	c.orch.SetVisible(c.machine.MarkersVisible(), now)
	c.logger.Debug("mounted", "target", c.target, "id", c.id, "width", c.fp.Width, "height", c.fp.Height)
}

// Unmount stops observing the footprint at now. The pointer is considered
// gone and all markers collapse. It is safe to call more than once.
func (c *Control) Unmount(now time.Time) {
	if c.observer == nil {
		return
	}
	c.observer.Close()
	c.observer = nil
	c.machine.PointerLeave()
	c.orch.SetVisible(false, now)
	c.logger.Debug("unmounted", "target", c.target, "id", c.id)
}

// Mounted reports whether the control is observing its footprint.
func (c *Control) Mounted() bool { return c.observer != nil }

func (c *Control) onFootprint(fp footprint.Footprint) {
	c.fp = fp
	if c.seedPolicy == SeedAtMount && c.seed == nil {
		s := jitter.SeedFrom(fp.Width, fp.Height)
		c.seed = &s
	}
	c.relayout()
}

// relayout recomputes the whole marker sequence and swaps it in.
func (c *Control) relayout() {
	start := time.Now()
	opts := c.layoutOpts
	if c.seed != nil {
		opts.Seed = c.seed
	}
	c.markers = layout.Compute(c.fp, c.markerCount, &opts)

	observability.Layout().OnLayoutComputed(len(c.markers), c.fp.Width, c.fp.Height, time.Since(start))
	c.logger.Debug("relayout", "target", c.target, "markers", len(c.markers), "width", c.fp.Width, "height", c.fp.Height)
}

// =============================================================================
// Events
// =============================================================================

// PointerEnter handles the pointer entering the control at now.
func (c *Control) PointerEnter(now time.Time) {
	c.apply(c.machine.PointerEnter(), now)
}

// PointerLeave handles the pointer leaving the control at now.
func (c *Control) PointerLeave(now time.Time) {
	c.apply(c.machine.PointerLeave(), now)
}

// SetLoading sets or clears the loading signal at now.
func (c *Control) SetLoading(loading bool, now time.Time) {
	c.apply(c.machine.SetLoading(loading), now)
}

// Activate handles an activation gesture. It invokes the activation callback
// and returns true unless the control is loading or unmounted.
func (c *Control) Activate() bool {
	accepted := c.Mounted() && c.machine.State() != interaction.Loading
	observability.Interaction().OnActivate(accepted)
	if !accepted {
		c.logger.Debug("activation ignored", "target", c.target, "state", c.machine.State(), "mounted", c.Mounted())
		return false
	}
	if c.onActivate != nil {
		c.onActivate()
	}
	return true
}

func (c *Control) apply(tr interaction.Transition, now time.Time) {
	if !tr.Changed() {
		return
	}
	observability.Interaction().OnTransition(tr.From.String(), tr.To.String())
	c.logger.Debug("transition", "target", c.target, "from", tr.From, "to", tr.To)
	// Unmounted controls keep their state; Mount replays it.
	if c.Mounted() {
		c.orch.SetVisible(c.machine.MarkersVisible(), now)
	}
}

// =============================================================================
// Derived State
// =============================================================================

// Footprint returns the current footprint.
func (c *Control) Footprint() footprint.Footprint { return c.fp }

// Markers returns a copy of the current marker sequence.
func (c *Control) Markers() []layout.MarkerSpec { return slices.Clone(c.markers) }

// MarkerCount returns the configured marker count.
func (c *Control) MarkerCount() int { return max(0, c.markerCount) }

// State returns the interaction state.
func (c *Control) State() interaction.State { return c.machine.State() }

// MarkersVisible reports whether markers should be shown.
func (c *Control) MarkersVisible() bool { return c.machine.MarkersVisible() }

// Icon returns the icon presentation.
func (c *Control) Icon() interaction.IconMode { return c.machine.Icon() }

// Pressed mirrors the loading signal for assistive technology.
func (c *Control) Pressed() bool { return c.machine.Pressed() }

// Timing returns the animation timing in effect.
func (c *Control) Timing() animation.Timing { return c.orch.Timing() }

// Frames returns the animation frame of every marker at now.
func (c *Control) Frames(now time.Time) []animation.Frame {
	return c.orch.Frames(c.markers, now)
}

// Animating reports whether a transition is still running at now.
func (c *Control) Animating(now time.Time) bool { return c.orch.Animating(now) }

// Content returns the content the control was created with.
func (c *Control) Content() any { return c.content }

// Label returns the accessible label: the content when it is non-blank text,
// otherwise [FallbackLabel].
func (c *Control) Label() string {
	var s string
	switch v := c.content.(type) {
	case string:
		s = v
	case fmt.Stringer:
		s = v.String()
	}
	if strings.TrimSpace(s) == "" {
		return FallbackLabel
	}
	return s
}

// Attributes returns a copy of the passthrough attributes.
func (c *Control) Attributes() map[string]string { return maps.Clone(c.attrs) }
