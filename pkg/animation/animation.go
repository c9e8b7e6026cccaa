package animation

import (
	"time"

	"github.com/matzehuels/starfield/pkg/layout"
)

// Default timing values.
const (
	DefaultStagger = 40 * time.Millisecond
	DefaultAppear  = 600 * time.Millisecond
)

// Keyframe values of the appear transition, at eased progress 0, 0.5 and 1.
var (
	scaleKeys   = [3]float64{0, 1.4, 1}
	opacityKeys = [3]float64{0, 1, 0.9}
)

// Timing configures transition timing.
type Timing struct {
	// Stagger is the extra delay added per marker index on appear.
	Stagger time.Duration `json:"stagger"`
	// Appear is the duration of one marker's appear transition.
	Appear time.Duration `json:"appear"`
}

// DefaultTiming returns the default timing.
func DefaultTiming() Timing {
	return Timing{Stagger: DefaultStagger, Appear: DefaultAppear}
}

// Frame is the rendered state of one marker at an instant. X and Y are
// relative to the control center.
type Frame struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Scale   float64 `json:"scale"`
	Opacity float64 `json:"opacity"`
}

// Kind distinguishes the two transitions.
type Kind int

const (
	// Collapse snaps a marker back to the center.
	Collapse Kind = iota
	// Appear moves a marker out to its offset.
	Appear
)

// Transition is the in-flight transition of one marker.
type Transition struct {
	Kind     Kind
	Start    time.Time
	Duration time.Duration
}

// End returns when the transition completes.
func (t Transition) End() time.Time { return t.Start.Add(t.Duration) }

// Orchestrator drives the transitions of a fixed number of markers.
type Orchestrator struct {
	timing      Timing
	visible     bool
	transitions []Transition
}

// New creates an orchestrator for count markers with every marker collapsed.
// Negative timing values are treated as zero.
func New(count int, timing Timing) *Orchestrator {
	timing.Stagger = max(0, timing.Stagger)
	timing.Appear = max(0, timing.Appear)
	return &Orchestrator{
		timing:      timing,
		transitions: make([]Transition, max(0, count)),
	}
}

// Timing returns the configured timing.
func (o *Orchestrator) Timing() Timing { return o.timing }

// Visible reports the current visibility.
func (o *Orchestrator) Visible() bool { return o.visible }

// Delay returns the appear delay of marker index.
func (o *Orchestrator) Delay(index int) time.Duration {
	return time.Duration(index) * o.timing.Stagger
}

// Transition returns the current transition of marker index.
func (o *Orchestrator) Transition(index int) Transition {
	return o.transitions[index]
}

// SetVisible records a visibility change at now and replaces every marker's
// transition. It reports false, and changes nothing, when visible equals the
// current visibility.
func (o *Orchestrator) SetVisible(visible bool, now time.Time) bool {
	if visible == o.visible {
		return false
	}
	o.visible = visible
	for i := range o.transitions {
		if visible {
			o.transitions[i] = Transition{Kind: Appear, Start: now.Add(o.Delay(i)), Duration: o.timing.Appear}
		} else {
			o.transitions[i] = Transition{Kind: Collapse, Start: now}
		}
	}
	return true
}

// Animating reports whether any appear transition is unfinished at now.
func (o *Orchestrator) Animating(now time.Time) bool {
	if !o.visible {
		return false
	}
	for _, t := range o.transitions {
		if now.Before(t.End()) {
			return true
		}
	}
	return false
}

// Frame returns the frame of marker m at now.
func (o *Orchestrator) Frame(m layout.MarkerSpec, now time.Time) Frame {
	if m.Index < 0 || m.Index >= len(o.transitions) {
		return Frame{}
	}
	t := o.transitions[m.Index]
	if t.Kind == Collapse || now.Before(t.Start) {
		return Frame{}
	}

	p := 1.0
	if t.Duration > 0 {
		p = min(1, float64(now.Sub(t.Start))/float64(t.Duration))
	}
	e := EaseOut(p)

	return Frame{
		X:       m.OffsetX * e,
		Y:       m.OffsetY * e,
		Scale:   keyframe(scaleKeys, e),
		Opacity: keyframe(opacityKeys, e),
	}
}

// Frames returns the frames of every marker at now, one entry per marker in
// specs order.
func (o *Orchestrator) Frames(specs []layout.MarkerSpec, now time.Time) []Frame {
	frames := make([]Frame, len(specs))
	for i, s := range specs {
		frames[i] = o.Frame(s, now)
	}
	return frames
}

// EaseOut is a cubic ease-out curve on [0, 1].
func EaseOut(p float64) float64 {
	p = max(0, min(1, p))
	q := 1 - p
	return 1 - q*q*q
}

// keyframe interpolates linearly between three keys spaced at 0, 0.5 and 1.
func keyframe(keys [3]float64, e float64) float64 {
	if e <= 0.5 {
		return keys[0] + (keys[1]-keys[0])*(e/0.5)
	}
	return keys[1] + (keys[2]-keys[1])*((e-0.5)/0.5)
}
