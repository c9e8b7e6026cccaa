// Package interaction tracks the hover and loading state of a control.
//
// The [Machine] has three states. Idle is initial; pointer-enter moves to
// Hovering; pointer-leave returns to Idle. An external loading signal forces
// Loading regardless of hover, and clearing it returns to Hovering if the
// pointer is still over the control, otherwise to Idle.
//
// Everything visible is derived from the state on demand: markers are shown
// only while Hovering and the busy icon only while Loading.
package interaction

// State is the interaction state of a control.
type State int

const (
	// Idle means the pointer is elsewhere and nothing is loading.
	Idle State = iota
	// Hovering means the pointer is over the control.
	Hovering
	// Loading means a busy signal is active. It overrides hover.
	Loading
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Hovering:
		return "hovering"
	case Loading:
		return "loading"
	default:
		return "unknown"
	}
}

// IconMode selects the icon presentation.
type IconMode int

const (
	// IconDefault is the regular call-to-action icon.
	IconDefault IconMode = iota
	// IconBusy is the busy indicator shown while loading.
	IconBusy
)

// String returns the lowercase icon mode name.
func (m IconMode) String() string {
	if m == IconBusy {
		return "busy"
	}
	return "default"
}

// Transition describes a state change.
type Transition struct {
	From State
	To   State
}

// Changed reports whether the transition moved to a different state.
func (t Transition) Changed() bool { return t.From != t.To }

// Machine is the interaction state machine. The zero value is Idle.
type Machine struct {
	pointerOver bool
	loading     bool
}

// New returns a machine in Idle, or in Loading when loading is true.
func New(loading bool) *Machine {
	return &Machine{loading: loading}
}

// State derives the current state.
func (m *Machine) State() State {
	switch {
	case m.loading:
		return Loading
	case m.pointerOver:
		return Hovering
	default:
		return Idle
	}
}

// PointerEnter records that the pointer is over the control.
func (m *Machine) PointerEnter() Transition {
	return m.apply(func() { m.pointerOver = true })
}

// PointerLeave records that the pointer left the control.
func (m *Machine) PointerLeave() Transition {
	return m.apply(func() { m.pointerOver = false })
}

// SetLoading sets or clears the external loading signal.
func (m *Machine) SetLoading(loading bool) Transition {
	return m.apply(func() { m.loading = loading })
}

// PointerOver reports whether the pointer is over the control, even while
// loading hides the hover state.
func (m *Machine) PointerOver() bool { return m.pointerOver }

// MarkersVisible reports whether markers should be shown.
func (m *Machine) MarkersVisible() bool { return m.State() == Hovering }

// Icon returns the icon presentation for the current state.
func (m *Machine) Icon() IconMode {
	if m.State() == Loading {
		return IconBusy
	}
	return IconDefault
}

// Pressed mirrors the loading signal for the accessibility surface.
func (m *Machine) Pressed() bool { return m.loading }

func (m *Machine) apply(fn func()) Transition {
	from := m.State()
	fn()
	return Transition{From: from, To: m.State()}
}
