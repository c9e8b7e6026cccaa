package interaction

import "testing"

func TestMachineTransitions(t *testing.T) {
	tests := []struct {
		name    string
		steps   func(m *Machine) Transition
		want    State
		changed bool
	}{
		{
			name:    "enter from idle",
			steps:   func(m *Machine) Transition { return m.PointerEnter() },
			want:    Hovering,
			changed: true,
		},
		{
			name: "leave from hovering",
			steps: func(m *Machine) Transition {
				m.PointerEnter()
				return m.PointerLeave()
			},
			want:    Idle,
			changed: true,
		},
		{
			name: "loading overrides hover",
			steps: func(m *Machine) Transition {
				m.PointerEnter()
				return m.SetLoading(true)
			},
			want:    Loading,
			changed: true,
		},
		{
			name: "enter while loading stays loading",
			steps: func(m *Machine) Transition {
				m.SetLoading(true)
				return m.PointerEnter()
			},
			want:    Loading,
			changed: false,
		},
		{
			name: "leave while loading stays loading",
			steps: func(m *Machine) Transition {
				m.PointerEnter()
				m.SetLoading(true)
				return m.PointerLeave()
			},
			want:    Loading,
			changed: false,
		},
		{
			name: "clear loading with pointer over",
			steps: func(m *Machine) Transition {
				m.PointerEnter()
				m.SetLoading(true)
				return m.SetLoading(false)
			},
			want:    Hovering,
			changed: true,
		},
		{
			name: "clear loading after pointer left",
			steps: func(m *Machine) Transition {
				m.PointerEnter()
				m.SetLoading(true)
				m.PointerLeave()
				return m.SetLoading(false)
			},
			want:    Idle,
			changed: true,
		},
		{
			name:    "repeated leave is a no-op",
			steps:   func(m *Machine) Transition { return m.PointerLeave() },
			want:    Idle,
			changed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(false)
			tr := tt.steps(m)
			if m.State() != tt.want {
				t.Errorf("State() = %v, want %v", m.State(), tt.want)
			}
			if tr.To != tt.want {
				t.Errorf("Transition.To = %v, want %v", tr.To, tt.want)
			}
			if tr.Changed() != tt.changed {
				t.Errorf("Changed() = %v, want %v", tr.Changed(), tt.changed)
			}
		})
	}
}

func TestLoadingPrecedence(t *testing.T) {
	m := New(true)
	m.PointerEnter()

	if m.MarkersVisible() {
		t.Error("MarkersVisible() = true while loading, want false")
	}
	if m.Icon() != IconBusy {
		t.Errorf("Icon() = %v, want busy", m.Icon())
	}
	if !m.Pressed() {
		t.Error("Pressed() = false while loading, want true")
	}

	m.SetLoading(false)
	if !m.MarkersVisible() {
		t.Error("MarkersVisible() = false after loading cleared with pointer over, want true")
	}
	if m.Icon() != IconDefault {
		t.Errorf("Icon() = %v, want default", m.Icon())
	}
}

func TestStateString(t *testing.T) {
	for s, want := range map[State]string{Idle: "idle", Hovering: "hovering", Loading: "loading", State(9): "unknown"} {
		if got := s.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", s, got, want)
		}
	}
}
