package footprint

import (
	"math"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   Footprint
		want Footprint
	}{
		{"valid", Footprint{100, 30}, Footprint{100, 30}},
		{"negative", Footprint{-1, 20}, Footprint{0, 20}},
		{"nan", Footprint{math.NaN(), math.NaN()}, Footprint{0, 0}},
		{"inf", Footprint{math.Inf(1), math.Inf(-1)}, Footprint{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestObserveInitialMeasurement(t *testing.T) {
	bus := NewBus()
	bus.Publish("cta", Footprint{160, 48})

	var got []Footprint
	obs := Observe(bus, "cta", func(fp Footprint) { got = append(got, fp) })
	defer obs.Close()

	if len(got) != 1 || got[0] != (Footprint{160, 48}) {
		t.Fatalf("initial emissions = %v, want [{160 48}]", got)
	}
	if obs.Current() != (Footprint{160, 48}) {
		t.Errorf("Current() = %v, want {160 48}", obs.Current())
	}
}

func TestObserveUnattachedFallsBackToDefault(t *testing.T) {
	var got Footprint
	obs := Observe(NewBus(), "missing", func(fp Footprint) { got = fp })
	defer obs.Close()

	if got != Default {
		t.Errorf("initial footprint = %v, want %v", got, Default)
	}

	nilHost := Observe(nil, "missing", nil)
	if nilHost.Current() != Default {
		t.Errorf("nil host Current() = %v, want %v", nilHost.Current(), Default)
	}
	nilHost.Close()
}

func TestObserveEmitsOnEveryChange(t *testing.T) {
	bus := NewBus()
	var got []Footprint
	obs := Observe(bus, "cta", func(fp Footprint) { got = append(got, fp) })
	defer obs.Close()

	bus.Publish("cta", Footprint{120, 30})
	bus.Publish("cta", Footprint{120, 30}) // unchanged, dropped
	bus.Publish("cta", Footprint{120, 30.5})
	bus.Publish("other", Footprint{1, 1})

	want := []Footprint{Default, {120, 30}, {120, 30.5}}
	if len(got) != len(want) {
		t.Fatalf("emissions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("emission[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestObserveSanitizesUpdates(t *testing.T) {
	bus := NewBus()
	var last Footprint
	obs := Observe(bus, "cta", func(fp Footprint) { last = fp })
	defer obs.Close()

	bus.Publish("cta", Footprint{math.NaN(), -3})
	if last != (Footprint{0, 0}) {
		t.Errorf("last = %v, want {0 0}", last)
	}
}

func TestObserverCloseUnsubscribes(t *testing.T) {
	bus := NewBus()
	calls := 0
	obs := Observe(bus, "cta", func(Footprint) { calls++ })

	if n := bus.Subscribers("cta"); n != 1 {
		t.Fatalf("Subscribers = %d, want 1", n)
	}

	obs.Close()
	obs.Close()

	if n := bus.Subscribers("cta"); n != 0 {
		t.Errorf("Subscribers after Close = %d, want 0", n)
	}
	if !obs.Closed() {
		t.Error("Closed() = false, want true")
	}

	bus.Publish("cta", Footprint{300, 90})
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (initial measurement only)", calls)
	}
}

func TestObserverCloseRunsUnsubscribeOnce(t *testing.T) {
	host := &countingHost{}
	obs := Observe(host, "cta", nil)
	obs.Close()
	obs.Close()
	if host.unsubscribed != 1 {
		t.Errorf("unsubscribe calls = %d, want 1", host.unsubscribed)
	}
}

func TestBusDetach(t *testing.T) {
	bus := NewBus()
	bus.Publish("cta", Footprint{10, 10})
	bus.Detach("cta")
	if _, ok := bus.Measure("cta"); ok {
		t.Error("Measure after Detach should report not attached")
	}
}

func TestStaticHost(t *testing.T) {
	host := Static{Footprint: Footprint{200, 60}}
	obs := Observe(host, "snapshot", nil)
	defer obs.Close()
	if obs.Current() != (Footprint{200, 60}) {
		t.Errorf("Current() = %v, want {200 60}", obs.Current())
	}
}

type countingHost struct {
	unsubscribed int
}

func (h *countingHost) Measure(Target) (Footprint, bool) { return Footprint{}, false }

func (h *countingHost) Subscribe(Target, func(Footprint)) func() {
	return func() { h.unsubscribed++ }
}
