package footprint

import (
	"sync"

	"github.com/matzehuels/starfield/pkg/observability"
)

// Observer follows the footprint of one target for the lifetime of a control.
// It is driven from a single goroutine; only Close may be called repeatedly.
type Observer struct {
	target      Target
	onChange    func(Footprint)
	current     Footprint
	unsubscribe func()
	closeOnce   sync.Once
	closed      bool
}

// Observe measures target synchronously, reports that measurement to onChange
// before returning, and then reports every later change delivered by host.
// A nil host behaves like a host whose target is never attached.
func Observe(host Host, target Target, onChange func(Footprint)) *Observer {
	o := &Observer{target: target, onChange: onChange, current: Default}

	if host != nil {
		if fp, ok := host.Measure(target); ok {
			o.current = Sanitize(fp)
		}
	}
	o.emit()

	if host != nil {
		o.unsubscribe = host.Subscribe(target, o.update)
		observability.Observer().OnSubscribe(string(target))
	}
	return o
}

// Current returns the latest footprint.
func (o *Observer) Current() Footprint {
	return o.current
}

// Target returns the observed target.
func (o *Observer) Target() Target {
	return o.target
}

// Closed reports whether Close has been called.
func (o *Observer) Closed() bool {
	return o.closed
}

// Close releases the subscription. It is safe to call more than once; the
// host's unsubscribe function runs exactly once.
func (o *Observer) Close() {
	o.closeOnce.Do(func() {
		o.closed = true
		if o.unsubscribe != nil {
			o.unsubscribe()
			observability.Observer().OnUnsubscribe(string(o.target))
		}
	})
}

func (o *Observer) update(fp Footprint) {
	if o.closed {
		return
	}
	fp = Sanitize(fp)
	if fp == o.current {
		return
	}
	o.current = fp
	o.emit()
}

func (o *Observer) emit() {
	if o.onChange != nil {
		o.onChange(o.current)
	}
}
