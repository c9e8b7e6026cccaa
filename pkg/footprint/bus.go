package footprint

import (
	"slices"
	"sync"
)

// Bus is an in-process Host. Renderers Publish the size they measured and
// every subscriber of that target is notified in subscription order.
type Bus struct {
	mu   sync.Mutex
	last map[Target]Footprint
	subs map[Target][]subscription
	next int
}

type subscription struct {
	id int
	fn func(Footprint)
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		last: make(map[Target]Footprint),
		subs: make(map[Target][]subscription),
	}
}

// Measure returns the last footprint published for target.
func (b *Bus) Measure(target Target) (Footprint, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fp, ok := b.last[target]
	return fp, ok
}

// Subscribe registers onChange for target. The returned function removes the
// subscription; calling it again has no effect.
func (b *Bus) Subscribe(target Target, onChange func(Footprint)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.next++
	id := b.next
	b.subs[target] = append(b.subs[target], subscription{id: id, fn: onChange})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.subs[target] = slices.DeleteFunc(b.subs[target], func(s subscription) bool {
			return s.id == id
		})
		if len(b.subs[target]) == 0 {
			delete(b.subs, target)
		}
	}
}

// Publish records fp as the current size of target and notifies subscribers.
// Callbacks run outside the lock so they may publish or unsubscribe.
func (b *Bus) Publish(target Target, fp Footprint) {
	b.mu.Lock()
	b.last[target] = fp
	subs := slices.Clone(b.subs[target])
	b.mu.Unlock()

	for _, s := range subs {
		s.fn(fp)
	}
}

// Detach forgets the size of target, so later measurements report it as not
// attached. Subscriptions are kept.
func (b *Bus) Detach(target Target) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.last, target)
}

// Subscribers returns the number of live subscriptions for target.
func (b *Bus) Subscribers(target Target) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[target])
}

// Static is a Host whose targets all have one fixed size that never changes.
type Static struct {
	Footprint Footprint
}

// Measure always returns the fixed footprint.
func (s Static) Measure(Target) (Footprint, bool) {
	return s.Footprint, true
}

// Subscribe never calls onChange.
func (s Static) Subscribe(Target, func(Footprint)) func() {
	return func() {}
}

var (
	_ Host = (*Bus)(nil)
	_ Host = Static{}
)
