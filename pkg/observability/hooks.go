// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about layout computation, interaction transitions, and
// footprint observation.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, never by libraries, so the core packages stay
// free of any observability framework.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    observability.SetInteractionHooks(&myInteractionHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	start := time.Now()
//	markers := layout.Compute(fp, n, nil)
//	observability.Layout().OnLayoutComputed(len(markers), fp.Width, fp.Height, time.Since(start))
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from the star-field layout engine.
type LayoutHooks interface {
	// OnLayoutComputed records a full recomputation of the marker sequence.
	OnLayoutComputed(markers int, width, height float64, duration time.Duration)
}

// =============================================================================
// Interaction Hooks
// =============================================================================

// InteractionHooks receives events from controls.
type InteractionHooks interface {
	// OnTransition records an interaction state change.
	OnTransition(from, to string)

	// OnActivate records an activation gesture and whether it was accepted.
	OnActivate(accepted bool)
}

// =============================================================================
// Observer Hooks
// =============================================================================

// ObserverHooks receives events from footprint observers.
type ObserverHooks interface {
	// OnSubscribe records a resize subscription for target.
	OnSubscribe(target string)

	// OnUnsubscribe records the release of a resize subscription.
	OnUnsubscribe(target string)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnLayoutComputed(int, float64, float64, time.Duration) {}

// NoopInteractionHooks is a no-op implementation of InteractionHooks.
type NoopInteractionHooks struct{}

func (NoopInteractionHooks) OnTransition(string, string) {}
func (NoopInteractionHooks) OnActivate(bool)             {}

// NoopObserverHooks is a no-op implementation of ObserverHooks.
type NoopObserverHooks struct{}

func (NoopObserverHooks) OnSubscribe(string)   {}
func (NoopObserverHooks) OnUnsubscribe(string) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	layoutHooks      LayoutHooks      = NoopLayoutHooks{}
	interactionHooks InteractionHooks = NoopInteractionHooks{}
	observerHooks    ObserverHooks    = NoopObserverHooks{}
	hooksMu          sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// SetInteractionHooks registers custom interaction hooks.
// This should be called once at application startup.
func SetInteractionHooks(h InteractionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		interactionHooks = h
	}
}

// SetObserverHooks registers custom observer hooks.
// This should be called once at application startup.
func SetObserverHooks(h ObserverHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		observerHooks = h
	}
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Interaction returns the registered interaction hooks.
func Interaction() InteractionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return interactionHooks
}

// Observer returns the registered observer hooks.
func Observer() ObserverHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return observerHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	layoutHooks = NoopLayoutHooks{}
	interactionHooks = NoopInteractionHooks{}
	observerHooks = NoopObserverHooks{}
}
