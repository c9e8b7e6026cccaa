// Package footprint tracks the rendered size of a control.
//
// # Overview
//
// A [Footprint] is the measured width and height of a control. The [Observer]
// keeps the current footprint of one target up to date: it measures once,
// synchronously, when created (so the first layout never starts from a
// placeholder when a real size is available) and then follows every size change
// delivered by its [Host] until it is closed.
//
// # Hosts
//
// A [Host] is the resize-observation primitive of the environment that renders
// the control. Two implementations are provided:
//
//   - [Bus]: an in-process publish/subscribe host. Renderers publish the size
//     they measured; observers receive it.
//   - [Static]: a host with one fixed size that never changes, used for
//     one-shot snapshots.
//
// # Failure Handling
//
// Measurement never fails. An unattached target yields [Default], and
// non-finite or negative dimensions are clamped to zero by [Sanitize].
//
// # Usage
//
//	bus := footprint.NewBus()
//	obs := footprint.Observe(bus, "cta", func(fp footprint.Footprint) {
//	    markers = layout.Compute(fp, 11, nil)
//	})
//	defer obs.Close()
//
//	bus.Publish("cta", footprint.Footprint{Width: 160, Height: 48})
package footprint
