// Package pkg provides the libraries behind starfield, the star ring of a
// call-to-action control.
//
// # Overview
//
// A call-to-action control shows a ring of small stars that burst out of its
// center while the pointer hovers over it. The pkg directory is organized
// leaf first:
//
//  1. [jitter] - deterministic pseudo-random values per marker index
//  2. [footprint] - the control's measured size and the observer that tracks it
//  3. [layout] - marker angles, distances and offsets for a footprint
//  4. [interaction] - idle, hovering and loading states
//  5. [animation] - staggered appear and instant collapse transitions
//  6. [control] - one control instance wiring the above together
//
// Supporting packages:
//
//   - [render] and its subpackages turn a control snapshot into SVG, JSON,
//     DOT or PNG
//   - [pipeline] renders snapshots without a live host
//   - [config] loads TOML configuration
//   - [errors] and [observability] carry error codes and hooks
//
// # Architecture
//
// The data flow for one control:
//
//	host size change
//	       ↓
//	[footprint.Observer] (sanitize, drop duplicates)
//	       ↓
//	[layout.Compute] (seeded by [jitter])
//	       ↓
//	pointer/loading events → [interaction.Machine]
//	       ↓
//	[animation.Orchestrator] → frames
//
// # Quick Start
//
//	bus := footprint.NewBus()
//	ctl := control.New(bus, "cta", control.WithContent("Generate"))
//	ctl.Mount(time.Now())
//	defer func() { ctl.Unmount(time.Now()) }()
//
//	bus.Publish("cta", footprint.Footprint{Width: 160, Height: 40})
//	ctl.PointerEnter(time.Now())
//	frames := ctl.Frames(time.Now().Add(time.Second))
package pkg
