// Package control assembles the star-field engine into one call-to-action
// control instance.
//
// # Overview
//
// A [Control] owns exactly one footprint, one interaction state machine, one
// animation orchestrator and the marker sequence derived from them. Nothing is
// shared between controls.
//
//	host := footprint.NewBus()
//	c := control.New(host, "cta",
//	    control.WithContent("Generate"),
//	    control.WithOnActivate(func() { go generate() }),
//	)
//	c.Mount(time.Now())
//	defer func() { c.Unmount(time.Now()) }()
//
//	c.PointerEnter(time.Now())
//	frames := c.Frames(time.Now())
//
// # Data Flow
//
// Footprint changes arrive from the [footprint.Host]; each one recomputes the
// whole marker sequence before anything else can read it. Pointer and loading
// events drive the [interaction.Machine]; whenever the derived marker
// visibility changes the [animation.Orchestrator] restarts its transitions.
// While unmounted only the state machine moves; Mount brings the markers back
// in line with it and Unmount collapses them and forgets the pointer.
// Frames are computed on demand from the current markers and the time the
// caller passes in.
//
// # Threading
//
// A control is not safe for concurrent use. Drive it from the goroutine that
// owns the rendering loop.
package control
