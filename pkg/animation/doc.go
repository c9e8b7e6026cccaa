// Package animation turns marker placements and a visibility flag into
// per-marker frames over time.
//
// # Transitions
//
// When markers become visible every marker gets an appear transition that
// starts Index*Stagger after the visibility change and lasts Appear. During
// it the marker travels from the control center to its offset, its scale runs
// 0 → 1.4 → 1 and its opacity 0 → 1 → 0.9, all on an ease-out curve.
//
// When markers become hidden they collapse at once, without stagger, back to
// the center with zero scale and opacity. A later appear replaces the collapse
// outright; the last visibility wins.
//
// # Time
//
// The [Orchestrator] owns no timers. Callers pass the current time to
// [Orchestrator.SetVisible] and [Orchestrator.Frames], and use
// [Orchestrator.Animating] to decide whether another frame is needed. This
// keeps timing testable with fixed instants.
package animation
