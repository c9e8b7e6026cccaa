// Package layout computes where the decorative markers of a control sit.
//
// # Overview
//
// [Compute] distributes N markers on a ring around a [footprint.Footprint].
// Marker i starts from the evenly spaced base angle i*360/N and is rotated by
// up to ±JitterSpread/2 degrees using the deterministic [jitter] source, so the
// ring looks hand-placed while remaining identical for a given footprint.
//
// The ring radius is half the larger footprint dimension. Each marker is
// pushed further out by a padding of PaddingFloor + rand*max(PaddingFloor,
// radius*PaddingScale), which grows with the control and never drops below
// PaddingFloor, so even a zero-sized control gets a visible ring.
//
// # Coordinates
//
// Offsets are relative to the footprint center, in the same units as the
// footprint. Angles are in degrees, measured from the positive X axis with Y
// growing downwards (screen coordinates).
//
// # Recompute, Don't Patch
//
// The radius and padding depend on the whole footprint and the seed is derived
// from it, so the sequence is always recomputed wholesale. Callers should treat
// the returned slice as immutable.
package layout
