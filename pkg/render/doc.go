// Package render turns a control snapshot into output artifacts.
//
// # Overview
//
// A [Scene] is a frozen view of one control at one instant: its footprint,
// marker layout, animation frames and the presentation facts a renderer needs
// (label, busy state). Renderers never talk to a live control; they receive a
// Scene built with [NewScene].
//
// Subpackages:
//   - [svg]: standalone SVG with a radial gradient per marker
//   - [json]: machine-readable dump of layout and frames
//   - [dot]: Graphviz DOT with pinned positions, rendered via go-graphviz
//
// # Coordinates
//
// All coordinates are relative to the control center, in footprint units.
// [Scene.Bounds] gives the extent of everything drawn so renderers can size
// their canvas.
package render
