// Package svg renders a [render.Scene] as a standalone SVG document.
//
// # Overview
//
// The document contains the control outline, its label and one star per
// marker drawn at the marker's current animation frame. Each star fills with
// its own radial gradient whose id is derived from the scene id, so several
// controls can be inlined into one page without id collisions.
//
// # Usage
//
//	scene := render.NewScene(ctl, time.Now())
//	doc := svg.Render(scene, svg.WithGuides())
//
// # Options
//
//   - [WithIDPrefix]: override the gradient id prefix (default: scene id)
//   - [WithGuides]: draw dashed rays to every marker's final offset
//   - [WithLabel]: override the label text
package svg
