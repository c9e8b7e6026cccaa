// Package dot renders a [render.Scene] as a Graphviz graph.
//
// # Overview
//
// [ToDOT] emits an undirected neato graph in which every node is pinned
// (pos="x,y!") at its scene coordinates: the control as a box at the origin
// and each shown marker as a star linked to it. Graphviz only draws the
// pinned geometry, which makes the output useful for comparing layouts in
// any DOT viewer.
//
// [RenderSVG] and [RenderPNG] run the graph through the embedded Graphviz
// from go-graphviz, so no system installation is required.
package dot
