package dot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/starfield/pkg/errors"
	"github.com/matzehuels/starfield/pkg/render"
)

// pointsPerInch converts scene units to Graphviz node sizes.
const pointsPerInch = 72.0

// ToDOT converts a scene to DOT. Scene y grows downward, DOT y upward, so y
// coordinates are negated. Markers that are not currently drawn are left out.
func ToDOT(s render.Scene) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"Helvetica\", fixedsize=true];\n")
	buf.WriteString("  edge [style=dotted, color=\"#9e9e9e\"];\n")
	buf.WriteString("\n")

	fp := s.Footprint
	fmt.Fprintf(&buf, "  %q [shape=box, style=\"rounded,filled\", fillcolor=\"#1e1e2e\", fontcolor=\"#cdd6f4\", label=%q, width=%.3f, height=%.3f, pos=\"0,0!\"];\n",
		"control", controlLabel(s), fp.Width/pointsPerInch, fp.Height/pointsPerInch)

	var stars []string
	for i := range min(len(s.Markers), len(s.Frames)) {
		f := s.Frames[i]
		if f.Scale <= 0 || f.Opacity <= 0 {
			continue
		}
		id := fmt.Sprintf("star-%d", s.Markers[i].Index)
		size := 12 * f.Scale / pointsPerInch
		fmt.Fprintf(&buf, "  %q [shape=star, style=filled, fillcolor=\"#ffd54f%02x\", color=\"#ffb300\", label=\"\", width=%.3f, height=%.3f, pos=\"%.2f,%.2f!\"];\n",
			id, alpha(f.Opacity), size, size, f.X, -f.Y)
		stars = append(stars, id)
	}

	if len(stars) > 0 {
		buf.WriteString("\n")
	}
	for _, id := range stars {
		fmt.Fprintf(&buf, "  %q -- %q;\n", "control", id)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func controlLabel(s render.Scene) string {
	if s.Loading() {
		return "… " + s.Label
	}
	return s.Label
}

func alpha(opacity float64) int {
	return int(max(0, min(opacity, 1))*255 + 0.5)
}

// RenderSVG renders a DOT graph to SVG using Graphviz. Unlike the svg
// package this draws the neato graph: the control box, pinned stars and the
// edges between them.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.PNG)
}

func renderFormat(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
	}
	return buf.Bytes(), nil
}
