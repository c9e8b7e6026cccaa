package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/starfield/pkg/render"
)

const (
	// starRadius is the radius of a marker at scale 1.
	starRadius = 6.0
	margin     = 10.0
	cornerR    = 6.0
	fontFamily = "system-ui, sans-serif"
)

// Option configures [Render].
type Option func(*renderer)

type renderer struct {
	prefix string
	guides bool
	label  *string
}

// WithIDPrefix sets the prefix of generated element ids.
func WithIDPrefix(p string) Option { return func(r *renderer) { r.prefix = p } }

// WithGuides draws a dashed ray from the center to each marker's offset.
func WithGuides() Option { return func(r *renderer) { r.guides = true } }

// WithLabel replaces the scene label.
func WithLabel(s string) Option { return func(r *renderer) { r.label = &s } }

// GradientID returns the gradient id of marker i under prefix.
func GradientID(prefix string, i int) string {
	return fmt.Sprintf("%s-star-%d", prefix, i)
}

// Render draws s. Markers with zero scale or opacity are omitted from the
// body, but every marker keeps its gradient definition.
func Render(s render.Scene, opts ...Option) []byte {
	r := renderer{prefix: s.ID}
	for _, opt := range opts {
		opt(&r)
	}
	if r.prefix == "" {
		r.prefix = "starfield"
	}
	label := s.Label
	if r.label != nil {
		label = *r.label
	}

	b := s.Bounds()
	minX, minY := b.MinX-starRadius*2-margin, b.MinY-starRadius*2-margin
	w, h := b.Width()+2*(starRadius*2+margin), b.Height()+2*(starRadius*2+margin)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.2f %.2f %.2f %.2f" width="%.0f" height="%.0f">`+"\n",
		minX, minY, w, h, w, h)

	renderDefs(&buf, &r, len(s.Markers))
	if r.guides {
		renderGuides(&buf, s)
	}
	renderControl(&buf, s, label)
	renderStars(&buf, &r, s)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderDefs(buf *bytes.Buffer, r *renderer, n int) {
	if n == 0 {
		return
	}
	buf.WriteString("  <defs>\n")
	for i := range n {
		fmt.Fprintf(buf, `    <radialGradient id="%s">`+"\n", escape(GradientID(r.prefix, i)))
		buf.WriteString(`      <stop offset="0%" stop-color="#ffffff"/>` + "\n")
		buf.WriteString(`      <stop offset="45%" stop-color="#ffe680"/>` + "\n")
		buf.WriteString(`      <stop offset="100%" stop-color="#ffb300" stop-opacity="0"/>` + "\n")
		buf.WriteString("    </radialGradient>\n")
	}
	buf.WriteString("  </defs>\n")
}

func renderGuides(buf *bytes.Buffer, s render.Scene) {
	buf.WriteString(`  <g class="guides" stroke="#9e9e9e" stroke-width="0.5" stroke-dasharray="2 2" fill="none">` + "\n")
	fmt.Fprintf(buf, `    <ellipse cx="0" cy="0" rx="%.2f" ry="%.2f"/>`+"\n", s.Footprint.Max()/2, s.Footprint.Max()/2)
	for _, m := range s.Markers {
		fmt.Fprintf(buf, `    <line x1="0" y1="0" x2="%.2f" y2="%.2f"/>`+"\n", m.OffsetX, m.OffsetY)
	}
	buf.WriteString("  </g>\n")
}

func renderControl(buf *bytes.Buffer, s render.Scene, label string) {
	w, h := s.Footprint.Width, s.Footprint.Height
	fmt.Fprintf(buf, `  <g class="control" data-state="%s" aria-busy="%t">`+"\n", s.State, s.Loading())
	fmt.Fprintf(buf, `    <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.1f" fill="#1e1e2e" stroke="#cba6f7" stroke-width="1.5"/>`+"\n",
		-w/2, -h/2, w, h, cornerR)
	text := label
	if s.Loading() {
		text = "… " + label
	}
	fmt.Fprintf(buf, `    <text x="0" y="0" text-anchor="middle" dominant-baseline="central" font-family="%s" font-size="%.1f" fill="#cdd6f4">%s</text>`+"\n",
		fontFamily, fontSize(h), escape(text))
	buf.WriteString("  </g>\n")
}

func renderStars(buf *bytes.Buffer, r *renderer, s render.Scene) {
	n := min(len(s.Markers), len(s.Frames))
	if n == 0 {
		return
	}
	buf.WriteString(`  <g class="stars" pointer-events="none">` + "\n")
	for i := range n {
		f := s.Frames[i]
		if f.Scale <= 0 || f.Opacity <= 0 {
			continue
		}
		fmt.Fprintf(buf, `    <circle class="star" cx="%.2f" cy="%.2f" r="%.2f" opacity="%.3f" fill="url(#%s)"/>`+"\n",
			f.X, f.Y, starRadius*f.Scale, f.Opacity, escape(GradientID(r.prefix, s.Markers[i].Index)))
	}
	buf.WriteString("  </g>\n")
}

func fontSize(h float64) float64 {
	return max(8, min(h*0.45, 24))
}

func escape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
