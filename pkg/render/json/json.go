// Package json exports a [render.Scene] as a JSON document for external tools
// and snapshot tests.
package json

import (
	encjson "encoding/json"

	"github.com/matzehuels/starfield/pkg/animation"
	"github.com/matzehuels/starfield/pkg/footprint"
	"github.com/matzehuels/starfield/pkg/layout"
	"github.com/matzehuels/starfield/pkg/render"
)

type output struct {
	ID        string              `json:"id,omitempty"`
	Label     string              `json:"label"`
	State     string              `json:"state"`
	Icon      string              `json:"icon"`
	Footprint footprint.Footprint `json:"footprint"`
	Bounds    bounds              `json:"bounds"`
	Markers   []marker            `json:"markers"`
}

type bounds struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

type marker struct {
	layout.MarkerSpec
	Frame *animation.Frame `json:"frame,omitempty"`
}

// Render returns s as indented JSON. Markers keep their index order and carry
// their frame when the scene has one for them. Output depends only on s.
func Render(s render.Scene) ([]byte, error) {
	b := s.Bounds()
	out := output{
		ID:        s.ID,
		Label:     s.Label,
		State:     s.State.String(),
		Icon:      s.Icon.String(),
		Footprint: s.Footprint,
		Bounds:    bounds{MinX: b.MinX, MinY: b.MinY, MaxX: b.MaxX, MaxY: b.MaxY},
		Markers:   make([]marker, 0, len(s.Markers)),
	}
	for i, m := range s.Markers {
		jm := marker{MarkerSpec: m}
		if i < len(s.Frames) {
			f := s.Frames[i]
			jm.Frame = &f
		}
		out.Markers = append(out.Markers, jm)
	}
	return encjson.MarshalIndent(out, "", "  ")
}
