package json

import (
	"bytes"
	encjson "encoding/json"
	"testing"

	"github.com/matzehuels/starfield/pkg/animation"
	"github.com/matzehuels/starfield/pkg/footprint"
	"github.com/matzehuels/starfield/pkg/interaction"
	"github.com/matzehuels/starfield/pkg/layout"
	"github.com/matzehuels/starfield/pkg/render"
)

func TestRender(t *testing.T) {
	fp := footprint.Footprint{Width: 100, Height: 30}
	markers := layout.Compute(fp, 3, nil)
	s := render.Scene{
		ID:        "c1",
		Label:     "Generate",
		Footprint: fp,
		State:     interaction.Hovering,
		Markers:   markers,
		Frames:    []animation.Frame{{X: 1, Y: 2, Scale: 1, Opacity: 0.9}},
	}

	data, err := Render(s)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	var out output
	if err := encjson.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.State != "hovering" {
		t.Errorf("State = %q, want hovering", out.State)
	}
	if out.Footprint != fp {
		t.Errorf("Footprint = %+v, want %+v", out.Footprint, fp)
	}
	if len(out.Markers) != 3 {
		t.Fatalf("Markers count = %d, want 3", len(out.Markers))
	}
	for i, m := range out.Markers {
		if m.Index != i {
			t.Errorf("Markers[%d].Index = %d", i, m.Index)
		}
		if m.OffsetX != markers[i].OffsetX || m.OffsetY != markers[i].OffsetY {
			t.Errorf("Markers[%d] offset = (%v, %v), want (%v, %v)", i, m.OffsetX, m.OffsetY, markers[i].OffsetX, markers[i].OffsetY)
		}
	}
	if out.Markers[0].Frame == nil || out.Markers[0].Frame.Scale != 1 {
		t.Errorf("Markers[0].Frame = %+v, want scale 1", out.Markers[0].Frame)
	}
	if out.Markers[1].Frame != nil {
		t.Errorf("Markers[1].Frame = %+v, want nil", out.Markers[1].Frame)
	}
	if out.Bounds.MinX > -50 || out.Bounds.MaxX < 50 {
		t.Errorf("Bounds = %+v, want to cover the footprint", out.Bounds)
	}
}

func TestRenderDeterministic(t *testing.T) {
	fp := footprint.Footprint{Width: 240, Height: 48}
	s := render.Scene{Footprint: fp, Markers: layout.Compute(fp, 11, nil)}

	a, err := Render(s)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	b, _ := Render(s)
	if !bytes.Equal(a, b) {
		t.Error("Render() output differs between calls")
	}
}

func TestRenderEmpty(t *testing.T) {
	data, err := Render(render.Scene{})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !bytes.Contains(data, []byte(`"markers": []`)) {
		t.Errorf("empty scene should emit an empty markers array:\n%s", data)
	}
}
