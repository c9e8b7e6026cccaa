package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/starfield/pkg/pipeline"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "json", []string{"json"}},
		{"multiple formats", "svg,json,dot", []string{"svg", "json", "dot"}},
		{"spaces trimmed", "svg, png", []string{"svg", "png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Errorf("parseFormats(%q) length = %d, want %d", tt.input, len(got), len(tt.want))
				return
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		wantErr bool
	}{
		{"valid svg", []string{"svg"}, false},
		{"valid all", []string{"svg", "json", "dot", "png", "dot.svg"}, false},
		{"pdf unsupported", []string{"pdf"}, true},
		{"mixed valid invalid", []string{"svg", "invalid"}, true},
		{"empty slice", []string{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFormats(tt.formats)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output string
		want   string
	}{
		{"", "starfield"},
		{"out/hero", "out/hero"},
		{"out/hero.svg", "out/hero"},
		{"hero.json", "hero"},
		{"out/hero.dot.svg", "out/hero"},
		{"hero.dot", "hero"},
		{"hero.v2", "hero.v2"},
	}
	for _, tt := range tests {
		if got := basePath(tt.output); got != tt.want {
			t.Errorf("basePath(%q) = %q, want %q", tt.output, got, tt.want)
		}
	}
}

func TestRunRender(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	opts := c.pipelineOptions()
	opts.Hover = true
	opts.ID = "test"
	opts.Formats = []string{pipeline.FormatSVG, pipeline.FormatJSON, pipeline.FormatDOT}

	base := filepath.Join(t.TempDir(), "nested", "hero")
	var out bytes.Buffer
	if err := c.runRender(context.Background(), &out, opts, base+".svg"); err != nil {
		t.Fatalf("runRender() error: %v", err)
	}

	for _, f := range opts.Formats {
		data, err := os.ReadFile(base + "." + f)
		if err != nil {
			t.Errorf("missing %s artifact: %v", f, err)
			continue
		}
		if len(data) == 0 {
			t.Errorf("%s artifact is empty", f)
		}
	}
	if !strings.Contains(out.String(), "11 markers") {
		t.Errorf("summary missing marker count:\n%s", out.String())
	}
}

func TestRunLayout(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)

	var out bytes.Buffer
	if err := c.runLayout(context.Background(), &out, layoutOpts{width: 100, height: 30, markers: 3}); err != nil {
		t.Fatalf("runLayout() error: %v", err)
	}
	for _, want := range []string{"Distance", "86.07", "71.49", "86.90", "footprint"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("layout table missing %q:\n%s", want, out.String())
		}
	}

	out.Reset()
	if err := c.runLayout(context.Background(), &out, layoutOpts{width: 100, height: 30, markers: 2, asJSON: true}); err != nil {
		t.Fatalf("runLayout(json) error: %v", err)
	}
	if !strings.HasPrefix(out.String(), "[") || !strings.Contains(out.String(), `"distance"`) {
		t.Errorf("unexpected JSON output:\n%s", out.String())
	}

	if err := c.runLayout(context.Background(), &out, layoutOpts{width: -1, height: 30}); err == nil {
		t.Error("negative width should fail")
	}
}
