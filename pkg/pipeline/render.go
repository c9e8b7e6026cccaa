package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/starfield/pkg/errors"
	"github.com/matzehuels/starfield/pkg/render"
	"github.com/matzehuels/starfield/pkg/render/dot"
	"github.com/matzehuels/starfield/pkg/render/json"
	"github.com/matzehuels/starfield/pkg/render/svg"
)

// Render generates output artifacts for s in the requested formats.
func Render(ctx context.Context, s render.Scene, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	var svgOpts []svg.Option
	if opts.Guides {
		svgOpts = append(svgOpts, svg.WithGuides())
	}

	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = svg.Render(s, svgOpts...)
		case FormatJSON:
			data, err = json.Render(s)
		case FormatDOT:
			data = []byte(dot.ToDOT(s))
		case FormatGraphSVG:
			data, err = dot.RenderSVG(ctx, dot.ToDOT(s))
		case FormatPNG:
			data, err = dot.RenderPNG(ctx, dot.ToDOT(s))
		default:
			return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
