package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/starfield/pkg/errors"
	"github.com/matzehuels/starfield/pkg/pipeline"
)

// defaultOutput is the output base path when --output is not given.
const defaultOutput = "starfield"

// renderCommand creates the render command for writing control snapshots.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
	)
	// Flags are bound to this struct; config-derived values are applied in
	// RunE for every flag the user did not set.
	opts := pipeline.Options{Width: pipeline.DefaultWidth, Height: pipeline.DefaultHeight}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a snapshot of the control to SVG, JSON, DOT or PNG",
		Long: `Render a snapshot of the control to SVG, JSON, DOT or PNG.

The control is mounted on a fixed footprint, the requested state is applied at
the start of the animation timeline and the scene is captured --at later (by
default once every marker has finished appearing). One file is written per
format: <output>.<format>.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(formatsStr)
			if err := validateFormats(formats); err != nil {
				return err
			}
			merged := c.pipelineOptions()
			merged.Width, merged.Height = opts.Width, opts.Height
			merged.Hover, merged.Loading = opts.Hover, opts.Loading
			merged.At, merged.Guides, merged.ID = opts.At, opts.Guides, opts.ID
			merged.Formats = formats
			if cmd.Flags().Changed("markers") {
				merged.MarkerCount = opts.MarkerCount
			}
			if cmd.Flags().Changed("content") {
				merged.Content = opts.Content
			}
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), merged, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", defaultOutput, "output base path")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, dot, png, dot.svg (comma-separated)")
	cmd.Flags().Float64Var(&opts.Width, "width", opts.Width, "footprint width")
	cmd.Flags().Float64Var(&opts.Height, "height", opts.Height, "footprint height")
	cmd.Flags().IntVarP(&opts.MarkerCount, "markers", "n", 0, "marker count (default from config)")
	cmd.Flags().StringVar(&opts.Content, "content", "", "button label (default from config)")
	cmd.Flags().BoolVar(&opts.Hover, "hover", true, "render with the pointer over the control")
	cmd.Flags().BoolVar(&opts.Loading, "loading", false, "render in the loading state")
	cmd.Flags().DurationVar(&opts.At, "at", 0, "snapshot time after the state change (0 = settled)")
	cmd.Flags().BoolVar(&opts.Guides, "guides", false, "draw guide rays in SVG output")
	cmd.Flags().StringVar(&opts.ID, "id", "", "element id prefix (default: random control id)")

	return cmd
}

// runRender executes the pipeline and writes one file per artifact.
func (c *CLI) runRender(ctx context.Context, w io.Writer, opts pipeline.Options, output string) error {
	logger := loggerFromContext(ctx)

	base := basePath(output)
	if err := errors.ValidatePath(base); err != nil {
		return err
	}

	prog := newProgress(logger)
	prog.footprint(opts.Footprint(), opts.MarkerCount)
	result, err := pipeline.NewRunner(logger).Execute(ctx, opts)
	if err != nil {
		return err
	}

	paths := make([]string, 0, len(opts.Formats))
	for _, format := range opts.Formats {
		path := base + "." + format
		if err := writeArtifact(path, result.Artifacts[format]); err != nil {
			return err
		}
		paths = append(paths, path)
	}
	prog.done("Rendered snapshot", "artifacts", len(paths), "state", result.Scene.State)

	printSuccess(w, "Snapshot at %s", result.Scene.Elapsed.Round(time.Millisecond))
	for _, p := range paths {
		printFile(w, p)
	}
	printStats(w, result.Stats.MarkerCount, result.Stats.Visible, result.Scene.State.String())
	printNextStep(w, "Try it live", appName+" demo")
	return nil
}

// basePath strips the longest known format extension from output.
func basePath(output string) string {
	if output == "" {
		return defaultOutput
	}
	ext := ""
	for _, f := range pipeline.ValidFormats {
		if s := "." + f; strings.HasSuffix(output, s) && len(s) > len(ext) {
			ext = s
		}
	}
	return strings.TrimSuffix(output, ext)
}

// writeArtifact writes data to path, creating parent directories.
func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}
