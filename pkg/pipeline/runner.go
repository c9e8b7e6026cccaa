package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/starfield/pkg/control"
	"github.com/matzehuels/starfield/pkg/footprint"
	"github.com/matzehuels/starfield/pkg/render"
)

// target is the element handle pipeline controls are measured under.
const target footprint.Target = "pipeline"

// epoch anchors the snapshot timeline.
var epoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Runner executes pipeline runs. It holds no per-run state and may be shared
// between goroutines.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger uses the default logger.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the snapshot and render stages.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Snapshot
	start := time.Now()
	scene := r.Snapshot(opts)
	result.Scene = scene
	result.Stats.SnapshotTime = time.Since(start)
	result.Stats.MarkerCount = len(scene.Markers)
	for _, f := range scene.Frames {
		if f.Scale > 0 && f.Opacity > 0 {
			result.Stats.Visible++
		}
	}

	r.Logger.Info("captured scene",
		"state", scene.State,
		"markers", result.Stats.MarkerCount,
		"visible", result.Stats.Visible,
		"at", scene.Elapsed)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Render
	start = time.Now()
	artifacts, err := Render(ctx, scene, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(start)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Snapshot builds and mounts a control for opts, applies the requested state
// at the start of the timeline and captures it at opts.At. The control is
// unmounted before Snapshot returns. Defaults must already be set.
func (r *Runner) Snapshot(opts Options) render.Scene {
	ctl := control.New(footprint.Static{Footprint: opts.Footprint()}, target, controlOptions(opts)...)
	ctl.Mount(epoch)
	defer ctl.Unmount(epoch)

	if opts.Loading {
		ctl.SetLoading(true, epoch)
	}
	if opts.Hover {
		ctl.PointerEnter(epoch)
	}

	at := opts.At
	if at == 0 {
		at = opts.SettleTime()
	}
	scene := render.NewScene(ctl, epoch.Add(at))
	scene.Elapsed = at
	if opts.ID != "" {
		scene.ID = opts.ID
	}
	return scene
}

func controlOptions(opts Options) []control.Option {
	o := []control.Option{
		control.WithMarkerCount(opts.MarkerCount),
		control.WithSeedPolicy(opts.SeedPolicy),
		control.WithLayoutOptions(opts.Layout),
		control.WithLogger(opts.Logger),
	}
	if opts.Content != "" {
		o = append(o, control.WithContent(opts.Content))
	}
	if opts.Timing != nil {
		o = append(o, control.WithTiming(*opts.Timing))
	}
	return o
}
