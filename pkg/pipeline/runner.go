package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/figgrid/pkg/errors"
	"github.com/matzehuels/figgrid/pkg/figure/grid"
	"github.com/matzehuels/figgrid/pkg/figure/layout"
	"github.com/matzehuels/figgrid/pkg/observability"
	"github.com/matzehuels/figgrid/pkg/preset"
)

// Runner resolves options against a preset registry and computes layouts.
// Both CLI and API use this to avoid duplicating request assembly.
//
// The Runner holds no per-request state, so multiple goroutines can safely
// use the same Runner with different options.
type Runner struct {
	Presets *preset.Registry
	Logger  *log.Logger
}

// NewRunner creates a runner.
// If presets is nil, the built-in presets are used.
// If logger is nil, log.Default() is used.
func NewRunner(presets *preset.Registry, logger *log.Logger) *Runner {
	if presets == nil {
		presets = preset.Builtin()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Presets: presets,
		Logger:  logger,
	}
}

// Execute resolves opts and computes the layout and grid.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)
	opts.setDefaults()

	name := opts.PresetName()
	req, err := opts.Request(r.Presets)
	if err != nil {
		return nil, err
	}

	hooks := observability.Layout()
	hooks.OnLayoutStart(ctx, name, req.Rows, len(req.Columns))

	start := time.Now()
	res, g, err := compute(req)
	elapsed := time.Since(start)
	hooks.OnLayoutComplete(ctx, name, elapsed, err)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	opts.Logger.Debug("computed layout",
		"preset", name,
		"width", res.Width,
		"height", res.Height,
		"cells", res.Rows()*res.Cols(),
		"duration", elapsed)

	return &Result{
		Preset:  name,
		Request: req,
		Layout:  res,
		Grid:    g,
		Stats: Stats{
			Rows:        res.Rows(),
			Cols:        res.Cols(),
			ComputeTime: elapsed,
		},
	}, nil
}

// Preset computes a registered preset without overrides.
func (r *Runner) Preset(ctx context.Context, name string) (*Result, error) {
	return r.Execute(ctx, Options{Preset: name})
}

func compute(req layout.Request) (layout.Result, *grid.Grid, error) {
	res, err := layout.Compute(req)
	if err != nil {
		return layout.Result{}, nil, err
	}
	g, err := grid.New(res)
	if err != nil {
		return layout.Result{}, nil, err
	}
	return res, g, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// LoadPresets returns the built-in presets extended with the presets in path.
// A missing file is ignored when optional is set, which is how the default
// config location is treated.
func LoadPresets(ctx context.Context, path string, optional bool, logger *log.Logger) (*preset.Registry, error) {
	if logger == nil {
		logger = log.Default()
	}
	reg := preset.Builtin()
	if path == "" {
		return reg, nil
	}

	extra, err := preset.LoadFile(path)
	if err != nil && optional && errors.Is(err, errors.ErrCodeFileNotFound) {
		logger.Debug("no preset file", "path", path)
		return reg, nil
	}
	observability.Layout().OnPresetsLoaded(ctx, path, len(extra), err)
	if err != nil {
		return nil, fmt.Errorf("load presets: %w", err)
	}

	reg, err = reg.Extend(extra...)
	if err != nil {
		return nil, fmt.Errorf("load presets: %w", err)
	}
	logger.Debug("loaded presets", "path", path, "count", len(extra))
	return reg, nil
}
