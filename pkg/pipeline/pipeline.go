// Package pipeline assembles layout requests and runs the layout computation.
//
// This package is the single entry point used by the CLI and the HTTP API. It
// turns user-facing [Options] (a preset name plus individual overrides) into a
// [layout.Request], computes the layout, and places the grid cells. By
// centralizing this logic, both entry points apply presets and overrides the
// same way.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(presets, logger)
//	margin := 0.5
//	opts := pipeline.Options{
//	    Preset:  "2d",
//	    Width:   layout.WidthDouble,
//	    Margin:  &margin,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Layout.Height)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/figgrid/pkg/figure/grid"
	"github.com/matzehuels/figgrid/pkg/figure/layout"
	"github.com/matzehuels/figgrid/pkg/preset"
)

// =============================================================================
// Output Formats
// =============================================================================

// Format constants for output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatTOML = "toml"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
	FormatTOML: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: text, json, toml)", format)
	}
	return nil
}

// =============================================================================
// Options - Request Assembly
// =============================================================================

// Options describes a layout as a preset plus overrides.
// This struct supports JSON serialization for API requests. Zero values of
// the non-pointer fields mean "keep the preset's value"; the pointer fields
// distinguish an explicit zero from an omitted value.
type Options struct {
	Preset        string             `json:"preset,omitempty"`
	Width         layout.FigureWidth `json:"width,omitempty"`
	Rows          int                `json:"rows,omitempty"`
	Columns       []layout.Column    `json:"columns,omitempty"`
	Margin        *float64           `json:"margin,omitempty"`
	ColumnSpacing *float64           `json:"column_spacing,omitempty"`
	RowSpacing    *float64           `json:"row_spacing,omitempty"`
	ColorbarWidth *float64           `json:"colorbar_width,omitempty"`
	Aspects       []layout.Aspect    `json:"aspects,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// PresetName returns the requested preset, or the default preset.
func (o *Options) PresetName() string {
	if o.Preset == "" {
		return preset.DefaultName
	}
	return o.Preset
}

// Request resolves the options against reg. A nil registry means the
// built-in presets.
func (o *Options) Request(reg *preset.Registry) (layout.Request, error) {
	if reg == nil {
		reg = preset.Builtin()
	}
	p, err := reg.Get(o.PresetName())
	if err != nil {
		return layout.Request{}, err
	}
	req := p.Request

	if o.Width != 0 {
		req.Width = float64(o.Width)
	}
	if o.Rows != 0 {
		req.Rows = o.Rows
	}
	if o.Columns != nil {
		req.Columns = append([]layout.Column(nil), o.Columns...)
	}
	if o.Margin != nil {
		req.Margin = *o.Margin
	}
	if o.ColumnSpacing != nil {
		req.ColumnSpacing = *o.ColumnSpacing
	}
	if o.RowSpacing != nil {
		req.RowSpacing = *o.RowSpacing
	}
	if o.ColorbarWidth != nil {
		req.ColorbarWidth = *o.ColorbarWidth
	}
	if o.Aspects != nil {
		req.Aspects = append([]layout.Aspect(nil), o.Aspects...)
	} else if o.Rows != 0 || o.Columns != nil {
		req.Aspects = fitAspects(req.Aspects, req.Rows, req.Columns)
	}
	return req, nil
}

// fitAspects adapts preset aspects to an overridden shape. Aspects for rows
// past the last row are dropped; an aspect whose column is gone or is now a
// colorbar is measured against the leftmost content column instead.
func fitAspects(aspects []layout.Aspect, rows int, cols []layout.Column) []layout.Aspect {
	first := -1
	for i, c := range cols {
		if c.IsContent() {
			first = i
			break
		}
	}

	out := make([]layout.Aspect, 0, len(aspects))
	for _, a := range aspects {
		if a.Row < 0 || a.Row >= rows {
			continue
		}
		if a.Col < 0 || a.Col >= len(cols) || !cols[a.Col].IsContent() {
			if first < 0 {
				continue
			}
			a.Col = first
		}
		out = append(out, a)
	}
	return out
}

// setDefaults fills runtime defaults.
func (o *Options) setDefaults() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Float returns a pointer to v, for the optional fields of Options.
func Float(v float64) *float64 { return &v }

// =============================================================================
// Results
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Preset is the preset the request started from.
	Preset string

	// Request is the fully resolved request.
	Request layout.Request

	// Layout holds the absolute sizes and relative spacing.
	Layout layout.Result

	// Grid places the cells of Layout on the figure.
	Grid *grid.Grid

	// Stats contains timing information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Rows        int
	Cols        int
	ComputeTime time.Duration
}
