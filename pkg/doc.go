// Package pkg provides the core libraries for figgrid figure geometry.
//
// # Overview
//
// figgrid turns a figure description (total width, column list, row count,
// per-row aspect ratios, margins and spacing in inches) into absolute panel
// sizes, the derived figure height and the relative spacing fractions a
// ratio-based grid expects. The pkg directory is organized as:
//
//  1. [figure/layout] - the layout engine (Compute, ToRelative, ToAbsolute)
//  2. [figure/grid] - cell rectangles, subplot parameters, guides and labels
//  3. [preset] - named requests, built in or loaded from TOML
//  4. [pipeline] - orchestration (preset → request → layout → grid)
//  5. [sink] - JSON and TOML output
//
// Supporting packages: [errors] (structured error codes), [observability]
// (hooks), [buildinfo] (version metadata).
//
// # Data Flow
//
//	preset name + overrides
//	         ↓
//	    [pipeline] Options.Request
//	         ↓
//	    [figure/layout] Compute
//	         ↓
//	    [figure/grid] New
//	         ↓
//	    [sink] JSON / TOML / text
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/figgrid/pkg/figure/layout"
//	)
//
//	req := layout.DefaultRequest()
//	req.Columns = []layout.Column{layout.Weight(2), layout.Weight(1), layout.Colorbar()}
//	res, err := layout.Compute(req)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Width, res.Height, res.ColumnSpacing)
//
// [figure/layout]: github.com/matzehuels/figgrid/pkg/figure/layout
// [figure/grid]: github.com/matzehuels/figgrid/pkg/figure/grid
// [preset]: github.com/matzehuels/figgrid/pkg/preset
// [pipeline]: github.com/matzehuels/figgrid/pkg/pipeline
// [sink]: github.com/matzehuels/figgrid/pkg/sink
// [errors]: github.com/matzehuels/figgrid/pkg/errors
// [observability]: github.com/matzehuels/figgrid/pkg/observability
// [buildinfo]: github.com/matzehuels/figgrid/pkg/buildinfo
package pkg
