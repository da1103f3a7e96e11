// Package layout computes figure geometry for multi-panel grids.
//
// A figure is described by intent in absolute units (inches, or any other
// consistent physical unit): the total width, an ordered list of columns, the
// number of rows, a margin applied evenly on all four sides, and the absolute
// gaps between columns and between rows. Columns are either content columns
// with a relative weight or colorbar columns with a fixed absolute width.
//
// [Compute] turns that intent into absolute column widths, absolute row
// heights, the derived figure height, and the relative spacing fractions a
// ratio-based grid primitive expects. The margin and the gaps therefore stay
// the same no matter how large the figure becomes.
//
// # Row Heights
//
// Height follows from width. A row with an [Aspect] override takes the width of
// the named column times the ratio. A row without one is square with respect to
// the leftmost content column. Only one override per row is allowed.
//
// # Relative Spacing
//
// Grid primitives express spacing as a fraction of the average cell size rather
// than as an absolute length. [ToRelative] and [ToAbsolute] convert between the
// two and are exact inverses of each other:
//
//	f, _ := layout.ToRelative(0.25, 4.5, 2) // absolute gap → fraction
//	s, _ := layout.ToAbsolute(f, 4.5, 2)    // s == 0.25
//
// # Usage
//
//	req := layout.DefaultRequest()
//	req.Columns = []layout.Column{layout.Weight(1), layout.Weight(1), layout.Colorbar()}
//	req.Aspects = []layout.Aspect{{Row: 0, Col: 1, Ratio: 0.5}}
//	res, err := layout.Compute(req)
//	if errors.IsConfiguration(err) {
//	    // the request cannot produce a consistent layout
//	}
//
// Compute is a pure function of its input and safe for concurrent use.
package layout
