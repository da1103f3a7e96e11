// Package grid places the cells of a computed layout on the figure.
//
// The placement follows the ratio-based grid model: the area inside the
// margins is split into equal slots, separators are a relative fraction of the
// average slot, and slots are then resized by their width or height ratios.
// Feeding a [layout.Result] through this model reproduces its absolute column
// widths, row heights and gaps, which is what makes the relative spacing
// fractions useful to callers that build their own grid.
package grid

import (
	"github.com/matzehuels/figgrid/pkg/errors"
	"github.com/matzehuels/figgrid/pkg/figure/layout"
)

// Grid holds the cell edges of a layout, in inches from the lower-left corner.
type Grid struct {
	Width, Height float64
	Margin        float64

	lefts, rights []float64 // per column
	bottoms, tops []float64 // per row, row 0 at the top
}

// New places the cells of res.
func New(res layout.Result) (*Grid, error) {
	if res.Rows() == 0 || res.Cols() == 0 {
		return nil, errors.Configuration("layout has no cells")
	}
	g := &Grid{Width: res.Width, Height: res.Height, Margin: res.Margin}

	offsets, err := positions(res.ColumnWidths, res.ColumnSpacing, res.InnerWidth())
	if err != nil {
		return nil, err
	}
	g.lefts = make([]float64, res.Cols())
	g.rights = make([]float64, res.Cols())
	for i := range res.ColumnWidths {
		g.lefts[i] = res.Margin + offsets[2*i]
		g.rights[i] = res.Margin + offsets[2*i+1]
	}

	offsets, err = positions(res.RowHeights, res.RowSpacing, res.InnerHeight())
	if err != nil {
		return nil, err
	}
	top := res.Height - res.Margin
	g.tops = make([]float64, res.Rows())
	g.bottoms = make([]float64, res.Rows())
	for i := range res.RowHeights {
		g.tops[i] = top - offsets[2*i]
		g.bottoms[i] = top - offsets[2*i+1]
	}
	return g, nil
}

// positions returns the start and end offset of every slot along one axis,
// interleaved, measured from the inner edge of the margin.
func positions(ratios []float64, rel, total float64) ([]float64, error) {
	n := len(ratios)
	sep, err := layout.ToAbsolute(rel, total, n)
	if err != nil {
		return nil, err
	}
	cell := total / (float64(n) + rel*float64(n-1))

	var ratioSum float64
	for _, r := range ratios {
		ratioSum += r
	}
	if !(ratioSum > 0) {
		return nil, errors.Configuration("slot sizes must sum to a positive value")
	}
	norm := cell * float64(n) / ratioSum

	out := make([]float64, 0, 2*n)
	var pos float64
	for i, r := range ratios {
		if i > 0 {
			pos += sep
		}
		out = append(out, pos)
		pos += r * norm
		out = append(out, pos)
	}
	return out, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return len(g.tops) }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return len(g.lefts) }

// Cell returns the rectangle of a single cell. Negative indices count from the
// end, so Cell(0, -1) is the rightmost cell of the top row.
func (g *Grid) Cell(row, col int) (Rect, error) {
	return g.Span(Range{From: row, To: row + 1}, Range{From: col, To: col + 1})
}

// Span returns the rectangle covering the given row and column ranges.
func (g *Grid) Span(rows, cols Range) (Rect, error) {
	r0, r1, err := rows.resolve(g.Rows(), "row")
	if err != nil {
		return Rect{}, err
	}
	c0, c1, err := cols.resolve(g.Cols(), "column")
	if err != nil {
		return Rect{}, err
	}
	return Rect{
		Left:   g.lefts[c0],
		Right:  g.rights[c1-1],
		Top:    g.tops[r0],
		Bottom: g.bottoms[r1-1],
	}, nil
}

// Cells returns every cell, row-major.
func (g *Grid) Cells() [][]Rect {
	out := make([][]Rect, g.Rows())
	for r := range out {
		out[r] = make([]Rect, g.Cols())
		for c := range out[r] {
			out[r][c] = Rect{Left: g.lefts[c], Right: g.rights[c], Bottom: g.bottoms[r], Top: g.tops[r]}
		}
	}
	return out
}

// Fraction converts a rectangle in inches to figure fractions.
func (g *Grid) Fraction(r Rect) Rect {
	return Rect{
		Left:   r.Left / g.Width,
		Right:  r.Right / g.Width,
		Bottom: r.Bottom / g.Height,
		Top:    r.Top / g.Height,
	}
}
