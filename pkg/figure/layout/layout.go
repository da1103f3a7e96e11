package layout

import (
	"math"

	"github.com/matzehuels/figgrid/pkg/errors"
)

// Request is the geometric intent for a figure. All lengths share one unit.
type Request struct {
	Width         float64  `json:"width"`
	Rows          int      `json:"rows"`
	Columns       []Column `json:"columns"`
	Margin        float64  `json:"margin"`
	ColumnSpacing float64  `json:"column_spacing"` // absolute gap between columns
	RowSpacing    float64  `json:"row_spacing"`    // absolute gap between rows
	ColorbarWidth float64  `json:"colorbar_width"`
	Aspects       []Aspect `json:"aspects,omitempty"`
}

// DefaultRequest returns a single-width figure with one row, a content column
// followed by a colorbar, a one inch margin and quarter inch gaps.
func DefaultRequest() Request {
	return Request{
		Width:         WidthSingle,
		Rows:          1,
		Columns:       []Column{Weight(1), Colorbar()},
		Margin:        1,
		ColumnSpacing: 0.25,
		RowSpacing:    0.25,
		ColorbarWidth: 0.25,
	}
}

// Clone returns a deep copy of r.
func (r Request) Clone() Request {
	out := r
	out.Columns = append([]Column(nil), r.Columns...)
	out.Aspects = append([]Aspect(nil), r.Aspects...)
	return out
}

// ColorbarCount returns the number of colorbar columns.
func (r Request) ColorbarCount() int {
	n := 0
	for _, c := range r.Columns {
		if c.Colorbar {
			n++
		}
	}
	return n
}

// ContentWidth is the width left for content columns once margins, gaps and
// colorbars are taken out. It may be zero or negative for unusable requests.
func (r Request) ContentWidth() float64 {
	w := r.Width - 2*r.Margin
	w -= float64(len(r.Columns)-1) * r.ColumnSpacing
	w -= float64(r.ColorbarCount()) * r.ColorbarWidth
	return w
}

// Result is the computed layout. ColumnSpacing and RowSpacing are relative
// fractions (see ToRelative); everything else is absolute.
type Result struct {
	Width         float64   `json:"width"`
	Height        float64   `json:"height"`
	Margin        float64   `json:"margin"`
	ColumnWidths  []float64 `json:"column_widths"`
	RowHeights    []float64 `json:"row_heights"`
	Colorbars     []bool    `json:"colorbars"`
	ColumnSpacing float64   `json:"column_spacing"`
	RowSpacing    float64   `json:"row_spacing"`
}

// Rows returns the number of rows.
func (r Result) Rows() int { return len(r.RowHeights) }

// Cols returns the number of columns, colorbars included.
func (r Result) Cols() int { return len(r.ColumnWidths) }

// InnerWidth is the figure width minus both margins.
func (r Result) InnerWidth() float64 { return r.Width - 2*r.Margin }

// InnerHeight is the figure height minus both margins.
func (r Result) InnerHeight() float64 { return r.Height - 2*r.Margin }

// Compute derives absolute column widths, row heights, the figure height and
// the relative spacing fractions from req. Every failure is a configuration
// error; no partial result is ever returned.
func Compute(req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	content := req.ContentWidth()
	if !(content > 0) {
		return Result{}, errors.Configuration(
			"no room for content columns: width %g, margin %g, %d columns, spacing %g, %d colorbars of %g leave %g",
			req.Width, req.Margin, len(req.Columns), req.ColumnSpacing,
			req.ColorbarCount(), req.ColorbarWidth, content)
	}

	var weights float64
	for _, c := range req.Columns {
		if c.IsContent() {
			weights += c.Weight
		}
	}

	res := Result{
		Width:        req.Width,
		Margin:       req.Margin,
		ColumnWidths: make([]float64, len(req.Columns)),
		RowHeights:   make([]float64, req.Rows),
		Colorbars:    make([]bool, len(req.Columns)),
	}

	first := -1
	for i, c := range req.Columns {
		if c.Colorbar {
			res.ColumnWidths[i] = req.ColorbarWidth
			res.Colorbars[i] = true
			continue
		}
		res.ColumnWidths[i] = content * c.Weight / weights
		if first < 0 {
			first = i
		}
	}

	aspects := make(map[int]Aspect, len(req.Aspects))
	for _, a := range req.Aspects {
		aspects[a.Row] = a
	}

	// Rows without an override are square against the leftmost content column.
	height := 2*req.Margin + float64(req.Rows-1)*req.RowSpacing
	for row := range res.RowHeights {
		h := res.ColumnWidths[first]
		if a, ok := aspects[row]; ok {
			h = res.ColumnWidths[a.Col] * a.Ratio
		}
		res.RowHeights[row] = h
		height += h
	}
	res.Height = height

	var err error
	if res.ColumnSpacing, err = ToRelative(req.ColumnSpacing, res.InnerWidth(), res.Cols()); err != nil {
		return Result{}, err
	}
	if res.RowSpacing, err = ToRelative(req.RowSpacing, res.InnerHeight(), res.Rows()); err != nil {
		return Result{}, err
	}
	return res, nil
}

// Validate checks the request shape without computing anything.
func (r Request) Validate() error {
	if err := checkLength("width", r.Width, true); err != nil {
		return err
	}
	if err := checkLength("margin", r.Margin, false); err != nil {
		return err
	}
	if err := checkLength("column spacing", r.ColumnSpacing, false); err != nil {
		return err
	}
	if err := checkLength("row spacing", r.RowSpacing, false); err != nil {
		return err
	}
	if r.Rows < 1 {
		return errors.Configuration("rows must be at least 1, got %d", r.Rows)
	}
	if len(r.Columns) == 0 {
		return errors.Configuration("at least one column is required")
	}

	contentCols := 0
	var weights float64
	for i, c := range r.Columns {
		if err := c.Validate(); err != nil {
			return errors.Configuration("column %d: %s", i, errors.UserMessage(err))
		}
		if c.IsContent() {
			contentCols++
			weights += c.Weight
		}
	}
	if contentCols == 0 {
		return errors.Configuration("at least one content column is required")
	}
	if math.IsInf(weights, 0) {
		return errors.Configuration("column weights must have a finite sum")
	}
	if r.ColorbarCount() > 0 {
		if err := checkLength("colorbar width", r.ColorbarWidth, true); err != nil {
			return err
		}
	}

	seen := make(map[int]bool, len(r.Aspects))
	for _, a := range r.Aspects {
		if seen[a.Row] {
			return errors.Configuration("aspect specified more than once for the same row (%d)", a.Row)
		}
		seen[a.Row] = true
	}
	for _, a := range r.Aspects {
		if a.Row < 0 || a.Row >= r.Rows {
			return errors.Configuration("aspect row %d out of range [0, %d)", a.Row, r.Rows)
		}
		if a.Col < 0 || a.Col >= len(r.Columns) {
			return errors.Configuration("aspect column %d out of range [0, %d)", a.Col, len(r.Columns))
		}
		if r.Columns[a.Col].Colorbar {
			return errors.Configuration("aspect for row %d names colorbar column %d", a.Row, a.Col)
		}
		if !(a.Ratio > 0) || math.IsInf(a.Ratio, 0) {
			return errors.Configuration("aspect ratio for row %d must be positive, got %g", a.Row, a.Ratio)
		}
	}
	return nil
}

func checkLength(name string, v float64, positive bool) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.Configuration("%s must be finite, got %g", name, v)
	}
	if positive && v <= 0 {
		return errors.Configuration("%s must be positive, got %g", name, v)
	}
	if v < 0 {
		return errors.Configuration("%s must be non-negative, got %g", name, v)
	}
	return nil
}
