package sink

import (
	"encoding/json"

	"github.com/matzehuels/figgrid/pkg/figure/grid"
	"github.com/matzehuels/figgrid/pkg/figure/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	preset  string
	request *layout.Request
	grid    *grid.Grid
	centers bool
	edges   bool
	guides  bool
	corner  grid.Corner
}

// WithJSONPreset records the preset the layout was computed from.
func WithJSONPreset(name string) JSONOption { return func(r *jsonRenderer) { r.preset = name } }

// WithJSONRequest echoes the resolved request, so the output can be fed back
// as the request of another computation.
func WithJSONRequest(req layout.Request) JSONOption {
	return func(r *jsonRenderer) { c := req.Clone(); r.request = &c }
}

// WithJSONGrid includes the subplot parameters and every cell of g.
func WithJSONGrid(g *grid.Grid) JSONOption { return func(r *jsonRenderer) { r.grid = g } }

// WithJSONGuides includes the margin guide lines, plus center and edge lines
// when requested. It has no effect without [WithJSONGrid].
func WithJSONGuides(centers, edges bool) JSONOption {
	return func(r *jsonRenderer) { r.guides = true; r.centers = centers; r.edges = edges }
}

// WithJSONLabels places a corner label in every content cell. It has no
// effect without [WithJSONGrid].
func WithJSONLabels(corner grid.Corner) JSONOption {
	return func(r *jsonRenderer) { r.corner = corner }
}

type jsonOutput struct {
	Preset        string              `json:"preset,omitempty"`
	Request       *layout.Request     `json:"request,omitempty"`
	Width         float64             `json:"width"`
	Height        float64             `json:"height"`
	Margin        float64             `json:"margin"`
	ColumnWidths  []float64           `json:"column_widths"`
	RowHeights    []float64           `json:"row_heights"`
	Colorbars     []bool              `json:"colorbars"`
	ColumnSpacing float64             `json:"column_spacing"`
	RowSpacing    float64             `json:"row_spacing"`
	Subplot       *grid.SubplotParams `json:"subplot,omitempty"`
	SubtitleY     float64             `json:"subtitle_y,omitempty"`
	Cells         []jsonCell          `json:"cells,omitempty"`
	Guides        []grid.Guide        `json:"guides,omitempty"`
}

type jsonCell struct {
	Row      int             `json:"row"`
	Col      int             `json:"col"`
	Colorbar bool            `json:"colorbar,omitempty"`
	Inches   grid.Rect       `json:"inches"`
	Fraction grid.Rect       `json:"fraction"`
	Label    *grid.Placement `json:"label,omitempty"`
}

// RenderJSON exports a layout as a pretty-printed JSON document.
//
// The JSON always includes the figure size, margin, absolute column widths and
// row heights, colorbar flags and the relative spacing fractions. Options add
// the request echo, cell rectangles, guide lines and corner labels.
//
// RenderJSON returns an error only if a label cannot be placed or JSON
// marshaling fails. It does not modify l or the grid, and is safe to call
// concurrently.
func RenderJSON(l layout.Result, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Preset:        r.preset,
		Request:       r.request,
		Width:         l.Width,
		Height:        l.Height,
		Margin:        l.Margin,
		ColumnWidths:  l.ColumnWidths,
		RowHeights:    l.RowHeights,
		Colorbars:     l.Colorbars,
		ColumnSpacing: l.ColumnSpacing,
		RowSpacing:    l.RowSpacing,
	}

	if r.grid != nil {
		p := r.grid.Adjust()
		out.Subplot = &p
		out.SubtitleY = r.grid.SubtitleY()
		cells, err := buildJSONCells(r.grid, l.Colorbars, r.corner)
		if err != nil {
			return nil, err
		}
		out.Cells = cells
		if r.guides {
			out.Guides = r.grid.Guides(r.centers, r.edges)
		}
	}

	return json.MarshalIndent(out, "", "  ")
}

func buildJSONCells(g *grid.Grid, colorbars []bool, corner grid.Corner) ([]jsonCell, error) {
	cells := make([]jsonCell, 0, g.Rows()*g.Cols())
	for row, rects := range g.Cells() {
		for col, rect := range rects {
			jc := jsonCell{
				Row:      row,
				Col:      col,
				Colorbar: col < len(colorbars) && colorbars[col],
				Inches:   rect,
				Fraction: g.Fraction(rect),
			}
			if corner != "" && !jc.Colorbar {
				p, err := grid.Anchor(rect, corner, grid.DefaultAnchorDistance, grid.DefaultAnchorFactor)
				if err != nil {
					return nil, err
				}
				jc.Label = &p
			}
			cells = append(cells, jc)
		}
	}
	return cells, nil
}
