package layout

import (
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/matzehuels/figgrid/pkg/errors"
)

const tol = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) <= tol*math.Max(1, math.Abs(b)) }

func sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s
}

func TestComputeTwoEqualColumns(t *testing.T) {
	req := Request{
		Width:         6.5,
		Rows:          1,
		Columns:       []Column{Weight(1), Weight(1)},
		Margin:        1,
		ColumnSpacing: 0.25,
		RowSpacing:    0.25,
		ColorbarWidth: 0.25,
	}

	if got := req.ContentWidth(); !approx(got, 3.25) {
		t.Fatalf("ContentWidth() = %v, want 3.25", got)
	}

	res, err := Compute(req)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	for i, w := range res.ColumnWidths {
		if !approx(w, 1.625) {
			t.Errorf("ColumnWidths[%d] = %v, want 1.625", i, w)
		}
	}
}

func TestComputeColumnWithColorbar(t *testing.T) {
	req := DefaultRequest()

	res, err := Compute(req)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}

	// 6.5 - 2*1 - 1*0.25 - 1*0.25
	if !approx(res.ColumnWidths[0], 4.0) {
		t.Errorf("ColumnWidths[0] = %v, want 4.0", res.ColumnWidths[0])
	}
	if res.ColumnWidths[1] != 0.25 {
		t.Errorf("ColumnWidths[1] = %v, want 0.25", res.ColumnWidths[1])
	}
	if res.Colorbars[0] || !res.Colorbars[1] {
		t.Errorf("Colorbars = %v, want [false true]", res.Colorbars)
	}
}

func TestComputeSquareByDefault(t *testing.T) {
	req := DefaultRequest()
	req.Columns = []Column{Weight(1)}

	res, err := Compute(req)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	if res.RowHeights[0] != res.ColumnWidths[0] {
		t.Errorf("RowHeights[0] = %v, want %v", res.RowHeights[0], res.ColumnWidths[0])
	}
	if !approx(res.Height, res.ColumnWidths[0]+2) {
		t.Errorf("Height = %v, want %v", res.Height, res.ColumnWidths[0]+2)
	}
}

func TestComputeSquareAnchorsLeftmostContentColumn(t *testing.T) {
	req := DefaultRequest()
	req.Width = 10
	req.Rows = 2
	req.Columns = []Column{Colorbar(), Weight(3), Weight(1)}
	req.Aspects = []Aspect{{Row: 1, Col: 2, Ratio: 1}}

	res, err := Compute(req)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	if res.RowHeights[0] != res.ColumnWidths[1] {
		t.Errorf("RowHeights[0] = %v, want width of column 1 (%v)", res.RowHeights[0], res.ColumnWidths[1])
	}
	if res.RowHeights[1] != res.ColumnWidths[2] {
		t.Errorf("RowHeights[1] = %v, want width of column 2 (%v)", res.RowHeights[1], res.ColumnWidths[2])
	}
}

func TestComputeAspectOverride(t *testing.T) {
	req := DefaultRequest()
	req.Aspects = []Aspect{{Row: 0, Col: 0, Ratio: 2.0}}

	res, err := Compute(req)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	if want := 2.0 * res.ColumnWidths[0]; res.RowHeights[0] != want {
		t.Errorf("RowHeights[0] = %v, want %v", res.RowHeights[0], want)
	}
}

func TestComputeAbsorbanceDerivative(t *testing.T) {
	req := Request{
		Width:         WidthSingle,
		Rows:          2,
		Columns:       []Column{Weight(1)},
		Margin:        1,
		ColumnSpacing: 0.25,
		RowSpacing:    0.1,
		ColorbarWidth: 0.25,
		Aspects:       []Aspect{{Row: 0, Col: 0, Ratio: 0.35}, {Row: 1, Col: 0, Ratio: 0.35}},
	}

	res, err := Compute(req)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	if !approx(res.ColumnWidths[0], 4.5) {
		t.Errorf("ColumnWidths[0] = %v, want 4.5", res.ColumnWidths[0])
	}
	want := 2*4.5*0.35 + 0.1 + 2
	if !approx(res.Height, want) {
		t.Errorf("Height = %v, want %v", res.Height, want)
	}
}

func TestComputeEchoesMarginAndWidth(t *testing.T) {
	req := DefaultRequest()
	req.Margin = 0.75

	res, err := Compute(req)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	if res.Margin != 0.75 {
		t.Errorf("Margin = %v, want 0.75", res.Margin)
	}
	if res.Width != req.Width {
		t.Errorf("Width = %v, want %v", res.Width, req.Width)
	}
}

func TestComputeErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Request)
	}{
		{"duplicate aspect row", func(r *Request) {
			r.Rows = 2
			r.Aspects = []Aspect{{Row: 0, Col: 0, Ratio: 1}, {Row: 0, Col: 0, Ratio: 2}}
		}},
		{"duplicate aspect row different columns", func(r *Request) {
			r.Columns = []Column{Weight(1), Weight(1)}
			r.Aspects = []Aspect{{Row: 0, Col: 0, Ratio: 1}, {Row: 0, Col: 1, Ratio: 1}}
		}},
		{"aspect on colorbar", func(r *Request) {
			r.Aspects = []Aspect{{Row: 0, Col: 1, Ratio: 1}}
		}},
		{"aspect row out of range", func(r *Request) {
			r.Aspects = []Aspect{{Row: 1, Col: 0, Ratio: 1}}
		}},
		{"aspect column out of range", func(r *Request) {
			r.Aspects = []Aspect{{Row: 0, Col: 5, Ratio: 1}}
		}},
		{"aspect negative ratio", func(r *Request) {
			r.Aspects = []Aspect{{Row: 0, Col: 0, Ratio: -1}}
		}},
		{"no room for content", func(r *Request) { r.Width = 2.5 }},
		{"content exactly zero", func(r *Request) { r.Width = 2.25; r.Columns = []Column{Weight(1), Weight(1)} }},
		{"zero weight", func(r *Request) { r.Columns = []Column{Weight(0)} }},
		{"negative weight", func(r *Request) { r.Columns = []Column{Weight(-1), Colorbar()} }},
		{"infinite weight", func(r *Request) { r.Columns = []Column{Weight(math.Inf(1))} }},
		{"weights overflow", func(r *Request) { r.Columns = []Column{Weight(math.MaxFloat64), Weight(math.MaxFloat64)} }},
		{"only colorbars", func(r *Request) { r.Columns = []Column{Colorbar()} }},
		{"no columns", func(r *Request) { r.Columns = nil }},
		{"zero rows", func(r *Request) { r.Rows = 0 }},
		{"negative margin", func(r *Request) { r.Margin = -0.1 }},
		{"negative spacing", func(r *Request) { r.ColumnSpacing = -0.1 }},
		{"zero width", func(r *Request) { r.Width = 0 }},
		{"NaN width", func(r *Request) { r.Width = math.NaN() }},
		{"zero colorbar width with colorbar", func(r *Request) { r.ColorbarWidth = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := DefaultRequest()
			tt.modify(&req)
			res, err := Compute(req)
			if err == nil {
				t.Fatalf("Compute() = %+v, want error", res)
			}
			if !errors.IsConfiguration(err) {
				t.Errorf("Compute() error code = %v, want %v", errors.GetCode(err), errors.ErrCodeConfiguration)
			}
		})
	}
}

func TestComputeWeightOverflowMessage(t *testing.T) {
	req := DefaultRequest()
	req.Columns = []Column{Weight(math.MaxFloat64), Weight(math.MaxFloat64), Colorbar()}

	_, err := Compute(req)
	if err == nil {
		t.Fatal("Compute() succeeded, want error")
	}
	if got := errors.UserMessage(err); !strings.Contains(got, "column weights") {
		t.Errorf("Compute() error = %q, want a column weight error", got)
	}
}

func TestComputeZeroColorbarWidthWithoutColorbar(t *testing.T) {
	req := DefaultRequest()
	req.Columns = []Column{Weight(1)}
	req.ColorbarWidth = 0

	if _, err := Compute(req); err != nil {
		t.Errorf("Compute() error: %v", err)
	}
}

func TestComputeDoesNotMutateRequest(t *testing.T) {
	req := DefaultRequest()
	req.Aspects = []Aspect{{Row: 0, Col: 0, Ratio: 0.5}}
	before := req.Clone()

	if _, err := Compute(req); err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	if req.Columns[0] != before.Columns[0] || req.Aspects[0] != before.Aspects[0] {
		t.Error("Compute() modified its request")
	}
}

func randomRequest(r *rand.Rand) Request {
	cols := make([]Column, 1+r.IntN(5))
	for i := range cols {
		if i > 0 && r.IntN(4) == 0 {
			cols[i] = Colorbar()
		} else {
			cols[i] = Weight(0.1 + 3*r.Float64())
		}
	}
	rows := 1 + r.IntN(4)
	req := Request{
		Width:         20 + 10*r.Float64(),
		Rows:          rows,
		Columns:       cols,
		Margin:        r.Float64(),
		ColumnSpacing: 0.5 * r.Float64(),
		RowSpacing:    0.5 * r.Float64(),
		ColorbarWidth: 0.1 + 0.3*r.Float64(),
	}
	for row := 0; row < rows; row++ {
		if r.IntN(2) == 0 {
			continue
		}
		req.Aspects = append(req.Aspects, Aspect{Row: row, Col: 0, Ratio: 0.2 + 2*r.Float64()})
	}
	return req
}

func TestComputeSumsMatchFigureSize(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 7))

	for i := 0; i < 500; i++ {
		req := randomRequest(r)
		res, err := Compute(req)
		if err != nil {
			t.Fatalf("request %d: Compute() error: %v", i, err)
		}

		width := sum(res.ColumnWidths) + float64(len(req.Columns)-1)*req.ColumnSpacing + 2*req.Margin
		if !approx(width, req.Width) {
			t.Errorf("request %d: reconstructed width = %v, want %v", i, width, req.Width)
		}

		height := sum(res.RowHeights) + float64(req.Rows-1)*req.RowSpacing + 2*req.Margin
		if !approx(height, res.Height) {
			t.Errorf("request %d: reconstructed height = %v, want %v", i, height, res.Height)
		}

		colGap, err := ToAbsolute(res.ColumnSpacing, res.InnerWidth(), res.Cols())
		if err != nil || !approx(colGap, req.ColumnSpacing) {
			t.Errorf("request %d: column gap = %v (%v), want %v", i, colGap, err, req.ColumnSpacing)
		}
		rowGap, err := ToAbsolute(res.RowSpacing, res.InnerHeight(), res.Rows())
		if err != nil || !approx(rowGap, req.RowSpacing) {
			t.Errorf("request %d: row gap = %v (%v), want %v", i, rowGap, err, req.RowSpacing)
		}
	}
}
