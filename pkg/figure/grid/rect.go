package grid

import "gonum.org/v1/plot/vg"

// Rect is an axis-aligned region of the figure. Coordinates are measured from
// the lower-left corner of the figure, in the unit of the layout (inches) or,
// after Grid.Fraction, in figure fractions.
type Rect struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Top    float64 `json:"top"`
}

// Width returns the horizontal span of the rectangle.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical span of the rectangle.
func (r Rect) Height() float64 { return r.Top - r.Bottom }

// CenterX returns the horizontal center point of the rectangle.
func (r Rect) CenterX() float64 { return (r.Left + r.Right) / 2 }

// CenterY returns the vertical center point of the rectangle.
func (r Rect) CenterY() float64 { return (r.Bottom + r.Top) / 2 }

// Points converts a rectangle in inches to gonum/plot vector units, ready to
// crop a draw.Canvas to the cell.
func (r Rect) Points() vg.Rectangle {
	return vg.Rectangle{
		Min: vg.Point{X: vg.Length(r.Left) * vg.Inch, Y: vg.Length(r.Bottom) * vg.Inch},
		Max: vg.Point{X: vg.Length(r.Right) * vg.Inch, Y: vg.Length(r.Top) * vg.Inch},
	}
}
