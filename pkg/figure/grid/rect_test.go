package grid

import (
	"testing"

	"gonum.org/v1/plot/vg"
)

func TestRectDimensions(t *testing.T) {
	tests := []struct {
		name             string
		rect             Rect
		width, height    float64
		centerX, centerY float64
	}{
		{"unit at origin", Rect{Left: 0, Right: 1, Bottom: 0, Top: 1}, 1, 1, 0.5, 0.5},
		{"offset", Rect{Left: 1, Right: 5.5, Bottom: 1, Top: 2.5}, 4.5, 1.5, 3.25, 1.75},
		{"degenerate", Rect{Left: 2, Right: 2, Bottom: 3, Top: 3}, 0, 0, 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Width(); got != tt.width {
				t.Errorf("Width() = %v, want %v", got, tt.width)
			}
			if got := tt.rect.Height(); got != tt.height {
				t.Errorf("Height() = %v, want %v", got, tt.height)
			}
			if got := tt.rect.CenterX(); got != tt.centerX {
				t.Errorf("CenterX() = %v, want %v", got, tt.centerX)
			}
			if got := tt.rect.CenterY(); got != tt.centerY {
				t.Errorf("CenterY() = %v, want %v", got, tt.centerY)
			}
		})
	}
}

func TestRectPoints(t *testing.T) {
	r := Rect{Left: 1, Right: 5.5, Bottom: 1, Top: 2}
	p := r.Points()

	if p.Min.X != vg.Inch || p.Min.Y != vg.Inch {
		t.Errorf("Min = %v, want (%v, %v)", p.Min, vg.Inch, vg.Inch)
	}
	if p.Max.X != 5.5*vg.Inch || p.Max.Y != 2*vg.Inch {
		t.Errorf("Max = %v", p.Max)
	}
	if p.Max.X != 396 {
		t.Errorf("Max.X = %v points, want 396", p.Max.X)
	}
}
