package grid

import (
	"strings"

	"github.com/matzehuels/figgrid/pkg/errors"
)

// Corner names a corner of a cell.
type Corner string

const (
	UpperLeft  Corner = "UL"
	LowerLeft  Corner = "LL"
	UpperRight Corner = "UR"
	LowerRight Corner = "LR"
)

// ParseCorner parses UL, LL, UR or LR (case-insensitive).
func ParseCorner(s string) (Corner, error) {
	switch c := Corner(strings.ToUpper(strings.TrimSpace(s))); c {
	case UpperLeft, LowerLeft, UpperRight, LowerRight:
		return c, nil
	}
	return "", errors.Configuration("corner %q not recognized (want UL, LL, UR or LR)", s)
}

// Default corner label parameters.
const (
	DefaultAnchorDistance = 0.075
	DefaultAnchorFactor   = 200
)

// Placement locates a corner label in axes fractions together with the text
// alignment that keeps it inside the cell.
type Placement struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	VAlign string  `json:"valign"` // "top" or "bottom"
	HAlign string  `json:"halign"` // "left" or "right"
}

// Anchor places a label near a corner of the cell r. The cell is measured in
// points, so the offset scales with the physical cell size: a distance of d
// puts the label d*factor points from both edges.
func Anchor(r Rect, corner Corner, distance, factor float64) (Placement, error) {
	if !(factor > 0) {
		return Placement{}, errors.Configuration("anchor factor must be positive, got %g", factor)
	}
	pts := r.Points()
	w := float64(pts.Size().X) / factor
	h := float64(pts.Size().Y) / factor
	if !(w > 0) || !(h > 0) {
		return Placement{}, errors.Configuration("cannot anchor in an empty cell")
	}

	x, y := distance/w, distance/h
	p := Placement{VAlign: "bottom", HAlign: "left"}
	switch corner {
	case UpperLeft:
		p.VAlign = "top"
		y = 1 - y
	case LowerLeft:
	case UpperRight:
		p.VAlign, p.HAlign = "top", "right"
		x, y = 1-x, 1-y
	case LowerRight:
		p.HAlign = "right"
		x = 1 - x
	default:
		return Placement{}, errors.Configuration("corner %q not recognized (want UL, LL, UR or LR)", corner)
	}
	p.X, p.Y = x, y
	return p, nil
}
