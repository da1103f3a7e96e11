package grid

// SubplotParams is the region inside the margins as figure fractions. Passing
// it to a figure's subplot adjustment enforces the same margin on all sides.
type SubplotParams struct {
	Left   float64 `json:"left"`
	Bottom float64 `json:"bottom"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
}

// Adjust returns the subplot parameters that keep the margin of the layout.
func (g *Grid) Adjust() SubplotParams {
	h := g.Margin / g.Width
	v := g.Margin / g.Height
	return SubplotParams{Left: h, Bottom: v, Right: 1 - h, Top: 1 - v}
}

// GuideKind classifies a guide line.
type GuideKind string

const (
	GuideMargin GuideKind = "margin"
	GuideCenter GuideKind = "center"
	GuideEdge   GuideKind = "edge"
)

// Guide is a straight line in figure fractions used to check a figure design.
type Guide struct {
	Kind GuideKind `json:"kind"`
	X0   float64   `json:"x0"`
	Y0   float64   `json:"y0"`
	X1   float64   `json:"x1"`
	Y1   float64   `json:"y1"`
}

// Guides returns the margin lines, plus center and edge lines when requested.
func (g *Grid) Guides(centers, edges bool) []Guide {
	p := g.Adjust()
	out := []Guide{
		{Kind: GuideMargin, X0: p.Left, Y0: 0, X1: p.Left, Y1: 1},
		{Kind: GuideMargin, X0: p.Right, Y0: 0, X1: p.Right, Y1: 1},
		{Kind: GuideMargin, X0: 0, Y0: p.Bottom, X1: 1, Y1: p.Bottom},
		{Kind: GuideMargin, X0: 0, Y0: p.Top, X1: 1, Y1: p.Top},
	}
	if centers {
		out = append(out,
			Guide{Kind: GuideCenter, X0: 0.5, Y0: 0, X1: 0.5, Y1: 1},
			Guide{Kind: GuideCenter, X0: 0, Y0: 0.5, X1: 1, Y1: 0.5},
		)
	}
	if edges {
		out = append(out,
			Guide{Kind: GuideEdge, X0: 0, Y0: 0, X1: 0, Y1: 1},
			Guide{Kind: GuideEdge, X0: 1, Y0: 0, X1: 1, Y1: 1},
			Guide{Kind: GuideEdge, X0: 0, Y0: 0, X1: 1, Y1: 0},
			Guide{Kind: GuideEdge, X0: 0, Y0: 1, X1: 1, Y1: 1},
		)
	}
	return out
}

// SubtitleY is the vertical figure fraction of a subtitle baseline, half a
// margin below the top edge.
func (g *Grid) SubtitleY() float64 {
	return 1 - (g.Margin/2)/g.Height
}
