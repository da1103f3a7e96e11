package grid_test

import (
	"fmt"

	"github.com/matzehuels/figgrid/pkg/figure/grid"
	"github.com/matzehuels/figgrid/pkg/figure/layout"
)

func ExampleNew() {
	res, err := layout.Compute(layout.DefaultRequest())
	if err != nil {
		panic(err)
	}
	g, err := grid.New(res)
	if err != nil {
		panic(err)
	}

	for _, cell := range g.Cells()[0] {
		fmt.Printf("left %.2f right %.2f bottom %.2f top %.2f\n", cell.Left, cell.Right, cell.Bottom, cell.Top)
	}
	// Output:
	// left 1.00 right 5.00 bottom 1.00 top 5.00
	// left 5.25 right 5.50 bottom 1.00 top 5.00
}

func ExampleGrid_Span() {
	req := layout.DefaultRequest()
	req.Rows = 2
	res, _ := layout.Compute(req)
	g, _ := grid.New(res)

	// a colorbar spanning both rows
	cbar, _ := g.Span(grid.All, grid.Index(-1))
	fmt.Printf("%.2f x %.2f\n", cbar.Width(), cbar.Height())
	// Output:
	// 0.25 x 8.25
}
