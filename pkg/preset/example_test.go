package preset_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/figgrid/pkg/figure/layout"
	"github.com/matzehuels/figgrid/pkg/preset"
)

func ExampleRegistry_Extend() {
	extra, err := preset.Decode(strings.NewReader(`
[presets.poster]
width = 18.25
columns = [1, 1, "cbar"]
`))
	if err != nil {
		panic(err)
	}
	reg, err := preset.Builtin().Extend(extra...)
	if err != nil {
		panic(err)
	}

	p, _ := reg.Get("poster")
	res, _ := layout.Compute(p.Request)
	fmt.Printf("%s: %.2f x %.2f\n", p.Name, res.Width, res.Height)
	// Output:
	// poster: 18.25 x 9.75
}
