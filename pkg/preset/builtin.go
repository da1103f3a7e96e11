package preset

import "github.com/matzehuels/figgrid/pkg/figure/layout"

// Builtin returns the presets shipped with figgrid.
func Builtin() *Registry {
	r, err := NewRegistry(builtins()...)
	if err != nil {
		panic(err)
	}
	return r
}

func builtins() []Preset {
	figure := layout.DefaultRequest()

	oneD := layout.DefaultRequest()
	oneD.Columns = []layout.Column{layout.Weight(1)}
	oneD.Aspects = []layout.Aspect{{Row: 0, Col: 0, Ratio: 0.5}}

	twoD := layout.DefaultRequest()
	twoD.Columns = []layout.Column{layout.Weight(1), layout.Colorbar()}

	absorbance := layout.DefaultRequest()
	absorbance.Columns = []layout.Column{layout.Weight(1)}
	absorbance.Aspects = []layout.Aspect{{Row: 0, Col: 0, Ratio: 0.35}}

	derivative := layout.DefaultRequest()
	derivative.Rows = 2
	derivative.Columns = []layout.Column{layout.Weight(1)}
	derivative.RowSpacing = 0.1
	derivative.Aspects = []layout.Aspect{
		{Row: 0, Col: 0, Ratio: 0.35},
		{Row: 1, Col: 0, Ratio: 0.35},
	}

	double := layout.DefaultRequest()
	double.Width = layout.WidthDouble

	return []Preset{
		{Name: DefaultName, Description: "single-width figure with a colorbar", Request: figure},
		{Name: "1d", Description: "one panel at half height", Request: oneD},
		{Name: "2d", Description: "square panel with a colorbar", Request: twoD},
		{Name: "absorbance", Description: "wide absorbance spectrum", Request: absorbance},
		{Name: "absorbance-derivative", Description: "absorbance spectrum above its derivative", Request: derivative},
		{Name: "double", Description: "double-width figure with a colorbar", Request: double},
	}
}
