package preset

import (
	"reflect"
	"testing"

	"github.com/matzehuels/figgrid/pkg/errors"
	"github.com/matzehuels/figgrid/pkg/figure/layout"
)

func TestBuiltinComputes(t *testing.T) {
	reg := Builtin()
	want := []string{"1d", "2d", "absorbance", "absorbance-derivative", "double", "figure"}
	if got := reg.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}

	for _, p := range reg.All() {
		t.Run(p.Name, func(t *testing.T) {
			if _, err := layout.Compute(p.Request); err != nil {
				t.Errorf("Compute(%s) error: %v", p.Name, err)
			}
			if p.Description == "" {
				t.Errorf("preset %s has no description", p.Name)
			}
		})
	}
}

func TestBuiltinHeights(t *testing.T) {
	tests := []struct {
		name   string
		height float64
	}{
		{"figure", 6.0},                 // 4.0 square + 2 margin
		{"1d", 4.25},                    // 4.5 * 0.5 + 2
		{"absorbance", 3.575},           // 4.5 * 0.35 + 2
		{"absorbance-derivative", 5.25}, // 2 * 1.575 + 0.1 + 2
	}

	reg := Builtin()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := reg.Get(tt.name)
			if err != nil {
				t.Fatalf("Get() error: %v", err)
			}
			res, err := layout.Compute(p.Request)
			if err != nil {
				t.Fatalf("Compute() error: %v", err)
			}
			if diff := res.Height - tt.height; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Height = %v, want %v", res.Height, tt.height)
			}
		})
	}
}

func TestRegistryGetNotFound(t *testing.T) {
	_, err := Builtin().Get("poster")
	if !errors.Is(err, errors.ErrCodePresetNotFound) {
		t.Errorf("Get(poster) error = %v, want %s", err, errors.ErrCodePresetNotFound)
	}
}

func TestRegistryGetReturnsCopy(t *testing.T) {
	reg := Builtin()
	p, _ := reg.Get("figure")
	p.Request.Columns[0] = layout.Weight(9)
	p.Request.Width = 1

	again, _ := reg.Get("figure")
	if again.Request.Columns[0].Weight != 1 || again.Request.Width != layout.WidthSingle {
		t.Errorf("registry was modified through a returned preset: %+v", again.Request)
	}
}

func TestNewRegistryErrors(t *testing.T) {
	tests := []struct {
		name    string
		presets []Preset
		code    errors.Code
	}{
		{"duplicate", []Preset{{Name: "a"}, {Name: "a"}}, errors.ErrCodeInvalidPreset},
		{"empty name", []Preset{{Name: ""}}, errors.ErrCodeInvalidPreset},
		{"upper case", []Preset{{Name: "Poster"}}, errors.ErrCodeInvalidPreset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.presets...)
			if !errors.Is(err, tt.code) {
				t.Errorf("NewRegistry() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestRegistryExtend(t *testing.T) {
	base := Builtin()
	poster := layout.DefaultRequest()
	poster.Width = 20
	wide := layout.DefaultRequest()
	wide.Width = 10

	ext, err := base.Extend(
		Preset{Name: "poster", Request: poster},
		Preset{Name: "double", Request: wide},
	)
	if err != nil {
		t.Fatalf("Extend() error: %v", err)
	}

	if ext.Len() != base.Len()+1 {
		t.Errorf("Len() = %d, want %d", ext.Len(), base.Len()+1)
	}
	if p, _ := ext.Get("double"); p.Request.Width != 10 {
		t.Errorf("double width = %v, want override 10", p.Request.Width)
	}
	if p, _ := base.Get("double"); p.Request.Width != layout.WidthDouble {
		t.Errorf("base registry changed: double width = %v", p.Request.Width)
	}
	if base.Has("poster") {
		t.Error("base registry gained poster")
	}
}
