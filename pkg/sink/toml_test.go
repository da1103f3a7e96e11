package sink

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/figgrid/pkg/errors"
	"github.com/matzehuels/figgrid/pkg/figure/layout"
	"github.com/matzehuels/figgrid/pkg/preset"
)

func TestRenderTOMLRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		req  layout.Request
	}{
		{"figure", layout.DefaultRequest()},
		{"absorbance-derivative", func() layout.Request {
			p, _ := preset.Builtin().Get("absorbance-derivative")
			return p.Request
		}()},
		{"spectra", layout.Request{
			Width:         layout.WidthDouble,
			Rows:          2,
			Columns:       []layout.Column{layout.Weight(2), layout.Weight(1.5), layout.Colorbar()},
			Margin:        0.5,
			ColumnSpacing: 0,
			RowSpacing:    0.3,
			ColorbarWidth: 0.2,
			Aspects:       []layout.Aspect{{Row: 1, Col: 1, Ratio: 0.75}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := RenderTOML(tt.name, "saved layout", tt.req)
			if err != nil {
				t.Fatalf("RenderTOML() error: %v", err)
			}

			presets, err := preset.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("Decode() error: %v\n%s", err, data)
			}
			if len(presets) != 1 {
				t.Fatalf("decoded %d presets, want 1", len(presets))
			}
			got := presets[0]
			if got.Name != tt.name || got.Description != "saved layout" {
				t.Errorf("preset = %s (%q)", got.Name, got.Description)
			}
			if !reflect.DeepEqual(got.Request, tt.req) {
				t.Errorf("round trip request = %+v, want %+v", got.Request, tt.req)
			}
		})
	}
}

func TestRenderTOMLText(t *testing.T) {
	data, err := RenderTOML("figure", "", layout.DefaultRequest())
	if err != nil {
		t.Fatalf("RenderTOML() error: %v", err)
	}
	text := string(data)
	for _, want := range []string{"[presets.figure]", `"cbar"`, "width = 6.5"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "description") {
		t.Errorf("empty description should be omitted:\n%s", text)
	}
}

func TestRenderTOMLInvalidName(t *testing.T) {
	_, err := RenderTOML("My Preset", "", layout.DefaultRequest())
	if !errors.Is(err, errors.ErrCodeInvalidPreset) {
		t.Errorf("RenderTOML() error = %v, want %s", err, errors.ErrCodeInvalidPreset)
	}
}
