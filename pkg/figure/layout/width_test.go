package layout

import (
	"encoding/json"
	"testing"

	"github.com/BurntSushi/toml"
)

func TestParseWidth(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"single", 6.5, false},
		{"double", 14, false},
		{"Double", 14, false},
		{"7.25", 7.25, false},
		{"", 0, true},
		{"0", 0, true},
		{"-3", 0, true},
		{"triple", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWidth(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWidth(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseWidth(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFigureWidthFlag(t *testing.T) {
	var w FigureWidth
	if w.String() != "" {
		t.Errorf("String() of unset width = %q, want empty", w.String())
	}
	if err := w.Set("double"); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if w != WidthDouble {
		t.Errorf("width = %v, want %v", w, WidthDouble)
	}
	if w.String() != "14" {
		t.Errorf("String() = %q, want %q", w.String(), "14")
	}
	if w.Type() != "width" {
		t.Errorf("Type() = %q", w.Type())
	}
}

func TestFigureWidthDecoding(t *testing.T) {
	var doc struct {
		Width FigureWidth `json:"width" toml:"width"`
	}

	if err := json.Unmarshal([]byte(`{"width": "single"}`), &doc); err != nil || doc.Width != WidthSingle {
		t.Errorf("JSON name: width = %v, err = %v", doc.Width, err)
	}
	if err := json.Unmarshal([]byte(`{"width": 8}`), &doc); err != nil || doc.Width != 8 {
		t.Errorf("JSON number: width = %v, err = %v", doc.Width, err)
	}
	if _, err := toml.Decode(`width = "double"`, &doc); err != nil || doc.Width != WidthDouble {
		t.Errorf("TOML name: width = %v, err = %v", doc.Width, err)
	}
	if _, err := toml.Decode(`width = 9`, &doc); err != nil || doc.Width != 9 {
		t.Errorf("TOML integer: width = %v, err = %v", doc.Width, err)
	}
	if _, err := toml.Decode(`width = 9.5`, &doc); err != nil || doc.Width != 9.5 {
		t.Errorf("TOML float: width = %v, err = %v", doc.Width, err)
	}
}
