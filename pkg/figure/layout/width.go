package layout

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/matzehuels/figgrid/pkg/errors"
)

// Named figure widths, in inches.
const (
	WidthSingle = 6.5
	WidthDouble = 14.0
)

// FigureWidth is a total figure width that can also be given by name:
// "single" (6.5) or "double" (14). It implements the pflag.Value interface
// so it can be bound directly to a command-line flag.
type FigureWidth float64

// ParseWidth parses "single", "double" or a positive number.
func ParseWidth(s string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return WidthSingle, nil
	case "double":
		return WidthDouble, nil
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !(w > 0) {
		return 0, errors.Configuration("width %q must be 'single', 'double' or a positive number", s)
	}
	return w, nil
}

// String implements pflag.Value.
func (w *FigureWidth) String() string {
	if w == nil || *w == 0 {
		return ""
	}
	return strconv.FormatFloat(float64(*w), 'g', -1, 64)
}

// Set implements pflag.Value.
func (w *FigureWidth) Set(s string) error {
	v, err := ParseWidth(s)
	if err != nil {
		return err
	}
	*w = FigureWidth(v)
	return nil
}

// Type implements pflag.Value.
func (w *FigureWidth) Type() string { return "width" }

// UnmarshalJSON accepts a number or one of the width names.
func (w *FigureWidth) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return w.Set(s)
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*w = FigureWidth(v)
	return nil
}

// UnmarshalTOML accepts an integer, a float or one of the width names.
func (w *FigureWidth) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case int64:
		*w = FigureWidth(v)
	case float64:
		*w = FigureWidth(v)
	case string:
		return w.Set(v)
	default:
		return errors.Configuration("width %v (%T) must be a number or a width name", v, v)
	}
	return nil
}
