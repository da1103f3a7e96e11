package layout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/figgrid/pkg/errors"
)

// ColorbarMarker is the text form of a colorbar column.
const ColorbarMarker = "cbar"

// Column describes one grid column: either a content column with a positive
// relative weight, or a colorbar column with a fixed absolute width.
type Column struct {
	Weight   float64
	Colorbar bool
}

// Weight returns a content column with relative weight w.
func Weight(w float64) Column { return Column{Weight: w} }

// Colorbar returns a fixed-width colorbar column.
func Colorbar() Column { return Column{Colorbar: true} }

// IsContent reports whether c holds a data panel.
func (c Column) IsContent() bool { return !c.Colorbar }

// Validate reports a configuration error unless c is either the colorbar
// marker or a finite positive weight.
func (c Column) Validate() error {
	if c.Colorbar {
		if c.Weight != 0 {
			return errors.Configuration("colorbar column cannot carry a weight (%g)", c.Weight)
		}
		return nil
	}
	if !(c.Weight > 0) || math.IsInf(c.Weight, 0) {
		return errors.Configuration("column weight must be a positive number, got %g", c.Weight)
	}
	return nil
}

// String returns the text form: the weight, or "cbar".
func (c Column) String() string {
	if c.Colorbar {
		return ColorbarMarker
	}
	return strconv.FormatFloat(c.Weight, 'g', -1, 64)
}

// ParseColumn parses a single column descriptor: a positive number or "cbar".
func ParseColumn(s string) (Column, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, ColorbarMarker) {
		return Colorbar(), nil
	}
	w, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Column{}, errors.Configuration("column %q is neither a weight nor %q", s, ColorbarMarker)
	}
	c := Weight(w)
	if err := c.Validate(); err != nil {
		return Column{}, err
	}
	return c, nil
}

// ParseColumns parses a comma-separated column list such as "1,1,cbar".
func ParseColumns(s string) ([]Column, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.Configuration("column list is empty")
	}
	parts := strings.Split(s, ",")
	cols := make([]Column, 0, len(parts))
	for _, p := range parts {
		c, err := ParseColumn(p)
		if err != nil {
			return nil, err
		}
		cols = append(cols, c)
	}
	return cols, nil
}

// FormatColumns is the inverse of ParseColumns.
func FormatColumns(cols []Column) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}

// MarshalJSON encodes a content column as its weight and a colorbar as "cbar".
func (c Column) MarshalJSON() ([]byte, error) {
	if c.Colorbar {
		return json.Marshal(ColorbarMarker)
	}
	return json.Marshal(c.Weight)
}

// UnmarshalJSON accepts a number or the string "cbar".
func (c *Column) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := ParseColumn(s)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}
	var w float64
	if err := json.Unmarshal(data, &w); err != nil {
		return errors.Configuration("column %s is neither a weight nor %q", data, ColorbarMarker)
	}
	*c = Weight(w)
	return c.Validate()
}

// UnmarshalTOML accepts an integer, a float or the string "cbar".
func (c *Column) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case int64:
		*c = Weight(float64(v))
	case float64:
		*c = Weight(v)
	case string:
		parsed, err := ParseColumn(v)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	default:
		return errors.Configuration("column %v (%T) is neither a weight nor %q", v, v, ColorbarMarker)
	}
	return c.Validate()
}

// Aspect fixes the height of Row to Ratio times the width of column Col.
// Col indexes the full column list and must name a content column.
// Ratios are height/width: above 1 is taller than wide.
type Aspect struct {
	Row   int     `json:"row" toml:"row"`
	Col   int     `json:"col" toml:"col"`
	Ratio float64 `json:"ratio" toml:"ratio"`
}

// String returns the "row:col:ratio" form accepted by ParseAspect.
func (a Aspect) String() string {
	return fmt.Sprintf("%d:%d:%s", a.Row, a.Col, strconv.FormatFloat(a.Ratio, 'g', -1, 64))
}

// ParseAspect parses "row:col:ratio", e.g. "0:0:0.5".
func ParseAspect(s string) (Aspect, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return Aspect{}, errors.Configuration("aspect %q must have the form row:col:ratio", s)
	}
	row, err := strconv.Atoi(parts[0])
	if err != nil {
		return Aspect{}, errors.Configuration("aspect %q: invalid row %q", s, parts[0])
	}
	col, err := strconv.Atoi(parts[1])
	if err != nil {
		return Aspect{}, errors.Configuration("aspect %q: invalid column %q", s, parts[1])
	}
	ratio, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return Aspect{}, errors.Configuration("aspect %q: invalid ratio %q", s, parts[2])
	}
	return Aspect{Row: row, Col: col, Ratio: ratio}, nil
}
