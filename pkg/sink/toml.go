package sink

import (
	"bytes"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/figgrid/pkg/errors"
	"github.com/matzehuels/figgrid/pkg/figure/layout"
)

type tomlFile struct {
	Presets map[string]tomlPreset `toml:"presets"`
}

type tomlPreset struct {
	Description   string          `toml:"description,omitempty"`
	Width         float64         `toml:"width"`
	Rows          int             `toml:"rows"`
	Columns       []any           `toml:"columns"` // weights and the colorbar marker
	Margin        float64         `toml:"margin"`
	ColumnSpacing float64         `toml:"column_spacing"`
	RowSpacing    float64         `toml:"row_spacing"`
	ColorbarWidth float64         `toml:"colorbar_width"`
	Aspects       []layout.Aspect `toml:"aspects,omitempty"`
}

// RenderTOML writes req as a [presets.<name>] block. Every field is written,
// so the block does not depend on the defaults of the reader.
func RenderTOML(name, description string, req layout.Request) ([]byte, error) {
	if err := errors.ValidatePresetName(name); err != nil {
		return nil, err
	}

	cols := make([]any, len(req.Columns))
	for i, c := range req.Columns {
		if c.Colorbar {
			cols[i] = layout.ColorbarMarker
		} else {
			cols[i] = c.Weight
		}
	}

	doc := tomlFile{Presets: map[string]tomlPreset{
		name: {
			Description:   description,
			Width:         req.Width,
			Rows:          req.Rows,
			Columns:       cols,
			Margin:        req.Margin,
			ColumnSpacing: req.ColumnSpacing,
			RowSpacing:    req.RowSpacing,
			ColorbarWidth: req.ColorbarWidth,
			Aspects:       req.Aspects,
		},
	}}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode preset %q", name)
	}
	return buf.Bytes(), nil
}
