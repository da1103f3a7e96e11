package preset

import (
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/figgrid/pkg/errors"
	"github.com/matzehuels/figgrid/pkg/figure/layout"
)

type presetFile struct {
	Presets map[string]filePreset `toml:"presets"`
}

// filePreset uses pointers so that absent keys can fall back to defaults
// while explicit zeros are kept.
type filePreset struct {
	Description   string              `toml:"description"`
	Width         *layout.FigureWidth `toml:"width"`
	Rows          *int                `toml:"rows"`
	Columns       []layout.Column     `toml:"columns"`
	Margin        *float64            `toml:"margin"`
	ColumnSpacing *float64            `toml:"column_spacing"`
	RowSpacing    *float64            `toml:"row_spacing"`
	ColorbarWidth *float64            `toml:"colorbar_width"`
	Aspects       []layout.Aspect     `toml:"aspects"`
}

func (f filePreset) request() layout.Request {
	req := layout.DefaultRequest()
	if f.Width != nil {
		req.Width = float64(*f.Width)
	}
	if f.Rows != nil {
		req.Rows = *f.Rows
	}
	if f.Columns != nil {
		req.Columns = f.Columns
	}
	if f.Margin != nil {
		req.Margin = *f.Margin
	}
	if f.ColumnSpacing != nil {
		req.ColumnSpacing = *f.ColumnSpacing
	}
	if f.RowSpacing != nil {
		req.RowSpacing = *f.RowSpacing
	}
	if f.ColorbarWidth != nil {
		req.ColorbarWidth = *f.ColorbarWidth
	}
	if f.Aspects != nil {
		req.Aspects = f.Aspects
	}
	return req
}

// Decode reads presets from a TOML document. Each preset is validated, so a
// file never yields a preset that cannot be computed.
func Decode(r io.Reader) ([]Preset, error) {
	var doc presetFile
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode presets")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown preset keys: %s", strings.Join(keys, ", "))
	}

	names := make([]string, 0, len(doc.Presets))
	for name := range doc.Presets {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Preset, 0, len(names))
	for _, name := range names {
		if err := errors.ValidatePresetName(name); err != nil {
			return nil, err
		}
		fp := doc.Presets[name]
		p := Preset{Name: name, Description: fp.Description, Request: fp.request()}
		if _, err := layout.Compute(p.Request); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPreset, err, "preset %q: %s", name, errors.UserMessage(err))
		}
		out = append(out, p)
	}
	return out, nil
}

// LoadFile reads presets from a TOML file.
func LoadFile(path string) ([]Preset, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "preset file %s", path)
		}
		return nil, err
	}
	defer f.Close()

	presets, err := Decode(f)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "%s: %s", path, errors.UserMessage(err))
	}
	return presets, nil
}
