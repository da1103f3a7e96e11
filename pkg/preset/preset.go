package preset

import (
	"sort"

	"github.com/matzehuels/figgrid/pkg/errors"
	"github.com/matzehuels/figgrid/pkg/figure/layout"
)

// DefaultName is the preset used when none is requested.
const DefaultName = "figure"

// Preset is a named layout request.
type Preset struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Request     layout.Request `json:"request"`
}

// Registry is an immutable set of presets keyed by name.
type Registry struct {
	byName map[string]Preset
}

// NewRegistry builds a registry. Names must be valid and unique.
func NewRegistry(presets ...Preset) (*Registry, error) {
	r := &Registry{byName: make(map[string]Preset, len(presets))}
	for _, p := range presets {
		if err := errors.ValidatePresetName(p.Name); err != nil {
			return nil, err
		}
		if _, dup := r.byName[p.Name]; dup {
			return nil, errors.New(errors.ErrCodeInvalidPreset, "preset %q defined more than once", p.Name)
		}
		p.Request = p.Request.Clone()
		r.byName[p.Name] = p
	}
	return r, nil
}

// Get returns the named preset. The returned request is a copy.
func (r *Registry) Get(name string) (Preset, error) {
	p, ok := r.byName[name]
	if !ok {
		return Preset{}, errors.New(errors.ErrCodePresetNotFound, "preset %q not found", name)
	}
	p.Request = p.Request.Clone()
	return p, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Len returns the number of presets.
func (r *Registry) Len() int { return len(r.byName) }

// Names returns the preset names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every preset sorted by name.
func (r *Registry) All() []Preset {
	out := make([]Preset, 0, len(r.byName))
	for _, name := range r.Names() {
		p, _ := r.Get(name)
		out = append(out, p)
	}
	return out
}

// Extend returns a new registry holding the receiver's presets plus the given
// ones. A preset with an existing name replaces the earlier definition.
func (r *Registry) Extend(presets ...Preset) (*Registry, error) {
	extra, err := NewRegistry(presets...)
	if err != nil {
		return nil, err
	}
	out := &Registry{byName: make(map[string]Preset, len(r.byName)+len(extra.byName))}
	for name, p := range r.byName {
		out.byName[name] = p
	}
	for name, p := range extra.byName {
		out.byName[name] = p
	}
	return out, nil
}
