// Package preset provides named layout requests.
//
// A [Registry] maps preset names to [layout.Request] values. Registries are
// immutable once built: [Registry.Extend] returns a new registry rather than
// modifying the receiver, so a registry can be shared between goroutines and
// passed explicitly to whatever needs it.
//
// # Built-in Presets
//
// [Builtin] returns the presets shipped with figgrid:
//
//   - figure: the default request (one row, content column plus colorbar)
//   - 1d: a single content column at aspect 0.5
//   - 2d: a content column with a colorbar
//   - absorbance: a single content column at aspect 0.35
//   - absorbance-derivative: two stacked rows at aspect 0.35
//   - double: the default request at double width
//
// # Preset Files
//
// Additional presets are read from TOML with [Decode] or [LoadFile]:
//
//	[presets.spectra]
//	description = "two panels with a shared colorbar"
//	width = "double"
//	columns = [1, 1, "cbar"]
//
//	[[presets.spectra.aspects]]
//	row = 0
//	col = 0
//	ratio = 0.5
//
// Keys that are left out take their value from [layout.DefaultRequest].
package preset
