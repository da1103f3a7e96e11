// Package sink encodes computed layouts for consumers outside Go.
//
// [RenderJSON] writes the full geometry of a layout: figure size, column
// widths, row heights, the relative spacing a ratio-based grid expects and,
// when a grid is attached, each cell in inches and figure fractions. This is
// the format returned by the HTTP API and by `figgrid compute --format json`.
//
// [RenderTOML] writes a request as a preset block that [preset.Decode] reads
// back, so a tuned layout can be saved to the presets file.
package sink
