package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/figgrid/pkg/errors"
	"github.com/matzehuels/figgrid/pkg/figure/grid"
	"github.com/matzehuels/figgrid/pkg/figure/layout"
	"github.com/matzehuels/figgrid/pkg/pipeline"
	"github.com/matzehuels/figgrid/pkg/sink"
)

// computeOpts holds the command-line flags for the compute command.
type computeOpts struct {
	width         layout.FigureWidth
	rows          int
	cols          string   // comma-separated column list, e.g. "1,1,cbar"
	aspects       []string // row:col:ratio overrides
	margin        float64  // applied only when the flag is set
	columnSpacing float64
	rowSpacing    float64
	colorbarWidth float64

	format      string // text, json or toml
	output      string // output file; stdout when empty
	guides      bool   // include guide lines (json)
	label       string // corner label placement (json)
	name        string // preset name (toml)
	description string // preset description (toml)
}

// computeCommand creates the compute command.
func (c *CLI) computeCommand() *cobra.Command {
	flags := &computeOpts{}

	cmd := &cobra.Command{
		Use:   "compute [preset]",
		Short: "Compute figure and panel sizes",
		Long: `Compute figure and panel sizes.

Starts from a preset (default: figure) and applies the given flags. Lengths are
in inches. Columns are relative weights or "cbar" for a fixed-width colorbar;
each row is square against its leftmost content column unless an aspect
override names another column and ratio.

Examples:
  figgrid compute 2d --width double
  figgrid compute --cols 1,1,cbar --rows 2 --aspect 0:0:0.5 -f json
  figgrid compute absorbance --margin 0.75 -f toml --name wide >> presets.toml`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: c.completePresets,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd, args)
			if err != nil {
				return err
			}
			return c.runCompute(cmd.Context(), cmd.OutOrStdout(), opts, *flags)
		},
	}

	flags.bind(cmd)
	registerComputeCompletions(cmd)
	return cmd
}

func (f *computeOpts) bind(cmd *cobra.Command) {
	cmd.Flags().Var(&f.width, "width", "figure width in inches, or single (6.5) / double (14)")
	cmd.Flags().IntVar(&f.rows, "rows", 0, "number of rows")
	cmd.Flags().StringVar(&f.cols, "cols", "", `columns, e.g. "1,1,cbar"`)
	cmd.Flags().Float64Var(&f.margin, "margin", 0, "margin on every side")
	cmd.Flags().Float64Var(&f.columnSpacing, "column-spacing", 0, "horizontal gap between columns")
	cmd.Flags().Float64Var(&f.rowSpacing, "row-spacing", 0, "vertical gap between rows")
	cmd.Flags().Float64Var(&f.colorbarWidth, "colorbar-width", 0, "width of each colorbar column")
	cmd.Flags().StringArrayVar(&f.aspects, "aspect", nil, "row aspect as row:col:ratio (repeatable)")
	cmd.Flags().StringVarP(&f.format, "format", "f", pipeline.FormatText, "output format: text, json, toml")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&f.guides, "guides", false, "include margin, center and edge guides (json)")
	cmd.Flags().StringVar(&f.label, "label", "", "place corner labels: UL, LL, UR, LR (json)")
	cmd.Flags().StringVar(&f.name, "name", "", "preset name (toml, default: the source preset)")
	cmd.Flags().StringVar(&f.description, "description", "", "preset description (toml)")
}

// options builds pipeline options from the positional preset and the flags
// that were set.
func (f *computeOpts) options(cmd *cobra.Command, args []string) (pipeline.Options, error) {
	var opts pipeline.Options
	if len(args) == 1 {
		opts.Preset = args[0]
	}
	if err := pipeline.ValidateFormat(f.format); err != nil {
		return opts, err
	}

	opts.Width = f.width
	if f.cols != "" {
		cols, err := layout.ParseColumns(f.cols)
		if err != nil {
			return opts, err
		}
		opts.Columns = cols
	}
	for _, s := range f.aspects {
		a, err := layout.ParseAspect(s)
		if err != nil {
			return opts, err
		}
		opts.Aspects = append(opts.Aspects, a)
	}

	changed := cmd.Flags().Changed
	if changed("rows") {
		if f.rows < 1 {
			return opts, errors.Configuration("--rows must be at least 1, got %d", f.rows)
		}
		opts.Rows = f.rows
	}
	if changed("margin") {
		opts.Margin = pipeline.Float(f.margin)
	}
	if changed("column-spacing") {
		opts.ColumnSpacing = pipeline.Float(f.columnSpacing)
	}
	if changed("row-spacing") {
		opts.RowSpacing = pipeline.Float(f.rowSpacing)
	}
	if changed("colorbar-width") {
		opts.ColorbarWidth = pipeline.Float(f.colorbarWidth)
	}
	return opts, nil
}

// runCompute computes the layout and writes it in the requested format to
// flags.output, or to w when no output file is given.
func (c *CLI) runCompute(ctx context.Context, w io.Writer, opts pipeline.Options, flags computeOpts) error {
	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}

	logger := loggerFromContext(ctx)
	opts.Logger = logger
	res, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}

	data, err := encodeResult(res, flags)
	if err != nil {
		return err
	}

	if flags.output == "" {
		_, err := w.Write(data)
		return err
	}

	prog := newProgress(logger)
	if err := os.WriteFile(flags.output, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", flags.output, err)
	}
	prog.done("wrote layout", "path", flags.output, "format", flags.format)

	printSuccess("Layout computed")
	printFile(flags.output)
	printKeyValue("Figure", fmt.Sprintf("%s x %s in", formatLength(res.Layout.Width), formatLength(res.Layout.Height)))
	return nil
}

// encodeResult renders res in the format selected by flags.
func encodeResult(res *pipeline.Result, flags computeOpts) ([]byte, error) {
	switch flags.format {
	case pipeline.FormatJSON:
		opts := []sink.JSONOption{
			sink.WithJSONPreset(res.Preset),
			sink.WithJSONRequest(res.Request),
			sink.WithJSONGrid(res.Grid),
		}
		if flags.guides {
			opts = append(opts, sink.WithJSONGuides(true, true))
		}
		if flags.label != "" {
			corner, err := grid.ParseCorner(flags.label)
			if err != nil {
				return nil, err
			}
			opts = append(opts, sink.WithJSONLabels(corner))
		}
		data, err := sink.RenderJSON(res.Layout, opts...)
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case pipeline.FormatTOML:
		name := flags.name
		if name == "" {
			name = res.Preset
		}
		return sink.RenderTOML(name, flags.description, res.Request)
	default:
		return []byte(renderText(res)), nil
	}
}

// =============================================================================
// Text Output
// =============================================================================

// renderText formats a result as summary lines followed by column and row tables.
func renderText(res *pipeline.Result) string {
	l := res.Layout
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Layout " + res.Preset))
	b.WriteString("\n")
	writeKeyValue(&b, "Figure", fmt.Sprintf("%s x %s in", formatLength(l.Width), formatLength(l.Height)))
	writeKeyValue(&b, "Margin", formatLength(l.Margin)+" in")
	writeKeyValue(&b, "wspace", formatFraction(l.ColumnSpacing))
	writeKeyValue(&b, "hspace", formatFraction(l.RowSpacing))
	b.WriteString("\n")

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleFunc := func(row, col int) lipgloss.Style {
		if row == -1 {
			return headerStyle
		}
		if col == 0 {
			return StyleDim
		}
		return lipgloss.NewStyle()
	}

	cols := make([][]string, l.Cols())
	for i, w := range l.ColumnWidths {
		kind := "content"
		if l.Colorbars[i] {
			kind = layout.ColorbarMarker
		}
		cols[i] = []string{strconv.Itoa(i), kind, formatLength(w)}
	}
	b.WriteString(table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Col", "Kind", "Width").
		Rows(cols...).
		StyleFunc(styleFunc).
		Render())
	b.WriteString("\n")

	rows := make([][]string, l.Rows())
	for i, h := range l.RowHeights {
		rows[i] = []string{strconv.Itoa(i), formatLength(h), aspectFor(res.Request, i)}
	}
	b.WriteString(table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Row", "Height", "Aspect").
		Rows(rows...).
		StyleFunc(styleFunc).
		Render())
	b.WriteString("\n")

	return b.String()
}

func writeKeyValue(b *strings.Builder, key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	b.WriteString(keyStyle.Render(key) + " " + StyleValue.Render(value) + "\n")
}

// aspectFor describes the aspect source of row.
func aspectFor(req layout.Request, row int) string {
	for _, a := range req.Aspects {
		if a.Row == row {
			return fmt.Sprintf("%g of col %d", a.Ratio, a.Col)
		}
	}
	return "square"
}

func formatLength(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func formatFraction(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
