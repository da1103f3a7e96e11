package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/figgrid/pkg/figure/layout"
)

// convertOpts holds the flags shared by the convert subcommands.
type convertOpts struct {
	value float64 // spacing (to-relative) or fraction (to-absolute)
	total float64 // available length, margins excluded
	slots int     // number of rows or columns
}

// convertCommand creates the convert command for spacing conversions.
func (c *CLI) convertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert spacing between inches and grid fractions",
		Long: `Convert spacing between inches and grid fractions.

A ratio-based grid expresses the gap between slots as a fraction of the
average slot size. These commands convert between that fraction and an
absolute gap for a given total length and slot count.`,
	}

	cmd.AddCommand(c.convertToRelativeCommand())
	cmd.AddCommand(c.convertToAbsoluteCommand())

	return cmd
}

// convertToRelativeCommand creates the "convert to-relative" subcommand.
func (c *CLI) convertToRelativeCommand() *cobra.Command {
	var opts convertOpts
	cmd := &cobra.Command{
		Use:   "to-relative",
		Short: "Convert an absolute gap to a grid fraction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := layout.ToRelative(opts.value, opts.total, opts.slots)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("converted spacing", "inches", opts.value, "fraction", f)
			fmt.Fprintln(cmd.OutOrStdout(), formatFraction(f))
			return nil
		},
	}
	opts.bind(cmd, "absolute gap")
	return cmd
}

// convertToAbsoluteCommand creates the "convert to-absolute" subcommand.
func (c *CLI) convertToAbsoluteCommand() *cobra.Command {
	var opts convertOpts
	cmd := &cobra.Command{
		Use:   "to-absolute",
		Short: "Convert a grid fraction to an absolute gap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := layout.ToAbsolute(opts.value, opts.total, opts.slots)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("converted spacing", "fraction", opts.value, "inches", s)
			fmt.Fprintln(cmd.OutOrStdout(), formatLength(s))
			return nil
		},
	}
	opts.bind(cmd, "grid fraction")
	return cmd
}

func (o *convertOpts) bind(cmd *cobra.Command, valueHelp string) {
	cmd.Flags().Float64Var(&o.value, "value", 0, valueHelp)
	cmd.Flags().Float64Var(&o.total, "total", 0, "total length excluding margins")
	cmd.Flags().IntVar(&o.slots, "slots", 0, "number of rows or columns")
	_ = cmd.MarkFlagRequired("value")
	_ = cmd.MarkFlagRequired("total")
	_ = cmd.MarkFlagRequired("slots")
}
