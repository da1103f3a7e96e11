package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/figgrid/pkg/figure/grid"
	"github.com/matzehuels/figgrid/pkg/pipeline"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for figgrid.

Completions cover commands, flags, preset names (including presets from the
user presets file) and the values of --format, --label and --width.

  $ source <(figgrid completion bash)
  $ figgrid completion zsh > "${fpath[1]}/_figgrid"
  $ figgrid completion fish > ~/.config/fish/completions/figgrid.fish
  PS> figgrid completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return fmt.Errorf("unsupported shell %q", args[0])
		},
	}
}

// completePresets completes the single preset argument of compute and
// presets show.
func (c *CLI) completePresets(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	reg, err := c.loadPresets(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return reg.Names(), cobra.ShellCompDirectiveNoFileComp
}

// computeFlagValues lists the fixed values offered for compute flags.
var computeFlagValues = map[string][]string{
	"format": {pipeline.FormatText, pipeline.FormatJSON, pipeline.FormatTOML},
	"label":  {string(grid.UpperLeft), string(grid.LowerLeft), string(grid.UpperRight), string(grid.LowerRight)},
	"width":  {"single\t6.5 in", "double\t14 in"},
}

// registerComputeCompletions attaches value completions to the compute flags.
func registerComputeCompletions(cmd *cobra.Command) {
	for name, values := range computeFlagValues {
		_ = cmd.RegisterFlagCompletionFunc(name, cobra.FixedCompletions(values, cobra.ShellCompDirectiveNoFileComp))
	}
}
