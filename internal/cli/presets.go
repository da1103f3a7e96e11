package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// presetsCommand creates the presets command.
func (c *CLI) presetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List, show and pick layout presets",
	}

	cmd.AddCommand(c.presetsListCommand())
	cmd.AddCommand(c.presetsShowCommand())
	cmd.AddCommand(c.presetsPickCommand())

	return cmd
}

// presetsListCommand creates the "presets list" subcommand.
func (c *CLI) presetsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.loadPresets(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, reg.Len())
			for _, p := range reg.All() {
				rows = append(rows, presetRow(p))
			}
			headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("Preset", "Width", "Columns", "Rows", "Description").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					switch {
					case row == -1:
						return headerStyle
					case col == 0:
						return StyleHighlight
					case col == 4:
						return StyleDim
					}
					return lipgloss.NewStyle()
				})
			fmt.Println(t.Render())
			return nil
		},
	}
}

// presetsShowCommand creates the "presets show" subcommand.
func (c *CLI) presetsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "show <name>",
		Short:             "Compute and show a preset",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completePresets,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.showPreset(cmd, args[0])
		},
	}
}

// presetsPickCommand creates the "presets pick" subcommand.
func (c *CLI) presetsPickCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Pick a preset interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.loadPresets(cmd.Context())
			if err != nil {
				return err
			}

			model := NewPresetListModel(reg.All())
			final, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return fmt.Errorf("preset picker: %w", err)
			}
			picked, ok := final.(PresetListModel)
			if !ok || picked.Selected == nil {
				printInfo("No preset selected")
				return nil
			}
			return c.showPreset(cmd, picked.Selected.Name)
		},
	}
}

// showPreset computes a preset and prints it with a follow-up hint.
func (c *CLI) showPreset(cmd *cobra.Command, name string) error {
	runner, err := c.newRunner(cmd.Context())
	if err != nil {
		return err
	}
	res, err := runner.Preset(cmd.Context(), name)
	if err != nil {
		return err
	}

	fmt.Print(renderText(res))
	if p, err := runner.Presets.Get(name); err == nil && p.Description != "" {
		printDetail("%s", p.Description)
	}
	printNewline()
	printNextStep("Customize", "figgrid compute "+name+" --width double")
	return nil
}
