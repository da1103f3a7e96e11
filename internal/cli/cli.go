package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/figgrid/pkg/buildinfo"
	"github.com/matzehuels/figgrid/pkg/pipeline"
	"github.com/matzehuels/figgrid/pkg/preset"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "figgrid"

	// presetsFile is the file name of the user presets in the config directory.
	presetsFile = "presets.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// presetsPath is the --presets flag; empty means the default location.
	presetsPath string

	// verbose is the --verbose flag.
	verbose bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "figgrid computes figure and panel geometry for scientific plots",
		Long:         `figgrid turns a figure width, a column list, per-row aspect ratios, margins and spacing in inches into absolute panel sizes, the figure height and the relative spacing a grid layout expects.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.SetLogLevel(logLevel(c.verbose))
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.presetsPath, "presets", "", "presets file (default: $XDG_CONFIG_HOME/figgrid/presets.toml)")

	// Register all subcommands
	root.AddCommand(c.computeCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.presetsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// loadPresets returns the built-in presets plus the user's preset file. The
// default file is optional; a file named with --presets must exist.
func (c *CLI) loadPresets(ctx context.Context) (*preset.Registry, error) {
	path, optional := c.presetsPath, false
	if path == "" {
		dir, err := configDir()
		if err != nil {
			c.Logger.Debug("no config directory", "err", err)
			return preset.Builtin(), nil
		}
		path, optional = filepath.Join(dir, presetsFile), true
	}
	return pipeline.LoadPresets(ctx, path, optional, c.Logger)
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context) (*pipeline.Runner, error) {
	reg, err := c.loadPresets(ctx)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(reg, c.Logger), nil
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard (~/.config/figgrid/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
