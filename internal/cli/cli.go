// Package cli implements the panels command-line interface.
//
// This package provides commands for computing panel layouts from group
// declaration files, checking declarations and saved layouts against
// their constraints, and exploring a group interactively in the
// terminal. The CLI is built using cobra and supports verbose logging
// via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - layout: Compute a layout for a group declaration
//   - check: Validate a declaration and optional saved layout
//   - demo: Resize a group interactively in the terminal
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Layout
// diagnostics (substituted constraints, unsatisfiable totals) surface
// as warnings through the same logger.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hipstersmoothie/react-resizable-panels/pkg/buildinfo"
	"github.com/hipstersmoothie/react-resizable-panels/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "panels"

	// defaultStep is the keyboard resize step in percentage points.
	defaultStep = 5.0
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
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Layout diagnostics are routed to the CLI logger before any command runs.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Panels computes constrained split-panel layouts",
		Long:         `Panels is a CLI tool for computing and inspecting resizable split-panel layouts: declare a group of panels with sizing constraints, compute layouts that satisfy them, and replay resize gestures interactively.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			observability.SetLayoutHooks(newLogHooks(c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.completionCommand())

	return root
}
