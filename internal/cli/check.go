package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hipstersmoothie/react-resizable-panels/pkg/layoutfile"
	"github.com/hipstersmoothie/react-resizable-panels/pkg/observability"
)

// checkCommand creates the check command for validating declarations.
func (c *CLI) checkCommand() *cobra.Command {
	var (
		load      string
		available float64
	)

	cmd := &cobra.Command{
		Use:   "check <group.toml>",
		Short: "Validate a group declaration and optional saved layout",
		Long: `Validate a group declaration and optional saved layout.

The check command computes a layout the same way 'layout' does, but
collects every diagnostic the engine raises instead of just logging
them: constraints that had to be substituted, and totals the
constraints cannot satisfy. The command fails when any diagnostic was
raised, which makes it usable as a pre-commit gate for declaration
files.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(args[0], load, available)
		},
	}

	cmd.Flags().StringVar(&load, "load", "", "also validate this saved layout snapshot against the declaration")
	cmd.Flags().Float64Var(&available, "available", 0, "measured group extent, required for pixel-unit constraints")

	return cmd
}

// checkHooks collects layout diagnostics as printable findings.
type checkHooks struct {
	findings []string
}

func (h *checkHooks) OnConstraintSubstituted(panelID, constraint string, declared, substituted float64) {
	h.findings = append(h.findings,
		fmt.Sprintf("panel %s: %s %.2f substituted with %.2f", panelID, constraint, declared, substituted))
}

func (h *checkHooks) OnUnsatisfiedTotal(total, leftover float64) {
	h.findings = append(h.findings,
		fmt.Sprintf("constraints cannot reach 100: total %.2f, leftover %.2f", total, leftover))
}

// runCheck computes a layout with collecting hooks installed and reports
// every finding.
func (c *CLI) runCheck(groupPath, load string, available float64) error {
	hooks := &checkHooks{}
	observability.SetLayoutHooks(hooks)
	defer observability.SetLayoutHooks(newLogHooks(c.Logger))

	g, err := layoutfile.ReadGroupFile(groupPath)
	if err != nil {
		return fmt.Errorf("load group %s: %w", groupPath, err)
	}
	if available > 0 {
		g.SetAvailableSize(available)
	}

	if load != "" {
		if err := layoutfile.LoadLayout(g, load); err != nil {
			return fmt.Errorf("load layout %s: %w", load, err)
		}
	} else {
		g.Layout()
	}

	if len(hooks.findings) == 0 {
		printSuccess("%s: %d panels, constraints satisfiable", groupPath, len(g.Panels()))
		return nil
	}

	for _, finding := range hooks.findings {
		printWarning("%s", finding)
	}
	printNewline()
	printError("%d problems found", len(hooks.findings))
	return fmt.Errorf("%d problems found in %s", len(hooks.findings), groupPath)
}
