package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/hipstersmoothie/react-resizable-panels/pkg/layoutfile"
	"github.com/hipstersmoothie/react-resizable-panels/pkg/panels"
)

// layoutCommand creates the layout command for computing panel layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		load      string
		save      string
		available float64
	)

	cmd := &cobra.Command{
		Use:   "layout <group.toml>",
		Short: "Compute a layout for a panel group declaration",
		Long: `Compute a layout for a panel group declaration.

The layout command reads a TOML group declaration, computes the default
layout (or restores a saved one with --load), and prints the resulting
sizes together with each panel's constraints. Use --save to write the
computed layout as a JSON snapshot for later restore.

Declarations with unsatisfiable constraints still produce a best-effort
layout; the problems are logged as warnings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(args[0], load, save, available)
		},
	}

	cmd.Flags().StringVar(&load, "load", "", "restore a saved layout snapshot instead of computing the default")
	cmd.Flags().StringVarP(&save, "save", "o", "", "write the resulting layout snapshot to this file")
	cmd.Flags().Float64Var(&available, "available", 0, "measured group extent, required for pixel-unit constraints")

	return cmd
}

// runLayout loads the group, computes or restores a layout, and prints it.
func (c *CLI) runLayout(groupPath, load, save string, available float64) error {
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

	fmt.Println(renderGroupTable(g))

	if save != "" {
		if err := layoutfile.SaveLayout(g, save); err != nil {
			return fmt.Errorf("save layout %s: %w", save, err)
		}
		printSuccess("Layout saved")
		printFile(save)
	}
	return nil
}

// renderGroupTable formats a group's panels and committed sizes as a table.
func renderGroupTable(g *panels.Group) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := [][]string{}
	for _, p := range g.Panels() {
		maxSize := "—"
		if p.Constraints.MaxSize != nil {
			maxSize = fmt.Sprintf("%.1f", *p.Constraints.MaxSize)
		}
		state := ""
		if g.IsCollapsed(p.ID) {
			state = "collapsed"
		}
		rows = append(rows, []string{
			p.ID,
			fmt.Sprintf("%.2f", g.PanelSize(p.ID)),
			fmt.Sprintf("%.1f", p.Constraints.MinSize),
			maxSize,
			state,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Panel", "Size", "Min", "Max", "State").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 4 {
				return StyleDim
			}
			return StyleValue
		})

	return t.Render()
}
