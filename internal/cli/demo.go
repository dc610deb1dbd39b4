package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/hipstersmoothie/react-resizable-panels/pkg/layoutfile"
	"github.com/hipstersmoothie/react-resizable-panels/pkg/panels"
)

// demoCommand creates the demo command for interactive resizing.
func (c *CLI) demoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo <group.toml>",
		Short: "Resize a panel group interactively in the terminal",
		Long: `Resize a panel group interactively in the terminal.

The demo command renders the group as bordered boxes sized by the
committed layout. Arrow keys move the selected boundary in keyboard
steps, which expand collapsed panels immediately instead of applying
the pointer dead zone. Tab cycles through the group's boundaries.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := layoutfile.ReadGroupFile(args[0])
			if err != nil {
				return fmt.Errorf("load group %s: %w", args[0], err)
			}
			g.Layout()

			p := tea.NewProgram(newDemoModel(g), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
	return cmd
}

// Demo styles
var (
	demoBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Align(lipgloss.Center, lipgloss.Center)
	demoActiveBoxStyle = demoBoxStyle.
				BorderForeground(colorCyan)
	demoCollapsedStyle = demoBoxStyle.
				BorderForeground(colorDim).
				Foreground(colorDim)
)

// demoModel is the bubbletea model for interactive group resizing.
type demoModel struct {
	group    *panels.Group
	boundary int // index of the boundary between panel i and i+1
	width    int
	height   int
}

func newDemoModel(g *panels.Group) demoModel {
	return demoModel{group: g, width: 80, height: 24}
}

func (m demoModel) Init() tea.Cmd {
	return nil
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			if n := len(m.group.Panels()); n > 1 {
				m.boundary = (m.boundary + 1) % (n - 1)
			}
		case "shift+tab":
			if n := len(m.group.Panels()); n > 1 {
				m.boundary = (m.boundary + n - 2) % (n - 1)
			}
		case "left", "up", "h", "k":
			m.resize(-m.step())
		case "right", "down", "l", "j":
			m.resize(m.step())
		case "c":
			m.group.CollapsePanel(m.beforePanel().ID)
		case "e":
			m.group.ExpandPanel(m.beforePanel().ID)
		case "r":
			m.group.SetLayout(panels.DefaultLayout(m.group.Space(), m.group.Panels()))
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.group.Space().Units == panels.UnitsPixels {
			m.group.SetAvailableSize(float64(m.contentExtent()))
			m.group.Layout()
		}
	}
	return m, nil
}

// resize moves the selected boundary by delta, in the group's units.
func (m demoModel) resize(delta float64) {
	group := m.group.Panels()
	if m.boundary+1 >= len(group) {
		return
	}
	m.group.ResizeBoundary(group[m.boundary].ID, group[m.boundary+1].ID, delta, panels.EventKeyboard)
}

// step returns one keyboard step in the group's units.
func (m demoModel) step() float64 {
	space := m.group.Space()
	if space.Units == panels.UnitsPixels && space.Measured() {
		return defaultStep / 100 * space.AvailableSize
	}
	return defaultStep
}

// beforePanel returns the panel on the near side of the selected boundary.
func (m demoModel) beforePanel() *panels.Panel {
	return m.group.Panels()[m.boundary]
}

// contentExtent returns the extent available to panel boxes along the
// resize axis, excluding the header and footer chrome.
func (m demoModel) contentExtent() int {
	if m.group.Direction() == panels.Vertical {
		extent := m.height - 6
		if extent < 8 {
			extent = 8
		}
		return extent
	}
	extent := m.width - 2
	if extent < 20 {
		extent = 20
	}
	return extent
}

func (m demoModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Panel Group"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("tab: boundary  arrows: resize  c/e: collapse/expand  r: reset  q: quit"))
	b.WriteString("\n\n")

	group := m.group.Panels()
	boxes := make([]string, len(group))
	extent := m.contentExtent()
	for i, p := range group {
		size := m.group.PanelSize(p.ID)
		span := int(size / 100 * float64(extent))
		if span < 4 {
			span = 4
		}

		style := demoBoxStyle
		if i == m.boundary || i == m.boundary+1 {
			style = demoActiveBoxStyle
		}
		label := fmt.Sprintf("%s\n%.1f%%", p.ID, size)
		if m.group.IsCollapsed(p.ID) {
			style = demoCollapsedStyle
			label = p.ID
		}

		if m.group.Direction() == panels.Vertical {
			boxes[i] = style.Width(m.width - 4).Height(span).Render(label)
		} else {
			boxes[i] = style.Width(span - 2).Height(m.height - 8).Render(label)
		}
	}

	if m.group.Direction() == panels.Vertical {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, boxes...))
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	}

	return b.String()
}
