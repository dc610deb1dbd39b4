package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hipstersmoothie/react-resizable-panels/pkg/panels"
)

func demoGroup(t *testing.T) *panels.Group {
	t.Helper()
	g := panels.NewGroup(panels.Horizontal, panels.UnitsPercentages)
	for _, p := range []*panels.Panel{
		{ID: "a", Constraints: panels.Constraints{MinSize: 10, Collapsible: true}},
		{ID: "b", Constraints: panels.Constraints{MinSize: 10}},
		{ID: "c", Constraints: panels.Constraints{MinSize: 10}},
	} {
		if err := g.Register(p); err != nil {
			t.Fatal(err)
		}
	}
	g.Layout()
	return g
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestDemoModelTabCyclesBoundaries(t *testing.T) {
	m := newDemoModel(demoGroup(t))

	next, _ := m.Update(key("tab"))
	m = next.(demoModel)
	if m.boundary != 1 {
		t.Errorf("boundary = %d, want 1", m.boundary)
	}

	next, _ = m.Update(key("tab"))
	m = next.(demoModel)
	if m.boundary != 0 {
		t.Errorf("boundary = %d, want wrap to 0", m.boundary)
	}
}

func TestDemoModelArrowsResize(t *testing.T) {
	g := demoGroup(t)
	m := newDemoModel(g)

	before := g.PanelSize("a")
	next, _ := m.Update(key("right"))
	m = next.(demoModel)
	if got := g.PanelSize("a"); got != before+defaultStep {
		t.Errorf("after right arrow a = %v, want %v", got, before+defaultStep)
	}

	next, _ = m.Update(key("left"))
	_ = next
	if got := g.PanelSize("a"); got != before {
		t.Errorf("after left arrow a = %v, want %v", got, before)
	}
}

func TestDemoModelCollapseExpand(t *testing.T) {
	g := demoGroup(t)
	m := newDemoModel(g)

	next, _ := m.Update(key("c"))
	m = next.(demoModel)
	if !g.IsCollapsed("a") {
		t.Fatal("a should be collapsed after c")
	}

	next, _ = m.Update(key("e"))
	_ = next
	if g.IsCollapsed("a") {
		t.Fatal("a should be expanded after e")
	}
}

func TestDemoModelQuit(t *testing.T) {
	m := newDemoModel(demoGroup(t))
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("q produced %v, want tea.Quit", msg)
	}
}
