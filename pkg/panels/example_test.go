package panels_test

import (
	"fmt"

	"github.com/hipstersmoothie/react-resizable-panels/pkg/panels"
)

func ExampleDefaultLayout() {
	space := panels.Space{Units: panels.UnitsPercentages}
	defaultSize := 20.0
	group := []*panels.Panel{
		{ID: "sidebar", Constraints: panels.Constraints{DefaultSize: &defaultSize}},
		{ID: "editor"},
		{ID: "preview"},
	}

	fmt.Println(panels.DefaultLayout(space, group))
	// Output: [20 40 40]
}

func ExampleGroup_Drag() {
	g := panels.NewGroup(panels.Horizontal, panels.UnitsPercentages)
	g.Register(&panels.Panel{ID: "sidebar", Constraints: panels.Constraints{MinSize: 10}})
	g.Register(&panels.Panel{ID: "main", Constraints: panels.Constraints{MinSize: 10}})
	g.Layout()

	g.StartDrag("sidebar", "main")
	fmt.Println(g.Drag(-20, panels.EventPointer))
	g.EndDrag()
	// Output: [30 70]
}
