package panels

import (
	"errors"
	"sort"
)

var (
	// ErrInvalidPanelID is returned by [Group.Register] when the panel is
	// nil or its ID is empty. All panels must have non-empty identifiers.
	ErrInvalidPanelID = errors.New("panel ID must not be empty")

	// ErrDuplicatePanelID is returned by [Group.Register] when a panel with
	// the same ID is already registered. Panel IDs must be unique per group.
	ErrDuplicatePanelID = errors.New("duplicate panel ID")

	// ErrUnknownPanel is returned by Group operations that reference a
	// panel ID not present in the group.
	ErrUnknownPanel = errors.New("unknown panel")
)

// Units is the sizing unit a group's panels declare their constraints in.
type Units int

const (
	// UnitsPercentages declares sizes as percentages of the group's
	// available space.
	UnitsPercentages Units = iota
	// UnitsPixels declares sizes in physical units; they are normalized
	// against the group's measured available size.
	UnitsPixels
)

// String returns the unit name used in declaration files.
func (u Units) String() string {
	if u == UnitsPixels {
		return "pixels"
	}
	return "percentages"
}

// Direction is the resize axis shared by all panels in a group.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

// String returns the direction name used in declaration files.
func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// EventKind distinguishes pointer/touch resize gestures from keyboard
// ones. The distinction only affects collapse hysteresis: a collapsed
// panel under pointer control stays parked until the pointer travels the
// whole dead zone, while a keyboard step expands it immediately.
type EventKind int

const (
	EventPointer EventKind = iota
	EventKeyboard
)

// ResizeFunc is invoked when a panel's committed size changes. prevSize is
// nil the first time the panel is notified.
type ResizeFunc func(size float64, prevSize *float64)

// CollapseFunc is invoked when a collapsible panel transitions into or out
// of its collapsed size.
type CollapseFunc func(collapsed bool)

// Constraints holds a panel's declared sizing bounds, expressed in the
// group's units. The zero value is a fully flexible panel: no minimum, no
// maximum, no default, not collapsible.
type Constraints struct {
	// MinSize is the smallest size the panel accepts while expanded.
	MinSize float64
	// MaxSize caps the panel's size. Nil means no explicit cap; an
	// effective cap is still inferred from the siblings' floors during
	// leftover distribution.
	MaxSize *float64
	// DefaultSize is the panel's initial size. Nil panels split the space
	// left over after defaults are honored.
	DefaultSize *float64
	// CollapsedSize is the parked size a collapsible panel snaps to when
	// dragged below its effective floor.
	CollapsedSize float64
	// Collapsible enables the collapse/expand behavior around MinSize.
	Collapsible bool
}

// Panel is one resizable region within a group, identified by a stable ID.
// Panels are owned by exactly one [Group] and referenced by ID.
type Panel struct {
	ID string

	// Order determines the panel's position among its siblings. Panels
	// without an explicit order sort first, preserving relative position.
	Order *int

	Constraints Constraints

	// OnResize and OnCollapse are optional hooks into the UI layer.
	OnResize   ResizeFunc
	OnCollapse CollapseFunc
}

// SortPanels stably sorts panels by their explicit order key. Panels
// without an order sort first; ties preserve relative position.
func SortPanels(panels []*Panel) {
	sort.SliceStable(panels, func(i, j int) bool {
		a, b := panels[i].Order, panels[j].Order
		switch {
		case a == nil:
			return b != nil
		case b == nil:
			return false
		default:
			return *a < *b
		}
	})
}

// indexOf returns the index of the panel with the given ID, or -1.
func indexOf(panels []*Panel, id string) int {
	for i, p := range panels {
		if p.ID == id {
			return i
		}
	}
	return -1
}
