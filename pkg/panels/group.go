package panels

import (
	"math"
	"slices"
)

// DragState captures the boundary and size vector at drag-start time. The
// base vector is the rebase point for every delta in the gesture, so
// reversing a drag restores the pre-drag layout exactly.
type DragState struct {
	IDBefore string
	IDAfter  string
	Base     []float64
}

// Group owns an ordered collection of panels sharing one resize axis and
// one sizing unit, together with the mutable per-group state the engine
// carries between gesture steps: the committed size vector, the active
// drag baseline, the collapse history, and the last-notified map.
//
// Group is not safe for concurrent use. It models the engine's
// single-threaded event loop; a concurrent caller must serialize all
// mutations per group, for example through one mutation queue.
type Group struct {
	direction Direction
	space     Space

	panels []*Panel
	sizes  []float64
	drag   *DragState

	// collapseHistory maps panel IDs to their last pre-collapse size,
	// consumed by ExpandPanel.
	collapseHistory map[string]float64
	// lastNotified deduplicates callback dispatch; see DispatchCallbacks.
	lastNotified map[string]float64
}

// NewGroup creates an empty group on the given axis and sizing unit. The
// available size starts unmeasured; pixel-unit groups skip constraint
// enforcement until SetAvailableSize is called.
func NewGroup(direction Direction, units Units) *Group {
	return &Group{
		direction:       direction,
		space:           Unmeasured(units),
		collapseHistory: make(map[string]float64),
		lastNotified:    make(map[string]float64),
	}
}

// Direction returns the group's resize axis.
func (g *Group) Direction() Direction { return g.direction }

// Space returns the group's current measuring context.
func (g *Group) Space() Space { return g.space }

// SetAvailableSize records the container's measured extent along the
// resize axis, in physical units.
func (g *Group) SetAvailableSize(size float64) {
	g.space.AvailableSize = size
}

// Panels returns the group's panels in sorted order.
func (g *Group) Panels() []*Panel {
	return slices.Clone(g.panels)
}

// Sizes returns a copy of the committed size vector, one percentage per
// panel in sorted order.
func (g *Group) Sizes() []float64 {
	return slices.Clone(g.sizes)
}

// Register adds a panel to the group and re-sorts the siblings by their
// order keys. The size vector is not touched; call Layout once the group's
// panels are in place.
func (g *Group) Register(p *Panel) error {
	if p == nil || p.ID == "" {
		return ErrInvalidPanelID
	}
	if indexOf(g.panels, p.ID) >= 0 {
		return ErrDuplicatePanelID
	}
	g.panels = append(g.panels, p)
	SortPanels(g.panels)
	return nil
}

// Unregister removes a panel. Its size is dropped from the committed
// vector by index realignment and the remainder is revalidated so the
// group total returns to 100.
func (g *Group) Unregister(id string) error {
	i := indexOf(g.panels, id)
	if i < 0 {
		return ErrUnknownPanel
	}
	g.panels = slices.Delete(g.panels, i, i+1)
	delete(g.collapseHistory, id)
	delete(g.lastNotified, id)
	if i < len(g.sizes) {
		g.sizes = slices.Delete(slices.Clone(g.sizes), i, i+1)
	}
	if len(g.panels) == 0 {
		g.sizes = nil
		return nil
	}
	if len(g.sizes) == len(g.panels) {
		g.commit(ValidateLayout(g.space, g.panels, g.sizes, g.sizes))
	}
	return nil
}

// Layout computes or repairs the committed size vector and notifies any
// panel whose size changed. With no committed vector, or after the panel
// set changed shape, the default layout is computed; otherwise the
// committed vector is revalidated against the current constraints, which
// is what a container resize wants for pixel-unit groups.
func (g *Group) Layout() []float64 {
	if len(g.sizes) != len(g.panels) {
		g.commit(DefaultLayout(g.space, g.panels))
	} else {
		g.commit(ValidateLayout(g.space, g.panels, g.sizes, g.sizes))
	}
	return g.Sizes()
}

// SetLayout replaces the committed vector with a validated copy of
// candidate, for example when restoring persisted state.
func (g *Group) SetLayout(candidate []float64) []float64 {
	g.commit(ValidateLayout(g.space, g.panels, candidate, g.sizes))
	return g.Sizes()
}

// StartDrag begins a gesture at the boundary between idBefore and
// idAfter, snapshotting the committed vector as the gesture baseline.
func (g *Group) StartDrag(idBefore, idAfter string) error {
	if indexOf(g.panels, idBefore) < 0 || indexOf(g.panels, idAfter) < 0 {
		return ErrUnknownPanel
	}
	g.drag = &DragState{IDBefore: idBefore, IDAfter: idAfter, Base: slices.Clone(g.sizes)}
	return nil
}

// Drag applies one step of the active gesture. delta is the cumulative
// offset from the drag-start position, in the group's units; passing the
// same delta twice is a no-op and passing 0 restores the baseline. The
// result is committed and callbacks fire before Drag returns, so the next
// step always propagates against the latest vector.
func (g *Group) Drag(delta float64, event EventKind) []float64 {
	if g.drag == nil {
		return g.Sizes()
	}
	next := ApplyDelta(g.space, g.panels, g.drag.IDBefore, g.drag.IDAfter, delta, event, g.sizes, g.drag.Base, g.collapseHistory)
	g.commit(next)
	return g.Sizes()
}

// EndDrag ends the active gesture, if any. The last committed vector
// stands; there is nothing to roll back.
func (g *Group) EndDrag() { g.drag = nil }

// ResizeBoundary applies a single-shot delta at a boundary outside any
// drag, such as one keyboard step. The committed vector doubles as the
// baseline.
func (g *Group) ResizeBoundary(idBefore, idAfter string, delta float64, event EventKind) []float64 {
	if indexOf(g.panels, idBefore) < 0 || indexOf(g.panels, idAfter) < 0 {
		return g.Sizes()
	}
	next := ApplyDelta(g.space, g.panels, idBefore, idAfter, delta, event, g.sizes, nil, g.collapseHistory)
	g.commit(next)
	return g.Sizes()
}

// Resize moves a single panel to the given size, in percentages, by
// trading space with its neighbor chain through the delta engine. The
// request is subject to the same constraints as a drag and may apply
// partially or not at all.
func (g *Group) Resize(id string, size float64) error {
	i := indexOf(g.panels, id)
	if i < 0 {
		return ErrUnknownPanel
	}
	if i < len(g.sizes) {
		g.resizePanelTo(i, size)
	}
	return nil
}

// CollapsePanel parks a collapsible panel at its collapsed size, records
// its current size in the collapse history, and hands the freed space to
// its neighbor chain. Collapsing a non-collapsible or already collapsed
// panel is a no-op.
func (g *Group) CollapsePanel(id string) error {
	i := indexOf(g.panels, id)
	if i < 0 {
		return ErrUnknownPanel
	}
	p := g.panels[i]
	if !p.Constraints.Collapsible || i >= len(g.sizes) {
		return nil
	}
	_, _, collapsedSize := bounds(g.space, p)
	if math.IsNaN(collapsedSize) || fuzzyEqual(g.sizes[i], collapsedSize) {
		return nil
	}
	g.collapseHistory[id] = g.sizes[i]
	g.resizePanelTo(i, collapsedSize)
	return nil
}

// ExpandPanel restores a collapsed panel to its last pre-collapse size,
// falling back to its minimum size when no history exists. Expanding a
// panel that is not collapsed is a no-op.
func (g *Group) ExpandPanel(id string) error {
	i := indexOf(g.panels, id)
	if i < 0 {
		return ErrUnknownPanel
	}
	p := g.panels[i]
	if !p.Constraints.Collapsible || i >= len(g.sizes) {
		return nil
	}
	minSize, _, collapsedSize := bounds(g.space, p)
	if math.IsNaN(collapsedSize) || !fuzzyEqual(g.sizes[i], collapsedSize) {
		return nil
	}
	size, ok := g.collapseHistory[id]
	if !ok || size < minSize {
		size = minSize
	}
	g.resizePanelTo(i, size)
	return nil
}

// resizePanelTo drives the panel at index i toward target through the
// delta engine, using the boundary the panel shares with its next sibling,
// or its previous one for the last panel. Exchanging space at a boundary
// keeps the adjustment local to the panel's neighbor chain instead of
// redistributing it across the whole group.
func (g *Group) resizePanelTo(i int, target float64) {
	current := g.sizes[i]
	if fuzzyEqual(current, target) {
		return
	}
	var idBefore, idAfter string
	var delta float64
	if i == len(g.panels)-1 {
		if i == 0 {
			return
		}
		idBefore, idAfter = g.panels[i-1].ID, g.panels[i].ID
		delta = current - target
	} else {
		idBefore, idAfter = g.panels[i].ID, g.panels[i+1].ID
		delta = target - current
	}
	if g.space.Units == UnitsPixels && g.space.Measured() {
		delta = delta / 100 * g.space.AvailableSize
	}
	next := ApplyDelta(g.space, g.panels, idBefore, idAfter, delta, EventPointer, g.sizes, nil, g.collapseHistory)
	g.commit(next)
}

// PanelSize returns the committed size of the panel, or NaN if the panel
// is unknown or has no committed size yet.
func (g *Group) PanelSize(id string) float64 {
	i := indexOf(g.panels, id)
	if i < 0 || i >= len(g.sizes) {
		return math.NaN()
	}
	return g.sizes[i]
}

// IsCollapsed reports whether the panel is parked at its collapsed size.
func (g *Group) IsCollapsed(id string) bool {
	i := indexOf(g.panels, id)
	if i < 0 || i >= len(g.sizes) {
		return false
	}
	p := g.panels[i]
	if !p.Constraints.Collapsible {
		return false
	}
	_, _, collapsedSize := bounds(g.space, p)
	return !math.IsNaN(collapsedSize) && fuzzyEqual(g.sizes[i], collapsedSize)
}

// commit installs next as the committed vector, records collapse
// transitions triggered outside an active drag (ApplyDelta records its
// own during drags, against the gesture baseline), and fires callbacks.
func (g *Group) commit(next []float64) {
	if g.drag == nil {
		for i, p := range g.panels {
			if i >= len(next) || i >= len(g.sizes) || !p.Constraints.Collapsible {
				continue
			}
			_, _, collapsedSize := bounds(g.space, p)
			if math.IsNaN(collapsedSize) {
				continue
			}
			if fuzzyEqual(next[i], collapsedSize) && g.sizes[i] > collapsedSize {
				g.collapseHistory[p.ID] = g.sizes[i]
			}
		}
	}
	g.sizes = next
	DispatchCallbacks(g.space, g.panels, g.sizes, g.lastNotified)
}
