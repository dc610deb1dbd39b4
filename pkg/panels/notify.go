package panels

import "math"

// DispatchCallbacks compares sizes against the last values delivered to
// each panel's callbacks and fires the resize and collapse-transition
// hooks exactly once per observed change. lastNotified maps panel IDs to
// the last size a callback saw and is updated in place; it exists purely
// to deduplicate notifications and plays no part in layout math.
//
// The resize callback receives the new size and the previously notified
// one, nil on the first notification. The collapse callback fires only on
// the transition where a panel's size first equals, or first departs from,
// its collapsed size.
//
// An index in sizes with no registered panel is skipped silently: during
// mount, a size vector can momentarily outrun panel registration.
func DispatchCallbacks(s Space, panels []*Panel, sizes []float64, lastNotified map[string]float64) {
	for i, size := range sizes {
		if i >= len(panels) {
			return
		}
		p := panels[i]
		last, seen := lastNotified[p.ID]
		if seen && fuzzyEqual(last, size) {
			continue
		}
		lastNotified[p.ID] = size

		if p.OnResize != nil {
			var prev *float64
			if seen {
				v := last
				prev = &v
			}
			p.OnResize(size, prev)
		}

		if p.Constraints.Collapsible && p.OnCollapse != nil {
			_, _, collapsedSize := bounds(s, p)
			if math.IsNaN(collapsedSize) {
				continue
			}
			wasCollapsed := seen && fuzzyEqual(last, collapsedSize)
			isCollapsed := fuzzyEqual(size, collapsedSize)
			if wasCollapsed != isCollapsed {
				p.OnCollapse(isCollapsed)
			}
		}
	}
}
