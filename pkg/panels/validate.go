package panels

import "math"

// ValidateLayout repairs an arbitrary candidate vector, for example one
// supplied by a caller restoring persisted state, so that every panel's
// size satisfies its constraints and the total returns to 100 within
// tolerance. Panels are assumed to be in sorted order.
//
// prev supplies each panel's committed size for collapse hysteresis; it
// may be nil when no previous layout exists, in which case each candidate
// size doubles as its own previous value.
//
// Every panel is clamped independently first; the difference between 100
// and the clamped total is then swept across the non-collapsed panels
// under the same sibling-floor cap inference as [DefaultLayout]. A
// leftover the sweep cannot absorb, of either sign, is reported through
// the observability hooks and the best-effort vector is returned anyway.
func ValidateLayout(s Space, panels []*Panel, candidate, prev []float64) []float64 {
	sizes := make([]float64, len(panels))
	collapsed := make([]bool, len(panels))

	for i, p := range panels {
		size := 0.0
		if i < len(candidate) {
			size = candidate[i]
		}
		prevSize := size
		if i < len(prev) {
			prevSize = prev[i]
		}
		safe := ResizePanel(s, p, prevSize, size, EventPointer)
		sizes[i] = safe
		if p.Constraints.Collapsible {
			if _, _, collapsedSize := bounds(s, p); fuzzyEqual(safe, collapsedSize) {
				collapsed[i] = true
			}
		}
	}

	leftover := 100 - sum(sizes)
	if math.IsNaN(leftover) {
		return sizes
	}
	distributeLeftover(s, panels, sizes, collapsed, leftover, true)
	return sizes
}
