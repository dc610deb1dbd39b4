package panels

import (
	"math"
	"slices"
)

// ApplyDelta redistributes a signed resize delta applied at the boundary
// between idBefore and idAfter, shrinking a chain of panels on one side
// and growing the other side by the amount freed. Panels are assumed to be
// in sorted order.
//
// delta is expressed in the group's units and is measured from baseSizes,
// the vector committed when the gesture began; rebasing every step on the
// drag-start baseline prevents cumulative rounding drift and lets a
// reversed drag restore the original layout exactly, including panels that
// were force-collapsed mid-gesture. A nil baseSizes rebases on prevSizes,
// which is what single-shot resizes (one keyboard step) want.
//
// A negative delta shrinks the chain starting at idBefore walking toward
// the first panel and grows the after side; a positive delta shrinks the
// chain starting at idAfter walking toward the last panel and grows the
// before side.
//
// A keyboard step that would expand a collapsed panel at the boundary is
// amplified to the panel's collapsed-to-minimum span, matching the
// immediate keyboard expansion of [ResizePanel]: the shrink side frees
// the whole span so the expansion keeps the total at 100.
//
// history, when non-nil, records the pre-collapse size of any panel the
// shrink walk collapses, keyed by panel ID.
//
// The gesture is rejected in two ways: if no panel on the shrink side can
// move at all, the drag-start baseline is returned; if the grow side is
// pinned at its maximums and cannot absorb what was freed, prevSizes is
// returned unchanged. Rejection is expected steady-state behavior at the
// extremes of a drag, not an error, and is not reported anywhere.
func ApplyDelta(s Space, panels []*Panel, idBefore, idAfter string, delta float64, event EventKind, prevSizes, baseSizes []float64, history map[string]float64) []float64 {
	base := baseSizes
	if base == nil {
		base = prevSizes
	}

	deltaPct := delta
	if s.Units == UnitsPixels {
		deltaPct = s.Normalize(delta)
	}
	if math.IsNaN(deltaPct) || deltaPct == 0 {
		return slices.Clone(base)
	}

	before := indexOf(panels, idBefore)
	after := indexOf(panels, idAfter)
	if before < 0 || after < 0 || len(base) != len(panels) {
		return slices.Clone(base)
	}

	next := slices.Clone(base)
	magnitude := math.Abs(deltaPct)

	// A keyboard step toward expanding a collapsed panel is amplified to
	// the panel's full collapsed-to-minimum span. The clamp expands such a
	// panel to its minimum in one step, so the shrink side must free the
	// whole span up front or the totals would diverge.
	if event == EventKeyboard {
		growPivot := after
		if deltaPct > 0 {
			growPivot = before
		}
		if p := panels[growPivot]; p.Constraints.Collapsible {
			minSize, _, collapsedSize := bounds(s, p)
			if !math.IsNaN(minSize) && fuzzyEqual(base[growPivot], collapsedSize) {
				if span := minSize - collapsedSize; span > magnitude {
					magnitude = span
				}
			}
		}
	}

	// Phase 1: walk the shrink side away from the boundary, taking from
	// each panel as much of the outstanding delta as its clamp allows. A
	// panel that collapses mid-walk frees its full base-to-collapsed span,
	// which can exceed the naive per-step amount, so the outstanding delta
	// is recomputed from the running total on every step.
	shrinkStart, step := before, -1
	if deltaPct > 0 {
		shrinkStart, step = after, 1
	}
	applied := 0.0
	for index := shrinkStart; index >= 0 && index < len(panels); index += step {
		p := panels[index]
		baseSize := base[index]
		safe := ResizePanel(s, p, baseSize, baseSize-(magnitude-applied), event)
		if fuzzyEqual(baseSize, safe) {
			continue
		}
		if history != nil && p.Constraints.Collapsible {
			if _, _, collapsedSize := bounds(s, p); fuzzyEqual(safe, collapsedSize) && baseSize > collapsedSize {
				history[p.ID] = baseSize
			}
		}
		applied += baseSize - safe
		next[index] = safe
		if fuzzyCompare(applied, magnitude) >= 0 {
			break
		}
	}

	// Every panel on the shrink side is already at its limit.
	if fuzzyCompare(applied, 0) == 0 {
		return slices.Clone(base)
	}

	// Phase 2: walk the grow side in the opposite direction, handing each
	// panel as much of the freed space as its clamp accepts.
	growStart := after
	if deltaPct > 0 {
		growStart = before
	}
	remaining := applied
	for index := growStart; index >= 0 && index < len(panels); index -= step {
		p := panels[index]
		baseSize := base[index]
		safe := ResizePanel(s, p, baseSize, baseSize+remaining, event)
		if fuzzyEqual(baseSize, safe) {
			continue
		}
		grown := safe - baseSize
		if remaining > 0 && fuzzyCompare(grown, remaining) > 0 {
			// The clamp forced more growth than the shrink side freed,
			// e.g. a collapsed panel snapping to its minimum when the
			// shrink chain hit its floors first. Absorbing the overshoot
			// would push the total past 100, so the gesture is rejected.
			return slices.Clone(prevSizes)
		}
		remaining -= grown
		next[index] = safe
		if fuzzyCompare(remaining, 0) <= 0 {
			break
		}
	}
	if fuzzyCompare(remaining, 0) > 0 {
		return slices.Clone(prevSizes)
	}
	return next
}
