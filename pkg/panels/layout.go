package panels

import (
	"math"

	"github.com/hipstersmoothie/react-resizable-panels/pkg/observability"
)

// DefaultLayout computes the initial size for every panel, summing to 100
// percent of the group's available space. Panels are assumed to be in
// sorted order (see [SortPanels]).
//
// The computation runs in three passes: explicit default sizes are honored
// first, the remaining budget is split evenly across panels without a
// default subject to their bounds, and any leftover is swept off across
// the group. A configuration whose constraints cannot reach a 100 total is
// reported through the observability hooks and the best-effort vector is
// returned regardless.
func DefaultLayout(s Space, panels []*Panel) []float64 {
	sizes := make([]float64, len(panels))
	collapsed := make([]bool, len(panels))
	assigned := make([]bool, len(panels))

	// Pass 1: honor explicit defaults.
	remaining := 100.0
	flexible := 0
	for i, p := range panels {
		var size float64
		if p.Constraints.DefaultSize != nil {
			size = s.Normalize(*p.Constraints.DefaultSize)
		} else {
			size = math.NaN()
		}
		if math.IsNaN(size) {
			flexible++
			continue
		}
		minSize, maxSize, _ := bounds(s, p)
		if !math.IsNaN(minSize) && (size < minSize || size > maxSize) {
			pulled := math.Min(maxSize, math.Max(minSize, size))
			observability.Layout().OnConstraintSubstituted(p.ID, "defaultSize", size, pulled)
			size = pulled
		}
		sizes[i] = size
		assigned[i] = true
		remaining -= size
	}

	// Pass 2: split the rest evenly across panels without a default.
	if flexible > 0 {
		share := remaining / float64(flexible)
		for i, p := range panels {
			if assigned[i] {
				continue
			}
			minSize, maxSize, collapsedSize := bounds(s, p)
			if math.IsNaN(minSize) {
				sizes[i] = share
				continue
			}
			size := math.Min(maxSize, math.Max(minSize, share))
			if p.Constraints.Collapsible && fuzzyEqual(size, collapsedSize) {
				collapsed[i] = true
			}
			sizes[i] = size
		}
	}

	// Pass 3: sweep off whatever the clamps left over.
	distributeLeftover(s, panels, sizes, collapsed, 100-sum(sizes), false)
	return sizes
}

// distributeLeftover sweeps panels in order, growing or shrinking each one
// toward absorbing leftover, subject to its floor and cap. For a panel
// with no explicit maximum the cap is inferred as 100 minus the combined
// floors of its siblings, so one unconstrained panel cannot absorb space
// that would push a sibling below its own floor. The sweep stops once the
// leftover rounds to zero; panels flagged collapsed keep their collapsed
// size as floor and are skipped entirely when skipCollapsed is set.
//
// An unabsorbed leftover is reported through the observability hooks and
// returned; sizes holds the best-effort result either way.
func distributeLeftover(s Space, panels []*Panel, sizes []float64, collapsed []bool, leftover float64, skipCollapsed bool) float64 {
	for i, p := range panels {
		if math.Abs(leftover) <= totalTolerance {
			leftover = 0
			break
		}
		if skipCollapsed && collapsed[i] {
			continue
		}
		minSize, maxSize, collapsedSize := bounds(s, p)
		if math.IsNaN(minSize) {
			continue
		}
		floor := minSize
		if collapsed[i] {
			floor = collapsedSize
		}
		ceiling := maxSize
		if p.Constraints.MaxSize == nil {
			ceiling = math.Min(maxSize, 100-siblingFloors(s, panels, collapsed, i))
		}
		if ceiling < floor {
			// Over-constrained group: the panel's own floor outranks the
			// inferred cap, and the unsatisfied total is reported below.
			ceiling = floor
		}
		next := math.Min(ceiling, math.Max(floor, sizes[i]+leftover))
		leftover -= next - sizes[i]
		sizes[i] = next
	}
	if math.Abs(leftover) > totalTolerance {
		observability.Layout().OnUnsatisfiedTotal(sum(sizes), leftover)
	}
	return leftover
}

// siblingFloors returns the combined floor of every panel except the one
// at skip: the collapsed size for collapsed panels, the minimum otherwise.
func siblingFloors(s Space, panels []*Panel, collapsed []bool, skip int) float64 {
	total := 0.0
	for i, p := range panels {
		if i == skip {
			continue
		}
		minSize, _, collapsedSize := bounds(s, p)
		if math.IsNaN(minSize) {
			continue
		}
		if collapsed[i] {
			total += collapsedSize
		} else {
			total += minSize
		}
	}
	return total
}

// sum returns the total of a size vector.
func sum(sizes []float64) float64 {
	total := 0.0
	for _, size := range sizes {
		total += size
	}
	return total
}
