package panels

import (
	"math"

	"github.com/hipstersmoothie/react-resizable-panels/pkg/observability"
)

// bounds resolves a panel's declared constraints against the measuring
// context, returning the effective minimum, maximum, and collapsed sizes
// as percentages. Individually invalid declarations are substituted with
// corrected values and reported through the observability hooks; the
// engine never fails on malformed input.
//
// When the container is unmeasured and the group declares pixel units,
// all three results are NaN and callers skip constraint enforcement.
func bounds(s Space, p *Panel) (minSize, maxSize, collapsedSize float64) {
	minSize = s.Normalize(p.Constraints.MinSize)
	if minSize < 0 {
		observability.Layout().OnConstraintSubstituted(p.ID, "minSize", minSize, 0)
		minSize = 0
	}
	if minSize > 100 {
		observability.Layout().OnConstraintSubstituted(p.ID, "minSize", minSize, 100)
		minSize = 100
	}

	maxSize = 100
	if p.Constraints.MaxSize != nil {
		maxSize = s.Normalize(*p.Constraints.MaxSize)
		if maxSize < minSize || maxSize > 100 {
			substituted := math.Min(100, math.Max(minSize, maxSize))
			observability.Layout().OnConstraintSubstituted(p.ID, "maxSize", maxSize, substituted)
			maxSize = substituted
		}
	}

	collapsedSize = s.Normalize(p.Constraints.CollapsedSize)
	if collapsedSize < 0 {
		observability.Layout().OnConstraintSubstituted(p.ID, "collapsedSize", collapsedSize, 0)
		collapsedSize = 0
	}
	if collapsedSize > minSize {
		observability.Layout().OnConstraintSubstituted(p.ID, "collapsedSize", collapsedSize, minSize)
		collapsedSize = minSize
	}
	return minSize, maxSize, collapsedSize
}

// ResizePanel returns the nearest size to nextSize that satisfies the
// panel's constraints, given prevSize as the panel's current committed
// size. All sizes are percentages of the group's available space. This is
// the single authority on whether a size is legal; every other operation
// delegates here rather than re-implementing bounds checks.
//
// Collapsible panels get hysteresis around the collapse threshold. An
// expanded panel snaps to its collapsed size once nextSize falls to half
// of its minimum, so the collapse happens before the hard floor instead of
// flickering at it. A collapsed panel under pointer control stays parked
// until nextSize reaches the minimum, crossing the dead zone in one step;
// a keyboard-driven change expands immediately and is then pulled up to
// the minimum by the final clamp.
func ResizePanel(s Space, p *Panel, prevSize, nextSize float64, event EventKind) float64 {
	minSize, maxSize, collapsedSize := bounds(s, p)
	if math.IsNaN(minSize) || math.IsNaN(maxSize) || math.IsNaN(collapsedSize) {
		// Container not measured yet; nothing to enforce.
		return nextSize
	}

	if p.Constraints.Collapsible {
		if prevSize > collapsedSize {
			if nextSize <= minSize/2+collapsedSize {
				return collapsedSize
			}
		} else if event != EventKeyboard && nextSize < minSize && !fuzzyEqual(nextSize, minSize) {
			return collapsedSize
		}
	}

	return math.Min(maxSize, math.Max(minSize, nextSize))
}
