package panels

import "math"

// Space describes the measuring context shared by every panel in a group:
// the unit panels declare their constraints in and the container's current
// extent along the resize axis, in physical units. AvailableSize is NaN
// until the container has been measured.
type Space struct {
	Units         Units
	AvailableSize float64
}

// Unmeasured returns a Space whose available size is not yet known.
func Unmeasured(units Units) Space {
	return Space{Units: units, AvailableSize: math.NaN()}
}

// Measured reports whether the container's extent is known and usable.
func (s Space) Measured() bool {
	return !math.IsNaN(s.AvailableSize) && s.AvailableSize > 0
}

// Normalize converts a size-like value declared in the group's units to a
// percentage of the available space. Percentage values pass through
// unchanged. Pixel values return NaN when the container has not been
// measured yet; downstream computations skip NaN bounds rather than fail.
func (s Space) Normalize(value float64) float64 {
	if s.Units == UnitsPercentages {
		return value
	}
	if !s.Measured() {
		return math.NaN()
	}
	return value / s.AvailableSize * 100
}
