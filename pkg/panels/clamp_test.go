package panels

import (
	"math"
	"testing"
)

func TestResizePanel(t *testing.T) {
	percent := Space{Units: UnitsPercentages}
	collapsible := Constraints{MinSize: 20, CollapsedSize: 0, Collapsible: true}

	tests := []struct {
		name        string
		space       Space
		constraints Constraints
		prev, next  float64
		event       EventKind
		want        float64
	}{
		{
			name:        "BelowMinNonCollapsible",
			space:       percent,
			constraints: Constraints{MinSize: 20},
			prev:        30, next: 5, event: EventPointer,
			want: 20,
		},
		{
			name:        "AboveMax",
			space:       percent,
			constraints: Constraints{MaxSize: f64(60)},
			prev:        50, next: 80, event: EventPointer,
			want: 60,
		},
		{
			name:        "WithinBounds",
			space:       percent,
			constraints: Constraints{MinSize: 10, MaxSize: f64(90)},
			prev:        50, next: 42, event: EventPointer,
			want: 42,
		},
		{
			name:        "PointerCollapsesPastHalfMin",
			space:       percent,
			constraints: collapsible,
			prev:        30, next: 9, event: EventPointer,
			want: 0,
		},
		{
			name:        "PointerHoldsAtMinAboveHalf",
			space:       percent,
			constraints: collapsible,
			prev:        30, next: 11, event: EventPointer,
			want: 20,
		},
		{
			name:        "PointerStaysCollapsedInDeadZone",
			space:       percent,
			constraints: collapsible,
			prev:        0, next: 15, event: EventPointer,
			want: 0,
		},
		{
			name:        "PointerExpandsAtMin",
			space:       percent,
			constraints: collapsible,
			prev:        0, next: 20, event: EventPointer,
			want: 20,
		},
		{
			name:        "KeyboardExpandsThroughDeadZone",
			space:       percent,
			constraints: collapsible,
			prev:        0, next: 15, event: EventKeyboard,
			want: 20,
		},
		{
			name:        "KeyboardStillCollapses",
			space:       percent,
			constraints: collapsible,
			prev:        30, next: 9, event: EventKeyboard,
			want: 0,
		},
		{
			name:        "NonZeroCollapsedSizeSnapsDown",
			space:       percent,
			constraints: Constraints{MinSize: 20, CollapsedSize: 5, Collapsible: true},
			prev:        30, next: 14, event: EventPointer,
			want: 5,
		},
		{
			name:        "NonZeroCollapsedSizeDeadZone",
			space:       percent,
			constraints: Constraints{MinSize: 20, CollapsedSize: 5, Collapsible: true},
			prev:        5, next: 12, event: EventPointer,
			want: 5,
		},
		{
			name:        "PixelConstraints",
			space:       Space{Units: UnitsPixels, AvailableSize: 200},
			constraints: Constraints{MinSize: 50},
			prev:        30, next: 10, event: EventPointer,
			want: 25, // 50px of 200px
		},
		{
			name:        "UnmeasuredPixelsPassThrough",
			space:       Unmeasured(UnitsPixels),
			constraints: Constraints{MinSize: 50},
			prev:        30, next: 7, event: EventPointer,
			want: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Panel{ID: "p", Constraints: tt.constraints}
			got := ResizePanel(tt.space, p, tt.prev, tt.next, tt.event)
			if !fuzzyEqual(got, tt.want) {
				t.Errorf("ResizePanel(prev=%v, next=%v) = %v, want %v", tt.prev, tt.next, got, tt.want)
			}
		})
	}
}

// Clamping twice must be a no-op: the clamp is the single authority on
// legality, so its output must already be legal.
func TestResizePanelIdempotent(t *testing.T) {
	space := Space{Units: UnitsPercentages}
	panels := []*Panel{
		{ID: "plain", Constraints: Constraints{MinSize: 10, MaxSize: f64(80)}},
		{ID: "collapsible", Constraints: Constraints{MinSize: 20, Collapsible: true}},
		{ID: "parked", Constraints: Constraints{MinSize: 25, CollapsedSize: 5, Collapsible: true}},
	}
	prevs := []float64{0, 5, 15, 30, 95}
	nexts := []float64{-10, 0, 3, 9, 12.5, 19.999, 20, 42, 80, 130}

	for _, p := range panels {
		for _, prev := range prevs {
			for _, next := range nexts {
				once := ResizePanel(space, p, prev, next, EventPointer)
				twice := ResizePanel(space, p, prev, once, EventPointer)
				if !fuzzyEqual(once, twice) {
					t.Errorf("%s: clamp(prev=%v, clamp(prev=%v, %v)) = %v, want %v",
						p.ID, prev, prev, next, twice, once)
				}
			}
		}
	}
}

func TestBoundsSubstitutions(t *testing.T) {
	space := Space{Units: UnitsPercentages}

	tests := []struct {
		name          string
		constraints   Constraints
		wantMin       float64
		wantMax       float64
		wantCollapsed float64
	}{
		{"NegativeMin", Constraints{MinSize: -5}, 0, 100, 0},
		{"MinOver100", Constraints{MinSize: 150}, 100, 100, 0},
		{"MaxBelowMin", Constraints{MinSize: 30, MaxSize: f64(10)}, 30, 30, 0},
		{"MaxOver100", Constraints{MaxSize: f64(120)}, 0, 100, 0},
		{"NegativeCollapsed", Constraints{CollapsedSize: -2, Collapsible: true}, 0, 100, 0},
		{"CollapsedAboveMin", Constraints{MinSize: 10, CollapsedSize: 15, Collapsible: true}, 10, 100, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Panel{ID: "p", Constraints: tt.constraints}
			minSize, maxSize, collapsedSize := bounds(space, p)
			if minSize != tt.wantMin || maxSize != tt.wantMax || collapsedSize != tt.wantCollapsed {
				t.Errorf("bounds() = (%v, %v, %v), want (%v, %v, %v)",
					minSize, maxSize, collapsedSize, tt.wantMin, tt.wantMax, tt.wantCollapsed)
			}
		})
	}
}

func TestFuzzyCompare(t *testing.T) {
	if fuzzyCompare(1.0/3*3, 1) != 0 {
		t.Error("accumulated rounding noise should compare equal")
	}
	if fuzzyCompare(10+1e-13, 10) != 0 {
		t.Error("sub-precision difference should compare equal")
	}
	if fuzzyCompare(9.9, 10) != -1 {
		t.Error("9.9 should order below 10")
	}
	if fuzzyCompare(10.1, 10) != 1 {
		t.Error("10.1 should order above 10")
	}
	if !math.IsNaN(roundPrecision(math.NaN())) {
		t.Error("roundPrecision should pass NaN through")
	}
}
