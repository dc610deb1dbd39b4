// Package panels implements the sizing and constraint-solving engine behind
// a resizable split-panel layout.
//
// A panel group is an ordered row or column of panels sharing one axis and
// one sizing unit. The engine maintains a single invariant: the sizes of
// all panels in a group, expressed as percentages of the group's available
// space, always sum to 100 within floating-point tolerance.
//
// # Architecture
//
// The engine is a set of pure functions over a sorted panel slice and a
// size vector, plus a [Group] that owns the mutable per-group state
// (committed sizes, drag baseline, collapse history, last-notified map):
//
//   - [Space.Normalize]: converts declared sizes between physical units
//     and percentages of the container
//   - [ResizePanel]: the single authority on whether a size is legal,
//     including collapse hysteresis
//   - [SortPanels]: stable ordering of panels by their explicit order key
//   - [DefaultLayout]: the initial size assignment summing to 100
//   - [ApplyDelta]: redistributes a resize delta across a chain of panels
//   - [ValidateLayout]: repairs an arbitrary candidate vector
//   - [DispatchCallbacks]: diffs vectors and fires per-panel callbacks
//
// Size vectors are immutable per computation: every function returns a new
// vector rather than mutating its input.
//
// # Gestures
//
// A continuous drag rebases every delta on the size vector captured at
// drag start, not on the previous frame. Reversing a drag therefore
// restores the pre-drag layout exactly, including re-expanding panels that
// were force-collapsed mid-drag, and repeated steps accumulate no rounding
// drift:
//
//	group.StartDrag("sidebar", "main")
//	group.Drag(-12, panels.EventPointer) // 12 units left of the start point
//	group.Drag(0, panels.EventPointer)   // back to the start: exact restore
//	group.EndDrag()
//
// # Error handling
//
// The engine never fails on malformed layout input. Individually invalid
// constraint declarations are substituted with corrected values,
// unsatisfiable totals produce a best-effort vector, and a delta that no
// chain of panels can absorb is silently rejected by returning the
// previous vector. The first two conditions are reported through
// pkg/observability hooks; gesture rejection is expected steady-state
// behavior at the extremes of a drag and is not reported at all.
//
// # Concurrency
//
// Nothing in this package is safe for concurrent use. The engine models a
// single-threaded event loop: within one gesture, ApplyDelta and
// DispatchCallbacks must run as a strict sequence, and a new step must not
// begin until the previous vector has been committed. [Group] serializes
// this for callers that stay on one goroutine; anything else needs its own
// per-group serialization.
package panels
