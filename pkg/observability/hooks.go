// Package observability provides the warning channel for the layout engine.
//
// The sizing engine never fails on malformed input: invalid constraint
// declarations are substituted with corrected values and unsatisfiable
// totals produce a best-effort size vector. Both conditions are purely
// informational, so rather than threading a logger through every pure
// function, the engine reports them through hooks registered here.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface for layout diagnostics
//   - Provide a no-op default implementation
//   - Allow registration of a custom implementation at startup
//
// This approach:
//   - Keeps pkg/panels dependency-free from logging frameworks
//   - Suppresses diagnostics entirely unless a consumer opts in, which is
//     the production default
//   - Guarantees that registering or removing hooks never alters computed
//     size vectors
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    // ... run application
//	}
//
// The engine calls hooks as it resolves constraints:
//
//	observability.Layout().OnConstraintSubstituted(panelID, "minSize", declared, substituted)
//	observability.Layout().OnUnsatisfiedTotal(total, leftover)
package observability

import "sync"

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives diagnostic events from the sizing engine. All
// events are non-fatal: the engine has already substituted a corrected
// value or returned a best-effort vector by the time a hook fires.
type LayoutHooks interface {
	// OnConstraintSubstituted reports an individually invalid constraint
	// declaration. constraint names the offending field ("minSize",
	// "maxSize", "defaultSize", "collapsedSize"); declared is the
	// normalized value the panel declared and substituted the corrected
	// value the engine used instead.
	OnConstraintSubstituted(panelID, constraint string, declared, substituted float64)

	// OnUnsatisfiedTotal reports a size vector whose sum could not be
	// brought to 100 within tolerance after full constraint resolution.
	// leftover is the signed remainder the sweep could not absorb.
	OnUnsatisfiedTotal(total, leftover float64)
}

// =============================================================================
// No-op Implementation
// =============================================================================

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnConstraintSubstituted(string, string, float64, float64) {}
func (NoopLayoutHooks) OnUnsatisfiedTotal(float64, float64)                      {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	layoutHooks LayoutHooks = NoopLayoutHooks{}
	hooksMu     sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before any layout
// computations.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Reset restores the no-op default hooks.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	layoutHooks = NoopLayoutHooks{}
}
