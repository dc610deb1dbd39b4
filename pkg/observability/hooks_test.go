package observability

import "testing"

func TestNoopHooksDoNotPanic(t *testing.T) {
	h := NoopLayoutHooks{}
	h.OnConstraintSubstituted("sidebar", "minSize", -5, 0)
	h.OnUnsatisfiedTotal(97.5, 2.5)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify default is noop
	if _, ok := Layout().(NoopLayoutHooks); !ok {
		t.Error("Layout() should return NoopLayoutHooks by default")
	}

	// Set custom hooks
	custom := &testLayoutHooks{}
	SetLayoutHooks(custom)
	if Layout() != custom {
		t.Error("SetLayoutHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Layout().(NoopLayoutHooks); !ok {
		t.Error("Reset() should restore NoopLayoutHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testLayoutHooks{}
	SetLayoutHooks(custom)

	// Setting nil should be ignored
	SetLayoutHooks(nil)

	if Layout() != custom {
		t.Error("SetLayoutHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementation
type testLayoutHooks struct{ NoopLayoutHooks }
