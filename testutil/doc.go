// Package testutil adds test-state operations to the component lifecycle.
//
// A TestComponent is a component.Component that can also Reset, Snapshot
// and Restore its state. The migrated test store (database/testutil) and
// the fixture session (factory) implement it.
//
// # Quick Start
//
//	func TestCreateOrder(t *testing.T) {
//	    h := testutil.T(t)
//	    m := h.Manage(store, session)
//	    h.Isolate(m) // rows written by this test are removed when it ends
//	    // ...
//	}
//
// Manager delegates ordering to component.Registry: components start in
// the order they were added and stop in reverse. RestoreAll walks the
// components in reverse as well.
package testutil
