package testutil

import (
	"context"

	"github.com/kbukum/fixturekit/component"
)

// TestComponent extends component.Component with the state operations
// tests need between cases. The migrated test store and the fixture
// session both implement it.
type TestComponent interface {
	component.Component

	// Reset returns the component to its initial state.
	Reset(ctx context.Context) error

	// Snapshot captures the current state of the component.
	// The returned data can be passed to Restore() to return to this state.
	Snapshot(ctx context.Context) (interface{}, error)

	// Restore returns the component to a state captured by Snapshot.
	Restore(ctx context.Context, snapshot interface{}) error
}
