package factory_test

import (
	"context"
	"os"
	"testing"

	"github.com/kbukum/fixturekit/component"
	dbtestutil "github.com/kbukum/fixturekit/database/testutil"
	"github.com/kbukum/fixturekit/factory"
	"github.com/kbukum/fixturekit/testutil"
)

func TestComponent_ManagedWithStore(t *testing.T) {
	store := dbtestutil.NewComponent().WithMigrations(os.DirFS("testdata"), "migrations")
	s := factory.NewSession(store.Connector(), store.Dialect())
	fixtures := factory.NewComponent(s)
	defineEmployee(t, s)
	ctx := context.Background()

	if h := fixtures.Health(ctx); h.Status != component.StatusUnhealthy {
		t.Errorf("Health() before Start = %s, want unhealthy", h.Status)
	}
	if err := fixtures.Start(ctx); err == nil {
		t.Fatal("Start() should fail while the store is down")
	}

	h := testutil.T(t)
	m := h.Manage(store, fixtures)
	if fixtures.Health(ctx).Status != component.StatusHealthy {
		t.Errorf("Health() = %+v, want healthy", fixtures.Health(ctx))
	}

	if _, err := factory.Create[Employee](ctx, s); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	t.Run("isolated", func(t *testing.T) {
		testutil.T(t).Isolate(m)
		for range 2 {
			if _, err := factory.Create[Employee](ctx, s); err != nil {
				t.Fatalf("Create() failed: %v", err)
			}
		}
		dbtestutil.AssertRowCount(t, store.DB(), "Employee", 3)
	})

	dbtestutil.AssertRowCount(t, store.DB(), "Employee", 1)
	if s.Created() != 1 {
		t.Errorf("Created() = %d after restore, want 1", s.Created())
	}

	if err := m.ResetAll(); err != nil {
		t.Fatalf("ResetAll() failed: %v", err)
	}
	dbtestutil.AssertTableEmpty(t, store.DB(), "Employee")
	if s.Created() != 0 {
		t.Errorf("Created() = %d after reset, want 0", s.Created())
	}
}

func TestComponent_SnapshotRestore(t *testing.T) {
	store, s := newStore(t)
	defineEmployee(t, s)
	fixtures := factory.NewComponent(s)
	testutil.T(t).Setup(fixtures)
	ctx := context.Background()

	if _, err := factory.Create[Employee](ctx, s); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	mark := testutil.T(t).Snapshot(fixtures)
	if mark != factory.Mark(1) {
		t.Errorf("Snapshot() = %v, want Mark(1)", mark)
	}
	if _, err := factory.Create(ctx, s, func(e *Employee) { e.Name = "Bob" }); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	testutil.T(t).Restore(fixtures, mark)
	dbtestutil.AssertRowCount(t, store.DB(), "Employee", 1)
	dbtestutil.AssertRowExists(t, store.DB(), "Employee", "Name", "Ann")

	if err := fixtures.Restore(ctx, "not a mark"); err == nil {
		t.Error("Restore() should reject a foreign snapshot")
	}
}

func TestComponent_Describe(t *testing.T) {
	_, s := newStore(t)
	defineEmployee(t, s)

	d := factory.NewComponent(s).Describe()
	if d.Type != "fixtures" || d.Details != "dialect=sqlite definitions=1" {
		t.Errorf("Describe() = %+v", d)
	}
	if factory.NewComponent(s).Session() != s {
		t.Error("Session() should return the wrapped session")
	}
}
