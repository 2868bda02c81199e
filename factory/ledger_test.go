package factory_test

import (
	"context"
	"testing"

	dbtestutil "github.com/kbukum/fixturekit/database/testutil"
	"github.com/kbukum/fixturekit/factory"
)

func TestClearAllCreated(t *testing.T) {
	store, s := newStore(t)
	defineEmployee(t, s)
	if err := factory.Define(s, func() *Country { return &Country{Code: "SG", Name: "Singapore"} }); err != nil {
		t.Fatalf("Define() failed: %v", err)
	}
	ctx := context.Background()

	for range 2 {
		if _, err := factory.Create[Employee](ctx, s); err != nil {
			t.Fatalf("Create() failed: %v", err)
		}
	}
	if _, err := factory.CreateWithoutAutoIdentity[Country](ctx, s); err != nil {
		t.Fatalf("CreateWithoutAutoIdentity() failed: %v", err)
	}

	if err := s.ClearAllCreated(ctx); err != nil {
		t.Fatalf("ClearAllCreated() failed: %v", err)
	}
	dbtestutil.AssertTableEmpty(t, store.DB(), "Employee")
	dbtestutil.AssertTableEmpty(t, store.DB(), "Country")
	if s.Created() != 0 {
		t.Errorf("Created() = %d, want 0", s.Created())
	}

	if err := s.ClearAllCreated(ctx); err != nil {
		t.Errorf("second ClearAllCreated() failed: %v", err)
	}
}

func TestClearAllCreated_SkipsAbsentIdentity(t *testing.T) {
	store, s := newStore(t)
	defineEmployee(t, s)
	ctx := context.Background()

	kept, err := factory.Create[Employee](ctx, s)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	removed, err := factory.Create(ctx, s, func(e *Employee) { e.Name = "Bob" })
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	kept.Id = 0

	if err := s.ClearAllCreated(ctx); err != nil {
		t.Fatalf("ClearAllCreated() failed: %v", err)
	}
	dbtestutil.AssertRowCount(t, store.DB(), "Employee", 1)
	dbtestutil.AssertRowExists(t, store.DB(), "Employee", "Name", "Ann")
	if _, err := factory.Get(ctx, s, removed); err == nil {
		t.Error("Bob should have been deleted")
	}
}

func TestClearDefinitions_ForgetsLedger(t *testing.T) {
	store, s := newStore(t)
	defineEmployee(t, s)
	ctx := context.Background()

	if _, err := factory.Create[Employee](ctx, s); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	s.ClearDefinitions()

	if s.Created() != 0 {
		t.Errorf("Created() = %d after ClearDefinitions(), want 0", s.Created())
	}
	if err := s.ClearAllCreated(ctx); err != nil {
		t.Fatalf("ClearAllCreated() failed: %v", err)
	}
	dbtestutil.AssertRowCount(t, store.DB(), "Employee", 1)
}
