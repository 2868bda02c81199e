package testutil_test

import (
	"context"
	"errors"
	"testing"

	"github.com/kbukum/fixturekit/testutil"
)

func TestSetupAndTeardown(t *testing.T) {
	comp := newMockComponent("db")

	cleanup, err := testutil.Setup(comp)
	if err != nil {
		t.Fatalf("Setup() failed: %v", err)
	}
	if !comp.started {
		t.Error("component should be started after Setup()")
	}
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup() failed: %v", err)
	}
	if !comp.stopped {
		t.Error("component should be stopped after cleanup()")
	}

	if err := testutil.Teardown(comp); err != nil {
		t.Errorf("Teardown() failed: %v", err)
	}
}

func TestSetupError(t *testing.T) {
	comp := newMockComponent("db")
	comp.startErr = errors.New("refused")

	cleanup, err := testutil.SetupWithContext(context.Background(), comp)
	if !errors.Is(err, comp.startErr) {
		t.Errorf("SetupWithContext() error = %v, want %v", err, comp.startErr)
	}
	if cleanup != nil {
		t.Error("cleanup should be nil when start fails")
	}
}

func TestResetComponent(t *testing.T) {
	comp := newMockComponent("db")
	comp.rows = 5

	if err := testutil.ResetComponent(comp); err != nil {
		t.Fatalf("ResetComponent() failed: %v", err)
	}
	if comp.rows != 0 || comp.resets != 1 {
		t.Errorf("rows = %d resets = %d, want 0 and 1", comp.rows, comp.resets)
	}
}

func TestTHelper_Setup(t *testing.T) {
	comp := newMockComponent("db")

	t.Run("inner", func(t *testing.T) {
		testutil.T(t).Setup(comp)
		if !comp.started {
			t.Error("component should be started")
		}
	})

	if !comp.stopped {
		t.Error("component should be stopped when the subtest ends")
	}
}

func TestTHelper_SnapshotRestore(t *testing.T) {
	comp := newMockComponent("db")
	comp.rows = 2
	h := testutil.T(t)

	snap := h.Snapshot(comp)
	comp.rows = 10
	h.Restore(comp, snap)

	if comp.rows != 2 {
		t.Errorf("rows = %d, want 2", comp.rows)
	}
	h.Reset(comp)
	if comp.rows != 0 {
		t.Errorf("rows after Reset = %d, want 0", comp.rows)
	}
}

func TestTHelper_ManageIsolate(t *testing.T) {
	db, fx := newMockComponent("db"), newMockComponent("fixtures")
	db.rows = 1

	t.Run("inner", func(t *testing.T) {
		h := testutil.T(t)
		m := h.Manage(db, fx)
		h.Isolate(m)
		if !db.started || !fx.started {
			t.Fatal("managed components should be started")
		}
		db.rows, fx.rows = 8, 8
	})

	if db.rows != 1 || fx.rows != 0 {
		t.Errorf("rows after isolation = %d/%d, want 1/0", db.rows, fx.rows)
	}
	if !db.stopped || !fx.stopped {
		t.Error("managed components should be stopped when the subtest ends")
	}
}
