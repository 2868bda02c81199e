package migration

import (
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("sql.Open() failed: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func hasTable(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&n); err != nil {
		t.Fatalf("query sqlite_master failed: %v", err)
	}
	return n == 1
}

func TestUpDown(t *testing.T) {
	db := openMemory(t)
	fsys := os.DirFS("testdata")

	if err := Up(db, fsys, "migrations", SQLiteDriver); err != nil {
		t.Fatalf("Up() failed: %v", err)
	}
	if !hasTable(t, db, "Employee") {
		t.Fatal("Employee table should exist after Up")
	}
	if _, err := db.Exec(`INSERT INTO "Employee" ("Name", "Nickname") VALUES ('Ann', NULL)`); err != nil {
		t.Fatalf("insert after Up failed: %v", err)
	}

	version, dirty, err := Version(db, fsys, "migrations", SQLiteDriver)
	if err != nil {
		t.Fatalf("Version() failed: %v", err)
	}
	if version != 2 || dirty {
		t.Errorf("Version() = %d (dirty=%v), want 2", version, dirty)
	}

	if err := Up(db, fsys, "migrations", SQLiteDriver); err != nil {
		t.Errorf("second Up() should be a no-op, got %v", err)
	}

	if err := Steps(db, fsys, "migrations", -1, SQLiteDriver); err != nil {
		t.Fatalf("Steps(-1) failed: %v", err)
	}
	if version, _, _ := Version(db, fsys, "migrations", SQLiteDriver); version != 1 {
		t.Errorf("Version() after Steps(-1) = %d, want 1", version)
	}

	if err := Down(db, fsys, "migrations", SQLiteDriver); err != nil {
		t.Fatalf("Down() failed: %v", err)
	}
	if hasTable(t, db, "Employee") {
		t.Error("Employee table should be dropped after Down")
	}
}

func TestVersion_Empty(t *testing.T) {
	db := openMemory(t)
	version, dirty, err := Version(db, os.DirFS("testdata"), "migrations", SQLiteDriver)
	if err != nil {
		t.Fatalf("Version() failed: %v", err)
	}
	if version != 0 || dirty {
		t.Errorf("Version() = %d (dirty=%v), want 0", version, dirty)
	}
}

func TestDriverFor(t *testing.T) {
	for _, name := range []string{"sqlite", "postgres", "sqlserver"} {
		fn, err := DriverFor(name)
		if err != nil {
			t.Errorf("DriverFor(%q) failed: %v", name, err)
		}
		if fn == nil {
			t.Errorf("DriverFor(%q) returned nil", name)
		}
	}

	if _, err := DriverFor("mysql"); err == nil {
		t.Error("expected error for unknown driver")
	}
}

func TestDriverFor_SQLiteUp(t *testing.T) {
	db := openMemory(t)
	fn, err := DriverFor("sqlite")
	if err != nil {
		t.Fatalf("DriverFor() failed: %v", err)
	}
	if err := Up(db, os.DirFS("testdata"), "migrations", fn); err != nil {
		t.Fatalf("Up() failed: %v", err)
	}
	version, _, err := Version(db, os.DirFS("testdata"), "migrations", fn)
	if err != nil {
		t.Fatalf("Version() failed: %v", err)
	}
	if version == 0 {
		t.Error("expected a non-zero version after Up")
	}
}
