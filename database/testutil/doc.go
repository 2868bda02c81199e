// Package testutil provides a disposable test database for the fixture
// factory and row-level assertions for tests.
//
// Component opens a private in-memory SQLite database per Start. It
// implements testutil.TestComponent, so it plugs into testutil.T(t).Setup
// and the testutil Manager, and it exposes the Connector and Dialect a
// factory.Session needs.
//
// # Quick Start
//
//	db := testutil.NewComponent().WithModels(&Employee{})
//	roottestutil.T(t).Setup(db)
//
//	s := factory.NewSession(db.Connector(), db.Dialect())
//
// GORM models are migrated with table and column names equal to the Go
// names, which is what the factory writes. Schemas that need store-specific
// DDL can be supplied as golang-migrate files with WithMigrations.
//
// # State Management
//
// Reset deletes every row. Snapshot captures all rows and Restore puts
// them back.
//
// # Fixture Helpers
//
//	MustLoadFixture(t, db.DB(), "Employee", []map[string]any{{"Name": "Ann"}})
//	AssertRowCount(t, db.DB(), "Employee", 1)
//	AssertRowExists(t, db.DB(), "Employee", "Name", "Ann")
package testutil
