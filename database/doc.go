// Package database opens the store behind the fixture factory and hands out
// the dedicated connections each statement batch runs on.
//
// # Architecture
//
// Open picks a GORM dialector from Config.Driver (sqlite, postgres or
// sqlserver), connects with retry and backoff, and configures the pool.
// The resulting DB implements Connector: every Connect call checks out one
// *sql.Conn, and the batch's statements run on it before it is returned to
// the pool. Batches never go through GORM's query builder, so placeholders
// reach the driver unchanged.
//
// # Quick Start
//
//	cfg := database.Config{Enabled: true, Driver: "sqlserver", DSN: dsn}
//	db, err := database.Open(ctx, cfg, log)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	dialect, _ := sqlgen.ForDriver(db.Driver())
//	session := factory.NewSession(db, dialect)
//
// Code that already owns a *sql.DB can use NewSQLConnector instead.
//
// # Component
//
// Component wraps DB for lifecycle management. WithDriver replaces the
// dialector used for the configured DSN, and WithAutoMigrate registers GORM
// models migrated on Start.
//
// # Subpackages
//
//   - migration: file-based schema migrations using golang-migrate
//   - testutil: in-memory SQLite component and row assertions for tests
package database
