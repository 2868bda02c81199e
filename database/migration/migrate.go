// Package migration applies file-based schema migrations with golang-migrate.
//
// Migrations are read from any fs.FS, typically an embed.FS, and applied to
// the pool behind a *sql.DB. The caller chooses the golang-migrate database
// driver through a DriverFunc; DriverFor maps the database.Config driver
// names sqlite, postgres and sqlserver to theirs.
//
//	//go:embed migrations/*.sql
//	var migrationsFS embed.FS
//
//	err := migration.Up(sqlDB, migrationsFS, "migrations", migration.SQLiteDriver)
package migration

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/database/sqlserver"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// DriverFunc creates a migrate database driver from sql.DB.
type DriverFunc func(*sql.DB) (database.Driver, error)

// SQLiteDriver is the DriverFunc for SQLite databases.
func SQLiteDriver(db *sql.DB) (database.Driver, error) {
	return sqlite3.WithInstance(db, &sqlite3.Config{})
}

// PostgresDriver is the DriverFunc for PostgreSQL databases.
func PostgresDriver(db *sql.DB) (database.Driver, error) {
	return pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
}

// SQLServerDriver is the DriverFunc for SQL Server databases.
func SQLServerDriver(db *sql.DB) (database.Driver, error) {
	return sqlserver.WithInstance(db, &sqlserver.Config{})
}

var drivers = map[string]DriverFunc{
	"sqlite":    SQLiteDriver,
	"postgres":  PostgresDriver,
	"sqlserver": SQLServerDriver,
}

// DriverFor returns the DriverFunc for a database.Config driver name.
func DriverFor(name string) (DriverFunc, error) {
	fn, ok := drivers[name]
	if !ok {
		return nil, fmt.Errorf("no migration driver for %q", name)
	}
	return fn, nil
}

// Up runs all pending migrations. Migration files follow the pattern
// VERSION_name.up.sql and VERSION_name.down.sql. Having nothing to apply is
// not an error.
func Up(db *sql.DB, fsys fs.FS, path string, driverFunc DriverFunc) error {
	m, err := newMigrator(db, fsys, path, driverFunc)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// Down rolls back every applied migration.
func Down(db *sql.DB, fsys fs.FS, path string, driverFunc DriverFunc) error {
	m, err := newMigrator(db, fsys, path, driverFunc)
	if err != nil {
		return err
	}
	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate down: %w", err)
	}
	return nil
}

// Steps runs n migrations: positive n applies, negative n rolls back.
func Steps(db *sql.DB, fsys fs.FS, path string, n int, driverFunc DriverFunc) error {
	m, err := newMigrator(db, fsys, path, driverFunc)
	if err != nil {
		return err
	}
	if err := m.Steps(n); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate steps: %w", err)
	}
	return nil
}

// Version returns the current migration version and dirty flag. A database
// without applied migrations reports version 0.
func Version(db *sql.DB, fsys fs.FS, path string, driverFunc DriverFunc) (version uint, dirty bool, err error) {
	m, err := newMigrator(db, fsys, path, driverFunc)
	if err != nil {
		return 0, false, err
	}
	version, dirty, err = m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

// newMigrator creates a golang-migrate instance over fsys.
// Callers must not close it: that would close the shared sql.DB.
func newMigrator(db *sql.DB, fsys fs.FS, path string, driverFunc DriverFunc) (*migrate.Migrate, error) {
	driver, err := driverFunc(db)
	if err != nil {
		return nil, fmt.Errorf("create database driver: %w", err)
	}

	source, err := iofs.New(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "database", driver)
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	return m, nil
}
