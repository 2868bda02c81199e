package testutil

import (
	"fmt"
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LoadFixture inserts rows into a table. Each map is one row keyed by column name.
func LoadFixture(db *gorm.DB, table string, data []map[string]any) error {
	for _, row := range data {
		if err := db.Table(table).Create(row).Error; err != nil {
			return fmt.Errorf("failed to insert fixture row into %s: %w", table, err)
		}
	}
	return nil
}

// MustLoadFixture loads rows and fails the test on error.
func MustLoadFixture(t testing.TB, db *gorm.DB, table string, data []map[string]any) {
	t.Helper()
	if err := LoadFixture(db, table, data); err != nil {
		t.Fatalf("LoadFixture failed: %v", err)
	}
}

// TruncateTable removes all rows from a table.
func TruncateTable(db *gorm.DB, table string) error {
	return db.Exec("DELETE FROM ?", clause.Table{Name: table}).Error
}

// TruncateAllTables removes all rows from all tables in the database.
func TruncateAllTables(db *gorm.DB) error {
	tables, err := GetTableNames(db)
	if err != nil {
		return err
	}
	for _, table := range tables {
		if err := TruncateTable(db, table); err != nil {
			return err
		}
	}
	return nil
}

// TableExists checks if a table exists in the database.
func TableExists(db *gorm.DB, table string) bool {
	return db.Migrator().HasTable(table)
}

// GetTableNames returns the names of all non-system tables.
func GetTableNames(db *gorm.DB) ([]string, error) {
	var tables []string
	err := db.Raw("SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name").
		Scan(&tables).Error
	return tables, err
}

// CountRows returns the number of rows in a table.
func CountRows(db *gorm.DB, table string) (int64, error) {
	var count int64
	err := db.Table(table).Count(&count).Error
	return count, err
}

// CountWhere returns the number of rows in a table whose column equals value.
func CountWhere(db *gorm.DB, table, column string, value any) (int64, error) {
	var count int64
	err := db.Table(table).Where(clause.Eq{Column: clause.Column{Name: column}, Value: value}).Count(&count).Error
	return count, err
}

// AssertTableEmpty fails the test if the table is not empty.
func AssertTableEmpty(t testing.TB, db *gorm.DB, table string) {
	t.Helper()
	AssertRowCount(t, db, table, 0)
}

// AssertRowCount fails the test if the table doesn't have the expected row count.
func AssertRowCount(t testing.TB, db *gorm.DB, table string, expected int64) {
	t.Helper()
	count, err := CountRows(db, table)
	if err != nil {
		t.Fatalf("failed to count rows in %s: %v", table, err)
	}
	if count != expected {
		t.Errorf("table %s row count = %d, want %d", table, count, expected)
	}
}

// AssertRowExists fails the test unless a row of table has column equal to value.
func AssertRowExists(t testing.TB, db *gorm.DB, table, column string, value any) {
	t.Helper()
	count, err := CountWhere(db, table, column, value)
	if err != nil {
		t.Fatalf("failed to query %s: %v", table, err)
	}
	if count == 0 {
		t.Errorf("table %s has no row with %s = %v", table, column, value)
	}
}
