package database

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
)

// DialectorFunc builds a GORM dialector for a DSN.
type DialectorFunc func(dsn string) gorm.Dialector

var (
	driversMu sync.RWMutex
	drivers   = map[string]DialectorFunc{
		"sqlite":    sqlite.Open,
		"postgres":  postgres.Open,
		"sqlserver": sqlserver.Open,
	}
)

// RegisterDriver adds or replaces the dialector used for a driver name.
func RegisterDriver(name string, fn DialectorFunc) {
	driversMu.Lock()
	defer driversMu.Unlock()
	drivers[strings.ToLower(name)] = fn
}

// HasDriver reports whether a dialector is registered for name.
func HasDriver(name string) bool {
	driversMu.RLock()
	defer driversMu.RUnlock()
	_, ok := drivers[strings.ToLower(name)]
	return ok
}

// Drivers returns the registered driver names, sorted.
func Drivers() []string {
	driversMu.RLock()
	defer driversMu.RUnlock()
	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	driversMu.RLock()
	fn, ok := drivers[strings.ToLower(driver)]
	driversMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}
	return fn(dsn), nil
}
