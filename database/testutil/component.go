package testutil

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"
	gormschema "gorm.io/gorm/schema"

	"github.com/kbukum/fixturekit/component"
	"github.com/kbukum/fixturekit/database"
	"github.com/kbukum/fixturekit/database/migration"
	apperrors "github.com/kbukum/fixturekit/errors"
	"github.com/kbukum/fixturekit/logger"
	"github.com/kbukum/fixturekit/row"
	"github.com/kbukum/fixturekit/schema"
	"github.com/kbukum/fixturekit/sqlgen"
	"github.com/kbukum/fixturekit/testutil"
)

// versionTable is where golang-migrate records the applied version.
const versionTable = "schema_migrations"

var errNotStarted = errors.New("component not started")

// Component is a test database backed by a private in-memory SQLite
// database. It implements both component.Component and testutil.TestComponent.
type Component struct {
	db             *database.DB
	log            *logger.Logger
	models         []any
	migrations     fs.FS
	migrationsPath string
	started        bool
	mu             sync.RWMutex
}

var (
	_ component.Component    = (*Component)(nil)
	_ testutil.TestComponent = (*Component)(nil)
)

// NewComponent creates a new test database component.
func NewComponent() *Component {
	return &Component{log: logger.NewNop()}
}

// WithModels registers GORM models migrated on Start. Table and column names
// are the Go type and field names, matching what the fixture factory writes.
func (c *Component) WithModels(models ...any) *Component {
	c.models = append(c.models, models...)
	return c
}

// WithMigrations applies the golang-migrate files under path on Start.
func (c *Component) WithMigrations(fsys fs.FS, path string) *Component {
	c.migrations = fsys
	c.migrationsPath = path
	return c
}

// WithLogger sets the logger used for the database and GORM.
func (c *Component) WithLogger(log *logger.Logger) *Component {
	c.log = log
	return c
}

// DB returns the underlying *gorm.DB, or nil if not started.
func (c *Component) DB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.db == nil {
		return nil
	}
	return c.db.GormDB
}

// Connector returns the store boundary for a fixture session. It may be
// taken before Start; connections are only handed out while started.
func (c *Component) Connector() database.Connector {
	return c
}

// Connect checks out a dedicated connection from the test database.
func (c *Component) Connect(ctx context.Context) (database.Conn, error) {
	c.mu.RLock()
	db := c.db
	c.mu.RUnlock()
	if db == nil {
		return nil, apperrors.ConnectionFailed(errNotStarted)
	}
	return db.Connect(ctx)
}

// Dialect returns the statement dialect of the test database.
func (c *Component) Dialect() sqlgen.Dialect {
	return sqlgen.SQLite()
}

// Name returns the component name.
func (c *Component) Name() string {
	return "database-test"
}

// Start opens the in-memory database, then applies migrations and models.
func (c *Component) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return fmt.Errorf("component already started")
	}

	cfg := database.Config{
		Enabled:      true,
		Name:         c.Name(),
		Driver:       "sqlite",
		DSN:          "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		MaxRetries:   1,
		LogLevel:     "silent",
	}
	db, err := database.Open(ctx, cfg, c.log, database.WithNamingStrategy(gormschema.NamingStrategy{
		SingularTable: true,
		NoLowerCase:   true,
	}))
	if err != nil {
		return fmt.Errorf("failed to open test database: %w", err)
	}
	c.db = db
	c.started = true

	if c.migrations != nil {
		sqlDB, err := db.SQLDB()
		if err != nil {
			return err
		}
		if err := migration.Up(sqlDB, c.migrations, c.migrationsPath, migration.SQLiteDriver); err != nil {
			return fmt.Errorf("migrations failed: %w", err)
		}
	}
	if len(c.models) > 0 {
		if err := db.AutoMigrate(c.models...); err != nil {
			return fmt.Errorf("auto-migrate failed: %w", err)
		}
	}
	return nil
}

// Stop closes the database. The in-memory data is discarded.
func (c *Component) Stop(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started || c.db == nil {
		return nil
	}
	c.started = false
	return c.db.Close()
}

// Health returns the health status of the test database.
func (c *Component) Health(ctx context.Context) component.Health {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.started || c.db == nil {
		return component.Health{
			Name:    c.Name(),
			Status:  component.StatusUnhealthy,
			Message: "database not started",
		}
	}
	if err := c.db.PingContext(ctx); err != nil {
		return component.Health{
			Name:    c.Name(),
			Status:  component.StatusUnhealthy,
			Message: fmt.Sprintf("ping failed: %v", err),
		}
	}
	return component.Health{Name: c.Name(), Status: component.StatusHealthy}
}

// Reset deletes every row while keeping the schema and migration version.
func (c *Component) Reset(ctx context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.started || c.db == nil {
		return errNotStarted
	}
	tables, err := c.tables(ctx)
	if err != nil {
		return err
	}
	for _, table := range tables {
		if err := TruncateTable(c.db.WithContext(ctx), table); err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}
	return nil
}

// Snapshot captures every row of every table. The snapshot is a
// map[string][]row.Row keyed by table name.
func (c *Component) Snapshot(ctx context.Context) (any, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.started || c.db == nil {
		return nil, errNotStarted
	}
	tables, err := c.tables(ctx)
	if err != nil {
		return nil, err
	}

	conn, err := c.db.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	dialect := c.Dialect()
	snapshot := make(map[string][]row.Row, len(tables))
	for _, table := range tables {
		rows, err := conn.Query(ctx, "SELECT * FROM "+dialect.Quote(table))
		if err != nil {
			return nil, fmt.Errorf("failed to snapshot table %s: %w", table, err)
		}
		snapshot[table] = rows
	}
	return snapshot, nil
}

// Restore replaces the data with a snapshot returned by Snapshot.
func (c *Component) Restore(ctx context.Context, snap any) error {
	snapshot, ok := snap.(map[string][]row.Row)
	if !ok {
		return fmt.Errorf("invalid snapshot type: expected map[string][]row.Row, got %T", snap)
	}
	if err := c.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset before restore: %w", err)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	conn, err := c.db.Connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	b := sqlgen.NewBuilder(c.Dialect())
	for table, rows := range snapshot {
		for _, r := range rows {
			values := &schema.Container{}
			for _, col := range r.Columns() {
				values.AddValue(col.Name, col.Value.Interface())
			}
			stmt := b.InsertWithoutAutoIdentity(table, values)
			if _, err := conn.Query(ctx, stmt.SQL, stmt.Args...); err != nil {
				return fmt.Errorf("failed to restore row to table %s: %w", table, err)
			}
		}
	}
	return nil
}

func (c *Component) tables(ctx context.Context) ([]string, error) {
	names, err := GetTableNames(c.db.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	out := names[:0]
	for _, name := range names {
		if name != versionTable {
			out = append(out, name)
		}
	}
	return out, nil
}
