package database

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"
	gormschema "gorm.io/gorm/schema"

	"github.com/kbukum/fixturekit/logger"
	"github.com/kbukum/fixturekit/resilience"
)

// DB wraps a GORM database with fixturekit logging.
type DB struct {
	GormDB *gorm.DB
	log    *logger.Logger
	cfg    Config
	closed bool
	mu     sync.Mutex
}

// Option adjusts the GORM configuration before the database is opened.
type Option func(*gorm.Config)

// WithNamingStrategy sets the naming strategy GORM uses for migrated models.
func WithNamingStrategy(namer gormschema.Namer) Option {
	return func(c *gorm.Config) {
		c.NamingStrategy = namer
	}
}

// Open connects using the dialector registered for cfg.Driver.
func Open(ctx context.Context, cfg Config, log *logger.Logger, opts ...Option) (*DB, error) {
	cfg.ApplyDefaults()
	dialector, err := dialectorFor(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}
	return OpenDialector(ctx, dialector, cfg, log, opts...)
}

// OpenDialector connects through an explicit dialector, retrying failed
// attempts with exponential backoff until ctx is done.
func OpenDialector(ctx context.Context, dialector gorm.Dialector, cfg Config, log *logger.Logger, opts ...Option) (*DB, error) {
	cfg.ApplyDefaults()
	if log == nil {
		log = logger.NewNop()
	}
	log = log.WithComponent(cfg.Name)

	slowThreshold, _ := time.ParseDuration(cfg.SlowQueryThreshold)
	gormCfg := &gorm.Config{
		Logger: newGormLogger(log, slowThreshold, parseLogLevel(cfg.LogLevel)),
	}
	for _, opt := range opts {
		opt(gormCfg)
	}

	policy := resilience.DefaultPolicy()
	policy.Attempts = cfg.MaxRetries
	policy.OnRetry = func(attempt int, err error, wait time.Duration) {
		log.Warn("Database connection attempt failed, retrying", logger.Fields(
			"attempt", attempt, logger.FieldError, err.Error(), "backoff", wait.String(),
		))
	}

	db, err := resilience.Retry(ctx, policy, func(attempt int) (*gorm.DB, error) {
		db, err := gorm.Open(dialector, gormCfg)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		configurePool(sqlDB, cfg)
		log.Info("Database connection established", logger.Fields(
			"driver", cfg.Driver, "attempt", attempt,
		))
		return db, nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("database connection canceled: %w", ctxErr)
		}
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return &DB{GormDB: db, log: log, cfg: cfg}, nil
}

func configurePool(sqlDB *sql.DB, cfg Config) {
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	if lifetime, err := time.ParseDuration(cfg.ConnMaxLifetime); err == nil {
		sqlDB.SetConnMaxLifetime(lifetime)
	}
	if idle, err := time.ParseDuration(cfg.ConnMaxIdleTime); err == nil {
		sqlDB.SetConnMaxIdleTime(idle)
	}
}

// Driver returns the configured driver name.
func (d *DB) Driver() string { return d.cfg.Driver }

// SQLDB returns the underlying connection pool.
func (d *DB) SQLDB() (*sql.DB, error) {
	return d.GormDB.DB()
}

// Connect checks out a dedicated connection from the pool.
func (d *DB) Connect(ctx context.Context) (Conn, error) {
	d.mu.Lock()
	closed := d.closed
	d.mu.Unlock()
	if closed {
		return nil, errClosed
	}
	sqlDB, err := d.GormDB.DB()
	if err != nil {
		return nil, err
	}
	return NewSQLConnector(sqlDB).Connect(ctx)
}

// Close closes the underlying sql.DB connection pool. Safe to call multiple times.
func (d *DB) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}

	sqlDB, err := d.GormDB.DB()
	if err != nil {
		return err
	}
	d.log.Info("Closing database connection")
	d.closed = true
	return sqlDB.Close()
}

// PingContext verifies the database connection is alive.
func (d *DB) PingContext(ctx context.Context) error {
	sqlDB, err := d.GormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// WithContext returns a GORM session scoped to the given context.
func (d *DB) WithContext(ctx context.Context) *gorm.DB {
	return d.GormDB.WithContext(ctx)
}

// AutoMigrate runs GORM auto-migration for the given models.
func (d *DB) AutoMigrate(models ...any) error {
	d.log.Debug("Running auto-migration", logger.Fields("models", len(models)))
	for _, model := range models {
		if err := d.GormDB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}
	return nil
}
