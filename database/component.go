package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/kbukum/fixturekit/component"
	apperrors "github.com/kbukum/fixturekit/errors"
	"github.com/kbukum/fixturekit/logger"
)

var errNotStarted = errors.New("database component not started")

// Component wraps DB and implements component.Component for lifecycle management.
type Component struct {
	db        *DB
	cfg       Config
	log       *logger.Logger
	dialector DialectorFunc
	models    []any
}

// NewComponent creates a database component for use with the component registry.
func NewComponent(cfg Config, log *logger.Logger) *Component {
	if log == nil {
		log = logger.NewNop()
	}
	return &Component{
		cfg: cfg,
		log: log,
	}
}

// WithDriver replaces the dialector built from the configured DSN.
func (c *Component) WithDriver(fn DialectorFunc) *Component {
	c.dialector = fn
	return c
}

// WithAutoMigrate registers models for auto-migration on Start.
func (c *Component) WithAutoMigrate(models ...any) *Component {
	c.models = append(c.models, models...)
	return c
}

// DB returns the underlying *DB, or nil if not started.
func (c *Component) DB() *DB {
	return c.db
}

// Connect checks out a dedicated connection once the component is started,
// so a fixture session can be built before Start.
func (c *Component) Connect(ctx context.Context) (Conn, error) {
	if c.db == nil {
		return nil, apperrors.ConnectionFailed(errNotStarted)
	}
	return c.db.Connect(ctx)
}

var (
	_ component.Component   = (*Component)(nil)
	_ component.Describable = (*Component)(nil)
	_ Connector             = (*Component)(nil)
)

// Name returns the component name.
func (c *Component) Name() string { return "database" }

// Start connects to the database and optionally runs auto-migration.
func (c *Component) Start(ctx context.Context) error {
	if !c.cfg.Enabled {
		c.log.Debug("Database component disabled")
		return nil
	}

	var (
		db  *DB
		err error
	)
	if c.dialector != nil {
		db, err = OpenDialector(ctx, c.dialector(c.cfg.DSN), c.cfg, c.log)
	} else {
		db, err = Open(ctx, c.cfg, c.log)
	}
	if err != nil {
		return fmt.Errorf("database start: %w", err)
	}
	c.db = db

	if c.cfg.AutoMigrate && len(c.models) > 0 {
		if err := c.db.AutoMigrate(c.models...); err != nil {
			return fmt.Errorf("database auto-migrate: %w", err)
		}
	}
	return nil
}

// Stop closes the database connection.
func (c *Component) Stop(_ context.Context) error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Health returns the current health status of the database.
func (c *Component) Health(ctx context.Context) component.Health {
	if !c.cfg.Enabled {
		return component.Health{Name: c.Name(), Status: component.StatusHealthy, Message: "disabled"}
	}
	if c.db == nil {
		return component.Health{
			Name:    c.Name(),
			Status:  component.StatusUnhealthy,
			Message: "database not initialized",
		}
	}

	status := c.db.CheckHealth(ctx)
	if !status.Connected {
		return component.Health{
			Name:    c.Name(),
			Status:  component.StatusUnhealthy,
			Message: fmt.Sprintf("ping failed: %s", status.Error),
		}
	}
	return component.Health{
		Name:    c.Name(),
		Status:  component.StatusHealthy,
		Message: fmt.Sprintf("latency=%s open=%d in_use=%d", status.Latency, status.OpenConns, status.InUseConns),
	}
}

// Describe returns summary info for the component.
func (c *Component) Describe() component.Description {
	details := fmt.Sprintf("driver=%s pool=%d/%d", c.cfg.Driver, c.cfg.MaxOpenConns, c.cfg.MaxIdleConns)
	if c.cfg.AutoMigrate {
		details += " auto-migrate=on"
	}
	return component.Description{
		Name:    c.cfg.Name,
		Type:    "database",
		Details: details,
	}
}
