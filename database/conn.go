package database

import (
	"context"
	"database/sql"
	"errors"

	apperrors "github.com/kbukum/fixturekit/errors"
	"github.com/kbukum/fixturekit/row"
)

var errClosed = errors.New("database is closed")

// Conn is a dedicated connection that runs statement batches.
type Conn interface {
	// Query runs a batch and returns the rows of its first result set.
	Query(ctx context.Context, query string, args ...any) ([]row.Row, error)
	// Exec runs a batch that returns no rows and reports the rows affected.
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	// Close releases the connection back to its pool.
	Close() error
}

// Connector hands out dedicated connections.
type Connector interface {
	Connect(ctx context.Context) (Conn, error)
}

// SQLConnector checks out connections from a database/sql pool.
type SQLConnector struct {
	db *sql.DB
}

// NewSQLConnector creates a Connector over an open pool.
func NewSQLConnector(db *sql.DB) *SQLConnector {
	return &SQLConnector{db: db}
}

// Connect checks out one connection. Acquisition failures are retryable.
func (c *SQLConnector) Connect(ctx context.Context) (Conn, error) {
	conn, err := c.db.Conn(ctx)
	if err != nil {
		return nil, apperrors.ConnectionFailed(err)
	}
	return &sqlConn{conn: conn}, nil
}

type sqlConn struct {
	conn *sql.Conn
}

func (c *sqlConn) Query(ctx context.Context, query string, args ...any) ([]row.Row, error) {
	rows, err := c.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return row.Scan(rows)
}

func (c *sqlConn) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := c.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (c *sqlConn) Close() error {
	return c.conn.Close()
}
