package factory

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/fixturekit/database"
	"github.com/kbukum/fixturekit/logger"
	"github.com/kbukum/fixturekit/observability"
	"github.com/kbukum/fixturekit/row"
	"github.com/kbukum/fixturekit/sqlgen"
)

// Statement operation names, used in errors and log fields.
const (
	opInsert  = "insert"
	opSelect  = "select"
	opUpdate  = "update"
	opDelete  = "delete"
	opExecute = "execute"
	opScript  = "create_from_sql"
)

// Session owns the factory definitions and the creation ledger of one test
// session. A Session is not safe for concurrent use.
type Session struct {
	connector database.Connector
	builder   *sqlgen.Builder
	log       *logger.Logger
	telemetry *observability.Instruments

	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider

	definitions map[reflect.Type]func() any
	order       []reflect.Type
	ledger      []any
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. Statements are logged at debug level.
func WithLogger(log *logger.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log.WithComponent("factory")
		}
	}
}

// WithTelemetry sets the providers statement spans and metrics are
// recorded with. Defaults to the global OpenTelemetry providers.
func WithTelemetry(tp trace.TracerProvider, mp metric.MeterProvider) Option {
	return func(s *Session) {
		s.tracerProvider = tp
		s.meterProvider = mp
	}
}

// NewSession creates a Session that writes through connector using the
// statement templates of dialect.
func NewSession(connector database.Connector, dialect sqlgen.Dialect, opts ...Option) *Session {
	s := &Session{
		connector:      connector,
		builder:        sqlgen.NewBuilder(dialect),
		log:            logger.NewNop(),
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
		definitions:    make(map[reflect.Type]func() any),
	}
	for _, opt := range opts {
		opt(s)
	}

	in, err := observability.NewInstruments(s.tracerProvider, s.meterProvider, dialect.Name())
	if err != nil {
		s.log.Warn("Telemetry disabled", logger.ErrorFields("instruments", err))
		in = observability.Noop()
	}
	s.telemetry = in
	return s
}

// ForDB creates a Session over db, picking the dialect from its driver.
func ForDB(db *database.DB, opts ...Option) (*Session, error) {
	dialect, ok := sqlgen.ForDriver(db.Driver())
	if !ok {
		return nil, fmt.Errorf("no statement dialect for driver %q", db.Driver())
	}
	return NewSession(db, dialect, opts...), nil
}

// Dialect returns the statement dialect of the session.
func (s *Session) Dialect() sqlgen.Dialect {
	return s.builder.Dialect
}

// ClearDefinitions removes every definition and forgets every created
// entity without deleting it.
func (s *Session) ClearDefinitions() {
	clear(s.definitions)
	s.order = nil
	s.ledger = nil
}

// DefinedTypes returns the types with a definition, in registration order.
func (s *Session) DefinedTypes() []reflect.Type {
	out := make([]reflect.Type, len(s.order))
	copy(out, s.order)
	return out
}

// Created returns the number of entities awaiting cleanup.
func (s *Session) Created() int {
	return len(s.ledger)
}

// Execute runs a caller-supplied statement batch and reports the rows affected.
func (s *Session) Execute(ctx context.Context, query string, args ...any) (int64, error) {
	var affected int64
	err := s.withConn(ctx, opExecute, "", query, func(ctx context.Context, conn database.Conn) error {
		var err error
		affected, err = conn.Exec(ctx, query, args...)
		return err
	})
	return affected, err
}

func (s *Session) query(ctx context.Context, op, table string, stmt sqlgen.Statement) ([]row.Row, error) {
	var rows []row.Row
	err := s.withConn(ctx, op, table, stmt.SQL, func(ctx context.Context, conn database.Conn) error {
		var err error
		rows, err = conn.Query(ctx, stmt.SQL, stmt.Args...)
		return err
	})
	return rows, err
}

func (s *Session) exec(ctx context.Context, op, table string, stmt sqlgen.Statement) error {
	return s.withConn(ctx, op, table, stmt.SQL, func(ctx context.Context, conn database.Conn) error {
		_, err := conn.Exec(ctx, stmt.SQL, stmt.Args...)
		return err
	})
}

// withConn runs fn on a dedicated connection that is released before it
// returns, inside the span of the statement batch.
func (s *Session) withConn(ctx context.Context, op, table, sql string, fn func(context.Context, database.Conn) error) (err error) {
	start := time.Now()
	ctx, span := s.telemetry.StartStatement(ctx, op, table, sql)
	defer func() {
		s.telemetry.EndStatement(ctx, span, op, table, time.Since(start), err)
	}()

	conn, err := s.connector.Connect(ctx)
	if err != nil {
		return database.FromDatabase(err, op, table)
	}
	defer conn.Close()

	err = fn(ctx, conn)
	fields := logger.StatementFields(op, table, sql, time.Since(start))
	if err != nil {
		s.log.WithContext(ctx).WithError(err).Debug("Statement failed", fields)
		return database.FromDatabase(err, op, table)
	}
	s.log.WithContext(ctx).Debug("Statement executed", fields)
	return nil
}
