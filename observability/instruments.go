package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// InstrumentationName names the tracer and meter of fixture sessions.
const InstrumentationName = "github.com/kbukum/fixturekit"

// Attribute keys.
const (
	AttrDBSystem    = "db.system"
	AttrDBOperation = "db.operation"
	AttrDBTable     = "db.sql.table"
	AttrDBStatement = "db.statement"
	AttrStatus      = "status"
)

// Metric names.
const (
	MetricStatements        = "fixture.statements"
	MetricStatementDuration = "fixture.statement.duration"
)

// Instruments traces and meters statement batches for one database system.
type Instruments struct {
	system     string
	tracer     trace.Tracer
	statements metric.Int64Counter
	duration   metric.Float64Histogram
}

// NewInstruments creates the tracer and metric instruments of a session
// writing to system ("sqlserver", "sqlite", "postgres").
func NewInstruments(tp trace.TracerProvider, mp metric.MeterProvider, system string) (*Instruments, error) {
	meter := mp.Meter(InstrumentationName)

	statements, err := meter.Int64Counter(MetricStatements,
		metric.WithDescription("Statement batches sent by fixture sessions"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricStatements, err)
	}

	duration, err := meter.Float64Histogram(MetricStatementDuration,
		metric.WithDescription("Duration of fixture statement batches"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricStatementDuration, err)
	}

	return &Instruments{
		system:     system,
		tracer:     tp.Tracer(InstrumentationName),
		statements: statements,
		duration:   duration,
	}, nil
}

// Noop returns instruments that record nothing.
func Noop() *Instruments {
	in, _ := NewInstruments(tracenoop.NewTracerProvider(), metricnoop.NewMeterProvider(), "")
	return in
}

// StartStatement starts the client span of one statement batch.
func (in *Instruments) StartStatement(ctx context.Context, op, table, sql string) (context.Context, trace.Span) {
	return in.tracer.Start(ctx, "fixture."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(AttrDBSystem, in.system),
			attribute.String(AttrDBOperation, op),
			attribute.String(AttrDBTable, table),
			attribute.String(AttrDBStatement, sql),
		),
	)
}

// EndStatement ends span and records the batch in the metric instruments.
func (in *Instruments) EndStatement(ctx context.Context, span trace.Span, op, table string, d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()

	attrs := metric.WithAttributes(
		attribute.String(AttrDBSystem, in.system),
		attribute.String(AttrDBOperation, op),
		attribute.String(AttrDBTable, table),
		attribute.String(AttrStatus, status),
	)
	in.statements.Add(ctx, 1, attrs)
	in.duration.Record(ctx, d.Seconds(), attrs)
}
