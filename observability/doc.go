// Package observability traces and meters the statement batches that fixture
// sessions send, using OpenTelemetry.
//
// Instruments wraps a tracer and two metric instruments. A factory session
// starts one client span per statement batch and records its outcome:
//
//	fixture.statements                 counter, by operation, table and status
//	fixture.statement.duration         histogram in seconds
//
// Without configuration the global OpenTelemetry providers are used, which
// record nothing until a provider is installed. Component installs OTLP/HTTP
// trace and metric providers as a lifecycle component:
//
//	telemetry:
//	  enabled: true
//	  endpoint: localhost:4318
//	  insecure: true
//	  sample_rate: 0.5
package observability
