package component

import "context"

// HealthStatus is the coarse state a component reports.
type HealthStatus string

const (
	StatusHealthy   HealthStatus = "healthy"
	StatusUnhealthy HealthStatus = "unhealthy"
	StatusDegraded  HealthStatus = "degraded"
)

// Health is the result of a single component health probe.
type Health struct {
	Name    string       `json:"name"`
	Status  HealthStatus `json:"status"`
	Message string       `json:"message,omitempty"`
}

// OK reports whether the component is fully healthy.
func (h Health) OK() bool { return h.Status == StatusHealthy }

// String renders the probe as name=status, with the message in parentheses.
func (h Health) String() string {
	s := h.Name + "=" + string(h.Status)
	if h.Message != "" {
		s += "(" + h.Message + ")"
	}
	return s
}

// Component is a piece of test infrastructure with a start/stop lifecycle:
// the database connection, the migrated test store, the telemetry exporters
// and the fixture session.
type Component interface {
	// Name is the unique registry key.
	Name() string
	Start(ctx context.Context) error
	// Stop releases everything Start acquired.
	Stop(ctx context.Context) error
	Health(ctx context.Context) Health
}

// Description is what a component reports about itself in the startup
// summary.
type Description struct {
	// Name overrides Component.Name in the summary when set.
	Name string
	// Type groups components, e.g. "database" or "fixtures".
	Type string
	// Details is a one-line configuration digest such as
	// "driver=sqlserver pool=10/2".
	Details string
}

// Describable is implemented by components that contribute a Description
// to Registry.Describe.
type Describable interface {
	Describe() Description
}
