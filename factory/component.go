package factory

import (
	"context"
	"fmt"

	"github.com/kbukum/fixturekit/component"
	"github.com/kbukum/fixturekit/testutil"
)

// Mark is a position in the creation ledger returned by Component.Snapshot.
type Mark int

// Component runs a Session as a test component. Stop and Reset sweep the
// ledger; Restore sweeps only what was created after a Snapshot.
type Component struct {
	session *Session
	started bool
}

var (
	_ testutil.TestComponent = (*Component)(nil)
	_ component.Describable  = (*Component)(nil)
)

// NewComponent wraps s.
func NewComponent(s *Session) *Component {
	return &Component{session: s}
}

// Session returns the wrapped session.
func (c *Component) Session() *Session { return c.session }

// Name returns the component name.
func (c *Component) Name() string { return "fixtures" }

// Start checks that a connection can be acquired.
func (c *Component) Start(ctx context.Context) error {
	conn, err := c.session.connector.Connect(ctx)
	if err != nil {
		return fmt.Errorf("fixture store unreachable: %w", err)
	}
	if err := conn.Close(); err != nil {
		return err
	}
	c.started = true
	return nil
}

// Stop deletes everything the session created.
func (c *Component) Stop(ctx context.Context) error {
	if !c.started {
		return nil
	}
	c.started = false
	return c.session.ClearAllCreated(ctx)
}

// Health reports the number of entities awaiting cleanup.
func (c *Component) Health(ctx context.Context) component.Health {
	if !c.started {
		return component.Health{Name: c.Name(), Status: component.StatusUnhealthy, Message: "not started"}
	}
	return component.Health{
		Name:    c.Name(),
		Status:  component.StatusHealthy,
		Message: fmt.Sprintf("%d created", c.session.Created()),
	}
}

// Reset deletes everything the session created. Definitions are kept.
func (c *Component) Reset(ctx context.Context) error {
	return c.session.ClearAllCreated(ctx)
}

// Snapshot returns the current ledger position as a Mark.
func (c *Component) Snapshot(ctx context.Context) (interface{}, error) {
	return Mark(c.session.Created()), nil
}

// Restore deletes the entities created after the Mark.
func (c *Component) Restore(ctx context.Context, snapshot interface{}) error {
	mark, ok := snapshot.(Mark)
	if !ok {
		return fmt.Errorf("invalid snapshot type: expected factory.Mark, got %T", snapshot)
	}
	return c.session.clearFrom(ctx, int(mark))
}

// Describe summarizes the session.
func (c *Component) Describe() component.Description {
	return component.Description{
		Type:    "fixtures",
		Details: fmt.Sprintf("dialect=%s definitions=%d", c.session.Dialect().Name(), len(c.session.order)),
	}
}
