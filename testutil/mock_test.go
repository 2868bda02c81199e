package testutil_test

import (
	"context"

	"github.com/kbukum/fixturekit/component"
	"github.com/kbukum/fixturekit/testutil"
)

// mockComponent is an in-memory TestComponent whose state is a row count.
type mockComponent struct {
	name     string
	started  bool
	stopped  bool
	rows     int
	resets   int
	restored interface{}

	startErr    error
	stopErr     error
	resetErr    error
	snapshotErr error
	restoreErr  error

	events *[]string
}

var _ testutil.TestComponent = (*mockComponent)(nil)

func newMockComponent(name string) *mockComponent {
	return &mockComponent{name: name}
}

func (m *mockComponent) record(event string) {
	if m.events != nil {
		*m.events = append(*m.events, event+":"+m.name)
	}
}

func (m *mockComponent) Name() string { return m.name }

func (m *mockComponent) Start(ctx context.Context) error {
	m.record("start")
	if m.startErr != nil {
		return m.startErr
	}
	m.started, m.stopped = true, false
	return nil
}

func (m *mockComponent) Stop(ctx context.Context) error {
	m.record("stop")
	if m.stopErr != nil {
		return m.stopErr
	}
	m.started, m.stopped = false, true
	return nil
}

func (m *mockComponent) Health(ctx context.Context) component.Health {
	status := component.StatusUnhealthy
	if m.started {
		status = component.StatusHealthy
	}
	return component.Health{Name: m.name, Status: status}
}

func (m *mockComponent) Reset(ctx context.Context) error {
	m.record("reset")
	if m.resetErr != nil {
		return m.resetErr
	}
	m.resets++
	m.rows = 0
	return nil
}

func (m *mockComponent) Snapshot(ctx context.Context) (interface{}, error) {
	if m.snapshotErr != nil {
		return nil, m.snapshotErr
	}
	return m.rows, nil
}

func (m *mockComponent) Restore(ctx context.Context, snapshot interface{}) error {
	m.record("restore")
	if m.restoreErr != nil {
		return m.restoreErr
	}
	m.restored = snapshot
	m.rows = snapshot.(int)
	return nil
}

func (m *mockComponent) Describe() component.Description {
	return component.Description{Type: "mock", Details: m.name}
}
