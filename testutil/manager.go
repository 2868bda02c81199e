package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/kbukum/fixturekit/component"
	"github.com/kbukum/fixturekit/logger"
)

// Snapshot holds the per-component state captured by Manager.SnapshotAll,
// keyed by component name.
type Snapshot map[string]interface{}

// Manager provides lifecycle management for multiple test components.
// Start and stop ordering is delegated to a component.Registry: components
// start in the order they were added and stop in reverse.
type Manager struct {
	ctx        context.Context
	registry   *component.Registry
	components []TestComponent
	mu         sync.RWMutex
}

// ManagerOption configures a Manager.
type ManagerOption func(*managerOptions)

type managerOptions struct {
	log *logger.Logger
}

// WithManagerLogger sets the logger used for lifecycle transitions.
func WithManagerLogger(log *logger.Logger) ManagerOption {
	return func(o *managerOptions) { o.log = log }
}

// NewManager creates a new test component manager.
func NewManager(ctx context.Context, opts ...ManagerOption) *Manager {
	var o managerOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Manager{
		ctx:        ctx,
		registry:   component.NewRegistry(o.log),
		components: make([]TestComponent, 0),
	}
}

// Add registers a test component with the manager. Names must be unique.
func (m *Manager) Add(c TestComponent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.registry.Register(c); err != nil {
		return err
	}
	m.components = append(m.components, c)
	return nil
}

// Components returns all registered components.
func (m *Manager) Components() []TestComponent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]TestComponent, len(m.components))
	copy(result, m.components)
	return result
}

// Get retrieves a component by name.
// Returns nil if no component with the given name is found.
func (m *Manager) Get(name string) TestComponent {
	c, _ := m.registry.Get(name).(TestComponent)
	return c
}

// StartAll starts all registered components in order.
// If any component fails to start, returns immediately with that error.
func (m *Manager) StartAll() error {
	return m.registry.StartAll(m.ctx)
}

// StopAll stops the started components in reverse order.
// Every component is attempted; failures are joined.
func (m *Manager) StopAll() error {
	return m.registry.StopAll(m.ctx)
}

// ResetAll resets all registered components to their initial state.
// If any component fails to reset, returns immediately with that error.
func (m *Manager) ResetAll() error {
	for _, c := range m.Components() {
		if err := c.Reset(m.ctx); err != nil {
			return fmt.Errorf("failed to reset component %s: %w", c.Name(), err)
		}
	}
	return nil
}

// SnapshotAll captures the state of every component.
func (m *Manager) SnapshotAll() (Snapshot, error) {
	snap := make(Snapshot)
	for _, c := range m.Components() {
		s, err := c.Snapshot(m.ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to snapshot component %s: %w", c.Name(), err)
		}
		snap[c.Name()] = s
	}
	return snap, nil
}

// RestoreAll restores every component present in snap. Components are
// restored in reverse order so that dependents go back before what they
// depend on.
func (m *Manager) RestoreAll(snap Snapshot) error {
	components := m.Components()
	for i := len(components) - 1; i >= 0; i-- {
		c := components[i]
		s, ok := snap[c.Name()]
		if !ok {
			continue
		}
		if err := c.Restore(m.ctx, s); err != nil {
			return fmt.Errorf("failed to restore component %s: %w", c.Name(), err)
		}
	}
	return nil
}

// Describe returns summaries of the Describable components.
func (m *Manager) Describe() []component.Description {
	return m.registry.Describe()
}

// Cleanup is an alias for StopAll, provided for convenience.
// This makes it easy to use with defer or testing.T.Cleanup().
func (m *Manager) Cleanup() error {
	return m.StopAll()
}
