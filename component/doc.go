// Package component defines the lifecycle interfaces shared by the
// database connection, the migrated test store and the fixture session.
//
// # Interfaces
//
//   - Component: lifecycle (Start/Stop) and health reporting
//   - Describable: one-line summaries collected by Registry.Describe
//
// Registry starts components in registration order and stops them in
// reverse, logging each transition through an injected logger.
package component
