// Package errors provides the structured error type used across fixturekit.
// Every failure surfaced by a factory session is an *AppError carrying a
// machine-readable code, so tests can branch on the kind of failure with
// IsCode instead of matching message text.
package errors
