package errors

import (
	"fmt"
)

// AppError is the unified fixturekit error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// --- Common Error Constructors ---

// DuplicateFactory creates an error for a second factory definition of the same type.
func DuplicateFactory(typeName string) *AppError {
	return &AppError{
		Code:    ErrCodeDuplicateFactory,
		Message: fmt.Sprintf("%s is already registered. You can only register one factory per type.", typeName),
		Details: map[string]any{"type": typeName},
	}
}

// FactoryNotFound creates an error for a build requested on an undefined type.
func FactoryNotFound(typeName string) *AppError {
	return &AppError{
		Code:    ErrCodeFactoryNotFound,
		Message: fmt.Sprintf("no factory is defined for %s", typeName),
		Details: map[string]any{"type": typeName},
	}
}

// InvalidEntity creates an error for a value that cannot be handled as an entity.
func InvalidEntity(reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidEntity,
		Message: fmt.Sprintf("invalid entity: %s", reason),
	}
}

// AmbiguousIdentity creates an error for an identity-scoped operation on a type
// that does not expose exactly one identity field.
func AmbiguousIdentity(typeName string, found int) *AppError {
	return &AppError{
		Code:    ErrCodeAmbiguousIdentity,
		Message: fmt.Sprintf("%s has %d identity fields, exactly one is required", typeName, found),
		Details: map[string]any{"type": typeName, "identity_fields": found},
	}
}

// Materialization creates an error for a row value that could not be coerced.
func Materialization(field string, raw string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeMaterialization,
		Message: fmt.Sprintf("cannot assign %q to field %s", raw, field),
		Details: map[string]any{"field": field, "value": raw},
		Cause:   cause,
	}
}

// Persistence creates an error for a statement the store rejected or failed.
func Persistence(op, table string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodePersistence,
		Message: fmt.Sprintf("%s on %s failed", op, table),
		Details: map[string]any{"operation": op, "table": table},
		Cause:   cause,
	}
}

// RowNotFound creates an error for a select that matched no row.
func RowNotFound(table string) *AppError {
	return &AppError{
		Code:    ErrCodeRowNotFound,
		Message: fmt.Sprintf("cannot find row in %s", table),
		Details: map[string]any{"table": table},
	}
}

// ConnectionFailed creates an error for a connection that could not be acquired.
func ConnectionFailed(cause error) *AppError {
	return &AppError{
		Code:      ErrCodeConnectionFailed,
		Message:   "unable to acquire a database connection",
		Retryable: true,
		Cause:     cause,
	}
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		Details: details,
	}
}

// Validation creates a new AppError for failed validation rules.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message}
}

// Internal creates a new AppError for an unexpected internal error.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred.",
		Cause: cause,
	}
}
