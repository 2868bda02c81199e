package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Registry errors
const (
	// ErrCodeDuplicateFactory indicates a second factory was defined for a type.
	ErrCodeDuplicateFactory ErrorCode = "DUPLICATE_FACTORY"
	// ErrCodeFactoryNotFound indicates a build was requested for an undefined type.
	ErrCodeFactoryNotFound ErrorCode = "FACTORY_NOT_FOUND"
)

// Entity errors
const (
	// ErrCodeInvalidEntity indicates the value is not a usable entity (nil or not a struct).
	ErrCodeInvalidEntity ErrorCode = "INVALID_ENTITY"
	// ErrCodeAmbiguousIdentity indicates zero or several identity fields where exactly one is required.
	ErrCodeAmbiguousIdentity ErrorCode = "AMBIGUOUS_IDENTITY"
	// ErrCodeMaterialization indicates a row value could not be coerced into its field.
	ErrCodeMaterialization ErrorCode = "MATERIALIZATION_ERROR"
)

// Store errors
const (
	// ErrCodePersistence indicates the store rejected or failed a statement.
	ErrCodePersistence ErrorCode = "PERSISTENCE_ERROR"
	// ErrCodeRowNotFound indicates a select matched no row.
	ErrCodeRowNotFound ErrorCode = "ROW_NOT_FOUND"
	// ErrCodeConnectionFailed indicates a connection could not be acquired.
	ErrCodeConnectionFailed ErrorCode = "CONNECTION_FAILED"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeValidation indicates a struct failed its validation rules.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeConnectionFailed: true,
	ErrCodePersistence:      false,
	ErrCodeInternal:         false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
