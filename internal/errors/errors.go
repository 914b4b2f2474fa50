// Package errors provides custom error types for the fincoach advisory core.
// Service-layer failures use AppError so that callers can branch on stable
// error codes while the presentation layer only ever sees the message. By
// contract nothing in the advisory core panics or aborts a caller: most
// degraded states (no income, missing market data) are rendered as messages
// or absent fields, and AppError is reserved for the few structured cases a
// caller must be able to distinguish.
package errors

// AppError represents a structured application error with an error code,
// a human-readable message, and an optional wrapped internal error.
type AppError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Internal error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:     sentinel.Code,
		Message:  sentinel.Message,
		Internal: internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:     sentinel.Code,
		Message:  message,
		Internal: sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput = &AppError{Code: "INVALID_INPUT", Message: "Invalid input"}
	ErrInternal     = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred"}
)

// Risk profile errors surfaced by the opportunity selector.
var (
	ErrRiskProfileNotFound = &AppError{Code: "RISK_PROFILE_NOT_FOUND", Message: "No risk profile found. Set your risk tolerance to get investment suggestions"}
	ErrUnknownRiskTier     = &AppError{Code: "UNKNOWN_RISK_TIER", Message: "Unrecognized risk tolerance"}
)

// Configuration errors.
var (
	ErrInvalidConfig = &AppError{Code: "INVALID_CONFIG", Message: "Invalid configuration"}
)
