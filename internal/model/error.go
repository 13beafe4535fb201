package model

import "errors"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON     = "INVALID_JSON"
	ErrCodeMissingField    = "MISSING_FIELD"
	ErrCodeEmptyName       = "EMPTY_NAME"
	ErrCodeInvalidPrice    = "INVALID_PRICE"
	ErrCodeProductNotFound = "PRODUCT_NOT_FOUND"
	ErrCodeNotSaved        = "NOT_SAVED"
	ErrCodeSnapshotCorrupt = "SNAPSHOT_CORRUPT"
	ErrCodeUnauthorised    = "UNAUTHORIZED"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrEmptyName       = NewDomainError(ErrCodeEmptyName, "Product name must not be empty")
	ErrInvalidPrice    = NewDomainError(ErrCodeInvalidPrice, "Price must be a finite number greater than zero")
	ErrProductNotFound = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrNotSaved        = NewDomainError(ErrCodeNotSaved, "List could not be saved")
	ErrSnapshotCorrupt = NewDomainError(ErrCodeSnapshotCorrupt, "Saved list is malformed")
)

// IsValidation reports whether err rejects the input of a mutation.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyName) || errors.Is(err, ErrInvalidPrice)
}

// Code extracts the domain error code from err, or ErrCodeInternalError.
func Code(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ErrCodeInternalError
}
