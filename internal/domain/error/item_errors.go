// Package error defines domain-specific errors for the Krigzlist backend.
package error

import "errors"

// Item domain errors.
var (
	// ErrItemNameRequired is returned when an item name is empty after trimming.
	ErrItemNameRequired = errors.New("item name is required")

	// ErrItemNotFound is returned when an item id matches no entry in the store.
	ErrItemNotFound = errors.New("item not found")

	// ErrNegativeItemPrice is returned when an item draft carries a negative price.
	ErrNegativeItemPrice = errors.New("item price must not be negative")
)

// ItemErrorCode defines error codes for item errors.
// Format: ITM-XXYYYY where XX is category and YYYY is specific error.
type ItemErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeItemNameRequired  ItemErrorCode = "ITM-010001"
	ErrCodeItemNotFound      ItemErrorCode = "ITM-010002"
	ErrCodeNegativeItemPrice ItemErrorCode = "ITM-010003"
)

// ItemError represents an item error with code and message.
type ItemError struct {
	Code    ItemErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ItemError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ItemError) Unwrap() error {
	return e.Err
}

// NewItemError creates a new ItemError with the given code and message.
func NewItemError(code ItemErrorCode, message string, err error) *ItemError {
	return &ItemError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
