package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a failure of a request flow
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeTransportFailed  = "TRANSPORT_FAILED"
	ErrCodeUnexpectedStatus = "UNEXPECTED_STATUS"
	ErrCodeDecodeFailed     = "DECODE_FAILED"
	ErrCodeEncodeFailed     = "ENCODE_FAILED"
)

const (
	// MissingFieldsMessage is shown when the form is submitted incomplete.
	MissingFieldsMessage = "Please provide both a name and an email."

	// DefaultStatusErrorMessage is used when the server answers with a non-2xx status.
	DefaultStatusErrorMessage = "Network response was not ok"
)

func NewValidationError(message string, err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeValidationFailed,
		Message: message,
		Err:     err,
	}
}

// NewTransportError keeps the transport's own text as the message.
func NewTransportError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeTransportFailed,
		Message: err.Error(),
		Err:     err,
	}
}

func NewUnexpectedStatusError(message string, err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeUnexpectedStatus,
		Message: message,
		Err:     err,
	}
}

func NewDecodeError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeDecodeFailed,
		Message: "error decoding json response",
		Err:     err,
	}
}

func NewEncodeError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeEncodeFailed,
		Message: "error marshalling json",
		Err:     err,
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
