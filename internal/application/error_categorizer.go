package application

import (
	"context"
	"errors"

	"github.com/DanielPopoola/request-flows/internal/domain"
)

// ErrorCategory tells validation, transport and decode failures apart.
// The presenter treats them the same; logs and metrics do not.
type ErrorCategory string

const (
	CategoryValidation ErrorCategory = "VALIDATION"
	CategoryTransport  ErrorCategory = "TRANSPORT"
	CategoryDecode     ErrorCategory = "DECODE"
	CategoryInternal   ErrorCategory = "INTERNAL"
)

// CategorizeError determines the error category for logging and metrics
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return CategoryTransport
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case domain.ErrCodeValidationFailed:
			return CategoryValidation
		case domain.ErrCodeTransportFailed, domain.ErrCodeUnexpectedStatus:
			return CategoryTransport
		case domain.ErrCodeDecodeFailed:
			return CategoryDecode
		case domain.ErrCodeEncodeFailed:
			return CategoryInternal
		}
	}

	if _, ok := IsStatusError(err); ok {
		return CategoryTransport
	}

	return CategoryInternal
}
