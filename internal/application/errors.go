package application

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrRejected stands in for a nil error passed to Reject.
var ErrRejected = errors.New("request rejected")

// StatusError describes a response whose status was not 2xx.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

func IsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	ok := errors.As(err, &statusErr)
	return statusErr, ok
}

// maxErrorBody bounds how much of an error body is kept for diagnostics.
const maxErrorBody = 512

func newStatusError(resp *Response) *StatusError {
	body := resp.Body
	if len(body) > maxErrorBody {
		cut := maxErrorBody
		for cut > 0 && !utf8.RuneStart(body[cut]) {
			cut--
		}
		body = body[:cut]
	}
	return &StatusError{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}
}
