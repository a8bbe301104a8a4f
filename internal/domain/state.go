// Package domain holds the request lifecycle states, request configuration
// and the payloads exchanged by the read and write flows.
package domain

import "errors"

// Status names the variant of a RequestState
type Status string

const (
	StatusIdle    Status = "IDLE"
	StatusLoading Status = "LOADING"
	StatusSuccess Status = "SUCCESS"
	StatusFailed  Status = "FAILED"
)

// RequestState is the snapshot of one request lifecycle. Exactly one of
// Idle, Loading, Success or Failed. Snapshots are values and are replaced
// on every transition. A RequestState[T] only admits the variants
// instantiated with the same T.
type RequestState[T any] interface {
	Status() Status
	requestState(T)
}

// Idle means no request has started.
type Idle[T any] struct{}

// Loading means a request is in flight.
type Loading[T any] struct {
	RequestID uint64
}

// Success carries the decoded body of the last completed request.
type Success[T any] struct {
	Payload T
}

// Failed carries a human-readable message and the typed cause.
type Failed[T any] struct {
	Message string
	Err     error
}

func (Idle[T]) Status() Status    { return StatusIdle }
func (Loading[T]) Status() Status { return StatusLoading }
func (Success[T]) Status() Status { return StatusSuccess }
func (Failed[T]) Status() Status  { return StatusFailed }

func (Idle[T]) requestState(T)    {}
func (Loading[T]) requestState(T) {}
func (Success[T]) requestState(T) {}
func (Failed[T]) requestState(T)  {}

// IsLoading reports whether a request is in flight.
func IsLoading[T any](s RequestState[T]) bool {
	_, ok := s.(Loading[T])
	return ok
}

// ErrorCode returns the DomainError code of a Failed state, or "".
func ErrorCode[T any](s RequestState[T]) string {
	failed, ok := s.(Failed[T])
	if !ok {
		return ""
	}
	var domainErr *DomainError
	if errors.As(failed.Err, &domainErr) {
		return domainErr.Code
	}
	return ""
}
