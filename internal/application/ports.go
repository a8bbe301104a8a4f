package application

import (
	"context"
	"net/http"
	"time"
)

// Request is a fully resolved outbound call.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte
}

// Response is the raw answer of the remote API.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode <= 299
}

// Transport is the port for the network.
type Transport interface {
	Do(ctx context.Context, req Request) (*Response, error)
}

// TransportFunc adapts a function to Transport.
type TransportFunc func(ctx context.Context, req Request) (*Response, error)

func (f TransportFunc) Do(ctx context.Context, req Request) (*Response, error) {
	return f(ctx, req)
}

// Recorder receives lifecycle events for metrics.
type Recorder interface {
	ObserveTransition(flow string, status string)
	ObserveFailure(flow string, category ErrorCategory)
	ObserveStale(flow string)
	ObserveDuration(flow string, d time.Duration)
}

// NopRecorder discards every event.
type NopRecorder struct{}

func (NopRecorder) ObserveTransition(string, string)      {}
func (NopRecorder) ObserveFailure(string, ErrorCategory)  {}
func (NopRecorder) ObserveStale(string)                   {}
func (NopRecorder) ObserveDuration(string, time.Duration) {}
