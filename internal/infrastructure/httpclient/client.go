package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/DanielPopoola/request-flows/internal/application"
	"github.com/DanielPopoola/request-flows/internal/config"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 10 << 20

type HTTPClient struct {
	httpClient *http.Client
}

func NewClient(cfg config.HTTPClientConfig) application.Transport {
	return &HTTPClient{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// NewClientWith wraps an existing *http.Client, e.g. one from httptest.
func NewClientWith(httpClient *http.Client) application.Transport {
	return &HTTPClient{httpClient: httpClient}
}

// Do sends the request and returns the raw response, whatever its status.
// Only failures to get a response at all are errors.
func (c *HTTPClient) Do(ctx context.Context, req application.Request) (*application.Response, error) {
	var bodyReader io.Reader
	if req.Body != nil {
		bodyReader = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	for name, value := range req.Headers {
		httpReq.Header.Set(name, value)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Method: req.Method, URL: req.URL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &TransportError{Method: req.Method, URL: req.URL, Err: err}
	}

	return &application.Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}
