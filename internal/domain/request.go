package domain

import (
	"net/http"
	"slices"
	"strings"
)

// RequestConfig is the immutable description of the call a flow makes.
type RequestConfig struct {
	URL     string
	Method  string
	Headers map[string]string

	// BuildBody turns the submitted form into the request body. Optional.
	BuildBody func(input FormInput) (any, error)

	// StatusErrorMessage is the fixed diagnostic for a non-2xx response.
	StatusErrorMessage string
}

// Key identifies the configuration for re-arming a mount trigger.
// Header order does not matter.
func (c RequestConfig) Key() string {
	canonical := make(map[string]string, len(c.Headers))
	names := make([]string, 0, len(c.Headers))
	for name, value := range c.Headers {
		name = http.CanonicalHeaderKey(name)
		canonical[name] = value
		names = append(names, name)
	}
	slices.Sort(names)

	var b strings.Builder
	b.WriteString(c.method())
	b.WriteByte(' ')
	b.WriteString(c.URL)
	for _, name := range names {
		b.WriteByte('\n')
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(canonical[name])
	}
	return b.String()
}

// ResolvedMethod returns the configured method, GET when unset.
func (c RequestConfig) ResolvedMethod() string {
	return c.method()
}

// ResolvedStatusErrorMessage returns the configured message or the default one.
func (c RequestConfig) ResolvedStatusErrorMessage() string {
	if c.StatusErrorMessage == "" {
		return DefaultStatusErrorMessage
	}
	return c.StatusErrorMessage
}

func (c RequestConfig) method() string {
	if c.Method == "" {
		return http.MethodGet
	}
	return strings.ToUpper(c.Method)
}

// JSONHeaders returns the headers every flow sends.
func JSONHeaders() map[string]string {
	return map[string]string{
		"Content-Type": "application/json",
	}
}

// BearerHeaders returns JSONHeaders plus a static bearer credential.
func BearerHeaders(token string) map[string]string {
	headers := JSONHeaders()
	headers["Authorization"] = "Bearer " + token
	return headers
}
