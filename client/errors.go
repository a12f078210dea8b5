package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Configuration errors, raised before any network I/O.
var (
	// ErrMissingBaseURL is returned when the client is constructed without a
	// base URL.
	ErrMissingBaseURL = errors.New("base URL must not be empty")

	// ErrMissingModelID is returned when a request names no model.
	ErrMissingModelID = errors.New("request must have a model id")

	// ErrInsecureWithCACert is returned when certificate verification is
	// disabled while a CA bundle path is also supplied.
	ErrInsecureWithCACert = errors.New("cannot disable certificate verification with a CA certificate path set")

	// ErrIncompleteMTLSPair is returned when only one of the client
	// certificate and key paths is supplied.
	ErrIncompleteMTLSPair = errors.New("must provide both a client certificate and a client key for mTLS")
)

// ServiceError is an error reported by the runtime itself, either as a
// non-2xx HTTP response or as an error frame inside a streamed response.
// StatusCode is zero for stream-embedded errors, which carry no HTTP status.
type ServiceError struct {
	StatusCode int
	Detail     string
}

func (e *ServiceError) Error() string {
	if e.StatusCode == 0 {
		return e.Detail
	}
	return fmt.Sprintf("response.status_code=%d %s", e.StatusCode, e.Detail)
}

// newServiceError extracts the service detail message from an error response
// body. The runtime reports errors as {"details": "..."}; a "message" key is
// accepted as well. Bodies that are not JSON fall back to their raw text, or
// to the standard status text when empty.
func newServiceError(statusCode int, body []byte) *ServiceError {
	detail := errorDetail(body)
	if detail == "" {
		detail = http.StatusText(statusCode)
	}
	return &ServiceError{StatusCode: statusCode, Detail: detail}
}

func errorDetail(body []byte) string {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return strings.TrimSpace(string(body))
	}
	for _, key := range []string{"details", "message"} {
		raw, ok := payload[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
		return string(raw)
	}
	return strings.TrimSpace(string(body))
}
