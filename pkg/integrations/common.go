package integrations

import (
	"errors"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single request, including reading the body.
// Recursive tree listings of large buckets run to several megabytes.
const DefaultTimeout = 30 * time.Second

// UserAgent is sent with every request. GitHub rejects requests without one.
const UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:91.0) Gecko/20100101 Firefox/91.0"

// ErrNetwork is returned for transport failures (timeouts, refused
// connections, truncated bodies). Error statuses are not errors.
var ErrNetwork = errors.New("network error")

// NewHTTPClient creates an HTTP client with the given timeout.
// A non-positive timeout selects DefaultTimeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}
