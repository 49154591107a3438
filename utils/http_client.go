package utils

import (
	"net/http"
	"time"
)

// NewHTTPClient returns the shared client used for calls to the external
// storage providers. Outbound calls must not hang forever.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 10 * time.Second,
	}
}
