package httpx

import (
	"net"
	"net/http"
	"time"
)

// NewClient returns a client tuned for the single upstream host this
// service talks to. Timeout covers the whole exchange; there is no retry
// layer on top, a failed submission is reported to the user as-is.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        10,
			MaxConnsPerHost:     10,
			MaxIdleConnsPerHost: 5,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}
