package httpclient

import (
	"crypto/tls"
	"net/http"
	"time"
)

// Options configures HTTP client creation
type Options struct {
	// Timeout is the request timeout duration (0 means no timeout)
	Timeout time.Duration
	// SkipSSLVerify disables SSL certificate verification (use with caution)
	SkipSSLVerify bool
}

// New creates an HTTP client with the specified options. Provider API clients
// share this constructor so timeout and TLS behavior stay consistent.
func New(opts Options) *http.Client {
	client := &http.Client{
		Timeout: opts.Timeout,
	}

	// Only configure a custom transport when SSL verification is skipped
	if opts.SkipSSLVerify {
		client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true,
			},
		}
	}

	return client
}
