package aiqsdk

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for an AIQ integration supervisor. It holds no
// mutable state between calls: every operation allocates its own request and
// response, so a single SDKClient is safe for concurrent use as long as its
// HTTPClient is (the default pooled http.Client is).
type SDKClient struct {
	// BaseURL is the supervisor's token endpoint base, without a trailing
	// slash. Supplied by the caller, never modified after construction.
	BaseURL string

	// HTTPClient performs the actual round trips. Callers that need custom
	// timeouts or transports can swap it out before first use.
	HTTPClient *http.Client

	// Logger receives debug lines for each authentication attempt.
	// When nil, slog.Default() is used. Credentials are never logged.
	Logger *slog.Logger
}

// NewSDKClient creates a supervisor client with a 10 second request timeout.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *SDKClient) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *SDKClient) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
