package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client configured to
// talk to the movie API. It embeds *resty.Client to expose all of its
// methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080")
//	resp, err := client.R().SetResult(&movies).Get("/movies")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient whose requests are resolved against
// baseURL and carry JSON content headers.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30*time.Second).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	return &HTTPClient{Client: client}
}

// WithBearer returns a copy of the client that sends the given token in the
// Authorization header.
func (c *HTTPClient) WithBearer(token string) *HTTPClient {
	return &HTTPClient{Client: c.Client.Clone().SetAuthToken(token)}
}
