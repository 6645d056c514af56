package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a resty client preset for the vault's JSON API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that asks for JSON and
// identifies itself as userAgent. Failed requests are not retried.
func NewHTTPClient(userAgent string) *HTTPClient {
	c := resty.New().
		SetHeader("Accept", "application/json").
		SetRetryCount(0)
	if userAgent != "" {
		c.SetHeader("User-Agent", userAgent)
	}

	return &HTTPClient{Client: c}
}
