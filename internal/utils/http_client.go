package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so callers use its API directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent resty client. A positive timeout is
// applied to every request.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	c := resty.New().SetHeader("User-Agent", "go-catalog-gateway")
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &HTTPClient{Client: c}
}
