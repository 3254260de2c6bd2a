package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://127.0.0.1:8080", 5*time.Second)
//	resp, err := client.R().SetHeader("second-request", "hi").Get("/service02/message")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent client whose relative request URLs
// resolve against baseURL. A non-positive timeout leaves resty's default.
// The server integration tests use it to call the running service.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().SetBaseURL(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
