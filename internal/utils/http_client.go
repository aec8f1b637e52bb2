package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "card-portfolio"

// HTTPClient is the JSON client of the Google APIs the application talks to:
// the Sheets values and batchUpdate endpoints and the OAuth2 token endpoint.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client whose relative request URLs resolve against
// baseURL. A zero timeout leaves requests bounded only by their context.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
