package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/afsarahmad786/basicValidation/internal/utils"
	"go.uber.org/zap"
	"resty.dev/v3"
)

// DefaultTimeout bounds every request made by HTTPClient.
const DefaultTimeout = 30 * time.Second

// HTTPClient is a base HTTP client using resty for API requests.
type HTTPClient struct {
	client *resty.Client
}

// HTTPError represents an HTTP error response from the remote API.
// It exposes the status code so callers can detect specific cases (e.g., 404)
// without parsing text messages.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// NewHTTPClient creates a new HTTPClient for baseURL expecting JSON responses.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPClient{
		client: resty.New().
			SetBaseURL(strings.TrimSuffix(baseURL, "/")).
			SetHeader("Accept", "application/json").
			SetResponseBodyUnlimitedReads(true).
			SetTimeout(timeout),
	}
}

// Close releases idle connections.
func (c *HTTPClient) Close() error {
	return c.client.Close()
}

// logResponse logs a completed request, quieter for client errors than for server errors.
func logResponse(response *resty.Response, method, endpoint string) {
	body := strings.TrimSpace(response.String())
	if len(body) > 1000 {
		body = body[:1000] + "…"
	}
	fields := []zap.Field{
		zap.String("method", method),
		zap.String("endpoint", endpoint),
		zap.Int("status_code", response.StatusCode()),
		zap.Duration("duration", response.Duration()),
	}

	switch {
	case response.StatusCode() >= 500:
		utils.WithComponent("client").Error("API error response (server)", append(fields, zap.String("body", body))...)
	case response.StatusCode() >= 400:
		utils.WithComponent("client").Debug("API error response (client)", append(fields, zap.String("body", body))...)
	default:
		utils.WithComponent("client").Debug("HTTP request completed", fields...)
	}
}
