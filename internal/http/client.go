package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/handiism/artic-table/internal/logging"
)

// DefaultUserAgent is sent when no User-Agent is configured.
const DefaultUserAgent = "artic-table"

// DefaultTimeout bounds a single request when no timeout is configured.
const DefaultTimeout = 60 * time.Second

var (
	upstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "artic_upstream_requests_total",
		Help: "Total upstream requests by HTTP status",
	}, []string{"status"})

	upstreamRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "artic_upstream_request_duration_seconds",
		Help:    "Upstream request duration in seconds",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"status"})
)

// StatusError is returned when the upstream answers with anything but 200 OK.
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Status)
}

// Client wraps HTTP operations with API-specific configuration.
//
// Client provides:
//   - Configured User-Agent headers (the artwork API asks clients to
//     identify themselves through AIC-User-Agent)
//   - Timeout handling
//   - Request metrics
//
// Example usage:
//
//	client := NewClient("artic-table", 30*time.Second)
//
//	body, err := client.Get(ctx, "https://api.artic.edu/api/v1/artworks?page=2")
//	if err != nil {
//	    var se *StatusError
//	    if errors.As(err, &se) {
//	        fmt.Println("upstream said", se.StatusCode)
//	    }
//	}
type Client struct {
	httpClient *http.Client
	userAgent  string
	logger     zerolog.Logger
}

// NewClient creates a new HTTP client.
//
// An empty userAgent falls back to DefaultUserAgent and a non-positive
// timeout to DefaultTimeout.
func NewClient(userAgent string, timeout time.Duration) *Client {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
		logger:    logging.NewLogger("http"),
	}
}

// UserAgent returns the User-Agent sent with every request.
func (c *Client) UserAgent() string {
	return c.userAgent
}

// Get performs a GET request and returns the response body as bytes.
//
// The request includes the configured User-Agent headers.
//
// Returns an error if:
//   - The request fails
//   - The response status is not 200 OK (a *StatusError)
//   - Reading the body fails
//
// Example:
//
//	data, err := client.Get(ctx, "https://api.artic.edu/api/v1/artworks?page=1")
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("AIC-User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe("error", start)
		c.logger.Debug().Err(err).Str("url", url).Msg("request failed")
		return nil, err
	}
	defer resp.Body.Close()

	status := strconv.Itoa(resp.StatusCode)
	c.observe(status, start)
	c.logger.Debug().
		Str("url", url).
		Int("status_code", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request complete")

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status, URL: url}
	}

	return io.ReadAll(resp.Body)
}

func (c *Client) observe(status string, start time.Time) {
	upstreamRequestsTotal.WithLabelValues(status).Inc()
	upstreamRequestDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())
}
