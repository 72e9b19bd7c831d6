// Package http provides an HTTP client configured for the artwork API.
//
// The Client in this package handles:
//   - User-Agent and AIC-User-Agent headers identifying the application
//   - Timeout handling
//   - Status checking (anything but 200 OK is a StatusError)
//   - Request metrics and debug logging
//
// # Basic Usage
//
//	client := http.NewClient("artic-table/0.1 (you@example.com)", 60*time.Second)
//
//	// Fetch a JSON document
//	body, err := client.Get(ctx, "https://api.artic.edu/api/v1/artworks?page=1")
//
// # Metrics
//
// Every request is counted in artic_upstream_requests_total{status} and timed
// in artic_upstream_request_duration_seconds. Transport failures are counted
// with status="error".
package http
