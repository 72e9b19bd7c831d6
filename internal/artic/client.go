package artic

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/handiism/artic-table/internal/logging"
	"github.com/handiism/artic-table/internal/model"
)

// DefaultBaseURL is the public artwork API root.
const DefaultBaseURL = "https://api.artic.edu/api/v1"

// MaxLimit is the largest page size the upstream accepts.
const MaxLimit = 100

// Getter performs a GET and returns the body. *http.Client from
// internal/http satisfies it.
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// PageFetcher fetches one page of the listing at the given page size.
type PageFetcher interface {
	FetchPage(ctx context.Context, page, limit int) (*model.Page, error)
}

// Client reads the artwork listing endpoint.
//
// Example usage:
//
//	c := artic.NewClient(http.NewClient(ua, timeout), artic.DefaultBaseURL, model.Fields())
//	page, err := c.FetchPage(ctx, 1, 12)
type Client struct {
	getter  Getter
	baseURL string
	fields  []string
	logger  zerolog.Logger
}

// NewClient creates a listing client. An empty baseURL means DefaultBaseURL
// and empty fields means model.Fields().
func NewClient(getter Getter, baseURL string, fields []string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if len(fields) == 0 {
		fields = model.Fields()
	}
	return &Client{
		getter:  getter,
		baseURL: strings.TrimRight(baseURL, "/"),
		fields:  fields,
		logger:  logging.NewLogger("artic"),
	}
}

// ListingURL returns the URL of one listing page.
//
// Example:
//
//	c.ListingURL(2, 12)
//	// https://api.artic.edu/api/v1/artworks?fields=id%2Ctitle%2C...&limit=12&page=2
func (c *Client) ListingURL(page, limit int) string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	q.Set("fields", strings.Join(c.fields, ","))
	return c.baseURL + "/artworks?" + q.Encode()
}

// FetchPage requests one listing page and decodes it.
//
// Any failure (transport, status, decoding) is returned wrapped with the
// page number; callers treat them all alike.
func (c *Client) FetchPage(ctx context.Context, page, limit int) (*model.Page, error) {
	if limit > MaxLimit {
		limit = MaxLimit
	}

	listingURL := c.ListingURL(page, limit)
	body, err := c.getter.Get(ctx, listingURL)
	if err != nil {
		c.logger.Warn().Err(err).Int("page", page).Str("url", listingURL).Msg("page request failed")
		return nil, fmt.Errorf("page %d: %w", page, err)
	}

	result, err := ParseListing(body, page, limit)
	if err != nil {
		c.logger.Warn().Err(err).Int("page", page).Msg("page response unusable")
		return nil, fmt.Errorf("page %d: %w", page, err)
	}

	c.logger.Debug().
		Int("page", page).
		Int("limit", limit).
		Int("artworks", result.Len()).
		Int("total", result.Total).
		Msg("page fetched")

	return result, nil
}
