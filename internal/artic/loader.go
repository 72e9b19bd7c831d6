package artic

import (
	"context"
	"errors"
	"fmt"

	"github.com/handiism/artic-table/internal/model"
)

// DefaultPageSize is the number of rows the table shows per page.
const DefaultPageSize = 12

// ErrInvalidPage is returned for page indices below 1.
var ErrInvalidPage = errors.New("page index must be at least 1")

// PageLoader loads single display pages at a fixed page size.
//
// It issues exactly one request per call, with no retry and no
// de-duplication: two overlapping calls produce two requests.
//
// Example:
//
//	loader := artic.NewPageLoader(client, artic.DefaultPageSize)
//	page, err := loader.LoadPage(ctx, 4)
//	// page.Len() <= 12, page.Total is the upstream count
type PageLoader struct {
	fetcher  PageFetcher
	pageSize int
}

// NewPageLoader creates a loader. A non-positive pageSize means DefaultPageSize.
func NewPageLoader(fetcher PageFetcher, pageSize int) *PageLoader {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &PageLoader{
		fetcher:  fetcher,
		pageSize: pageSize,
	}
}

// PageSize returns the fixed display page size.
func (l *PageLoader) PageSize() int {
	return l.pageSize
}

// LoadPage fetches the 1-based page. The result never holds more than
// PageSize artworks.
func (l *PageLoader) LoadPage(ctx context.Context, page int) (*model.Page, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPage, page)
	}

	result, err := l.fetcher.FetchPage(ctx, page, l.pageSize)
	if err != nil {
		return nil, err
	}

	if len(result.Artworks) > l.pageSize {
		result.Artworks = result.Artworks[:l.pageSize]
	}
	return result, nil
}
