package artic

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/handiism/artic-table/internal/artic/dto"
	"github.com/handiism/artic-table/internal/model"
)

// ErrMalformedResponse is returned when a listing body is valid JSON but
// lacks the data array or the pagination block.
var ErrMalformedResponse = errors.New("malformed listing response")

// ParseListing decodes a listing body into a Page.
//
// number and limit are the values the page was requested with.
//
// Returns an error if:
//   - The body is not JSON
//   - The data array or pagination block is missing or null
//
// Example:
//
//	page, err := ParseListing(body, 2, 12)
//	if err != nil {
//	    return fmt.Errorf("failed to parse page 2: %w", err)
//	}
//	fmt.Printf("%d of %d artworks\n", page.Len(), page.Total)
func ParseListing(body []byte, number, limit int) (*model.Page, error) {
	var listing dto.JSONListing
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, fmt.Errorf("failed to decode listing: %w", err)
	}

	if listing.Data == nil {
		return nil, fmt.Errorf("%w: no data array", ErrMalformedResponse)
	}
	if listing.Pagination == nil {
		return nil, fmt.Errorf("%w: no pagination block", ErrMalformedResponse)
	}

	return listing.ToPage(number, limit), nil
}
