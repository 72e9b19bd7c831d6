package model

// Page is one bounded slice of the upstream listing.
//
// Total is authoritative: it is the count the upstream reports across all
// pages and usually exceeds the number of artworks ever loaded locally.
// Artworks may be shorter than Limit on the last page and empty past it.
type Page struct {
	// Number is the 1-based page index.
	Number int

	// Limit is the page size the page was requested with.
	Limit int

	// Total is the upstream record count across all pages.
	Total int

	// TotalPages is the upstream page count at Limit, 0 when not reported.
	TotalPages int

	// Artworks holds the records of this page in upstream order.
	Artworks []Artwork
}

// NewPage creates a Page and derives TotalPages from total and limit.
func NewPage(number, limit, total int, artworks []Artwork) *Page {
	p := &Page{
		Number:   number,
		Limit:    limit,
		Total:    total,
		Artworks: artworks,
	}
	if limit > 0 {
		p.TotalPages = (total + limit - 1) / limit
	}
	return p
}

// Len returns the number of artworks on the page.
func (p *Page) Len() int {
	return len(p.Artworks)
}

// IsEmpty reports whether the page carries no artworks, which marks the end
// of the upstream data.
func (p *Page) IsEmpty() bool {
	return len(p.Artworks) == 0
}

// IsLast reports whether no later page can hold more records.
func (p *Page) IsLast() bool {
	if p.IsEmpty() {
		return true
	}
	return p.TotalPages > 0 && p.Number >= p.TotalPages
}
