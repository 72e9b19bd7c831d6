package dto

import "github.com/handiism/artic-table/internal/model"

// JSONListing represents the body of GET /artworks.
type JSONListing struct {
	Data       []JSONArtwork   `json:"data"`
	Pagination *JSONPagination `json:"pagination"`
}

// JSONPagination represents the pagination block of a listing.
type JSONPagination struct {
	Total       int `json:"total"`
	Limit       int `json:"limit"`
	Offset      int `json:"offset"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
}

// ToPage converts the listing to a model.Page.
//
// number and limit are the values the page was requested with; they are
// used when the upstream leaves current_page or limit out.
func (jl *JSONListing) ToPage(number, limit int) *model.Page {
	artworks := make([]model.Artwork, 0, len(jl.Data))
	for i := range jl.Data {
		artworks = append(artworks, jl.Data[i].ToArtwork())
	}

	if jl.Pagination.CurrentPage > 0 {
		number = jl.Pagination.CurrentPage
	}
	if jl.Pagination.Limit > 0 {
		limit = jl.Pagination.Limit
	}

	page := model.NewPage(number, limit, jl.Pagination.Total, artworks)
	if jl.Pagination.TotalPages > 0 {
		page.TotalPages = jl.Pagination.TotalPages
	}
	return page
}
