package dto

import "github.com/handiism/artic-table/internal/model"

// JSONArtwork represents one artwork object from the listing's data array.
//
// Every field except id may be null upstream, hence the pointers.
type JSONArtwork struct {
	ID            int     `json:"id"`
	Title         *string `json:"title"`
	PlaceOfOrigin *string `json:"place_of_origin"`
	ArtistDisplay *string `json:"artist_display"`
	Inscriptions  *string `json:"inscriptions"`
	DateStart     *int    `json:"date_start"`
	DateEnd       *int    `json:"date_end"`
}

// ToArtwork converts JSONArtwork to a model.Artwork.
func (ja *JSONArtwork) ToArtwork() model.Artwork {
	return model.Artwork{
		ID:            ja.ID,
		Title:         deref(ja.Title),
		PlaceOfOrigin: deref(ja.PlaceOfOrigin),
		ArtistDisplay: deref(ja.ArtistDisplay),
		Inscriptions:  deref(ja.Inscriptions),
		DateStart:     ja.DateStart,
		DateEnd:       ja.DateEnd,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
