package model

import (
	"regexp"
	"strconv"
	"strings"
)

var whitespace = regexp.MustCompile(`\s+`)

// Artwork represents a single record from the upstream artwork listing.
//
// Artwork carries only the fields the table displays. The upstream may send
// null for any of the text fields or years; those arrive as empty strings and
// nil years respectively. Records are never mutated after decoding.
//
// Example:
//
//	start, end := 1884, 1886
//	a := Artwork{
//	    ID:            27992,
//	    Title:         "A Sunday on La Grande Jatte — 1884",
//	    PlaceOfOrigin: "France",
//	    ArtistDisplay: "Georges Seurat\nFrench, 1859-1891",
//	    DateStart:     &start,
//	    DateEnd:       &end,
//	}
//	a.Cells() // ["A Sunday on ...", "France", "Georges Seurat French, 1859-1891", "", "1884", "1886"]
type Artwork struct {
	// ID is the stable upstream identifier. Selection membership uses it.
	ID int

	// Title is the artwork title.
	Title string

	// PlaceOfOrigin is where the artwork was made.
	PlaceOfOrigin string

	// ArtistDisplay is the multi-line artist credit as published upstream.
	ArtistDisplay string

	// Inscriptions holds any inscription text on the object.
	Inscriptions string

	// DateStart is the earliest year of the artwork, nil when unknown.
	DateStart *int

	// DateEnd is the latest year of the artwork, nil when unknown.
	DateEnd *int
}

// Column describes one displayed field of an Artwork.
type Column struct {
	// Field is the upstream field name, e.g. "place_of_origin".
	Field string

	// Header is the column label shown to the user.
	Header string
}

// Columns lists the displayed fields in table order.
var Columns = []Column{
	{Field: "title", Header: "Title"},
	{Field: "place_of_origin", Header: "Origin"},
	{Field: "artist_display", Header: "Artist"},
	{Field: "inscriptions", Header: "Inscriptions"},
	{Field: "date_start", Header: "Start Date"},
	{Field: "date_end", Header: "End Date"},
}

// Fields returns the upstream field names needed to fill every column,
// including the id.
func Fields() []string {
	fields := make([]string, 0, len(Columns)+1)
	fields = append(fields, "id")
	for _, c := range Columns {
		fields = append(fields, c.Field)
	}
	return fields
}

// Cells returns the display values of the artwork in Columns order.
//
// Whitespace runs (including the newlines upstream puts in artist credits)
// are collapsed to a single space so every value fits on one table line.
func (a Artwork) Cells() []string {
	return []string{
		displayText(a.Title),
		displayText(a.PlaceOfOrigin),
		displayText(a.ArtistDisplay),
		displayText(a.Inscriptions),
		displayYear(a.DateStart),
		displayYear(a.DateEnd),
	}
}

func displayText(s string) string {
	s = whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func displayYear(y *int) string {
	if y == nil {
		return ""
	}
	return strconv.Itoa(*y)
}
