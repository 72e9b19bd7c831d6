package ioutils

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/handiism/artic-table/internal/model"
)

// Format is an export file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return FormatCSV
	}
	return FormatJSON
}

// Record is the exported form of an artwork.
type Record struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	PlaceOfOrigin string `json:"place_of_origin"`
	ArtistDisplay string `json:"artist_display"`
	Inscriptions  string `json:"inscriptions"`
	DateStart     *int   `json:"date_start"`
	DateEnd       *int   `json:"date_end"`
}

// NewRecords converts artworks to records, keeping their order.
func NewRecords(rows []model.Artwork) []Record {
	out := make([]Record, 0, len(rows))
	for _, a := range rows {
		out = append(out, Record{
			ID:            a.ID,
			Title:         a.Title,
			PlaceOfOrigin: a.PlaceOfOrigin,
			ArtistDisplay: a.ArtistDisplay,
			Inscriptions:  a.Inscriptions,
			DateStart:     a.DateStart,
			DateEnd:       a.DateEnd,
		})
	}
	return out
}

// Encode writes rows to w in the given format.
func Encode(w io.Writer, format Format, rows []model.Artwork) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(NewRecords(rows))
	case FormatCSV:
		return encodeCSV(w, rows)
	}
	return fmt.Errorf("unsupported export format %q", format)
}

// Export writes rows to path in the format its extension names.
func Export(ctx context.Context, path string, rows []model.Artwork) error {
	var buf bytes.Buffer
	if err := Encode(&buf, FormatFromPath(path), rows); err != nil {
		return err
	}
	if err := WriteFile(ctx, path, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to export %s: %w", path, err)
	}
	return nil
}

func encodeCSV(w io.Writer, rows []model.Artwork) error {
	cw := csv.NewWriter(w)

	header := []string{"id"}
	for _, c := range model.Columns {
		header = append(header, c.Field)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, a := range rows {
		record := append([]string{strconv.Itoa(a.ID)}, a.Cells()...)
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
