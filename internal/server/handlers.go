package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/handiism/artic-table/internal/artic"
	"github.com/handiism/artic-table/internal/model"
	"github.com/handiism/artic-table/internal/table"
)

// PageRequest asks for a page change.
type PageRequest struct {
	Page int `json:"page" validate:"required,min=1"`
}

// ToggleRequest toggles one row of the current page.
type ToggleRequest struct {
	ID int `json:"id" validate:"required,min=1"`
}

// BulkRequest selects the first Count rows. Count is the raw input text.
type BulkRequest struct {
	Count string `json:"count" validate:"required"`
}

// ArtworkResponse is one row of the table.
type ArtworkResponse struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	PlaceOfOrigin string `json:"place_of_origin"`
	ArtistDisplay string `json:"artist_display"`
	Inscriptions  string `json:"inscriptions"`
	DateStart     *int   `json:"date_start"`
	DateEnd       *int   `json:"date_end"`
	Selected      bool   `json:"selected"`
}

// StateResponse is the JSON rendering of table.State.
type StateResponse struct {
	Rows          []ArtworkResponse `json:"rows"`
	Loading       bool              `json:"loading"`
	Page          int               `json:"page"`
	PageSize      int               `json:"page_size"`
	PageCount     int               `json:"page_count"`
	FirstRow      int               `json:"first_row"`
	Total         int               `json:"total"`
	SelectedIDs   []int             `json:"selected_ids"`
	SelectedCount int               `json:"selected_count"`
	BulkInput     string            `json:"bulk_input"`
	PopoverOpen   bool              `json:"popover_open"`
	Gathering     bool              `json:"gathering"`
}

func newStateResponse(s table.State) StateResponse {
	rows := make([]ArtworkResponse, 0, len(s.Rows))
	for _, a := range s.Rows {
		rows = append(rows, newArtworkResponse(a, s.IsSelected(a.ID)))
	}

	ids := s.Selection.IDs()
	if ids == nil {
		ids = []int{}
	}

	return StateResponse{
		Rows:          rows,
		Loading:       s.Loading,
		Page:          s.Page,
		PageSize:      s.PageSize,
		PageCount:     s.PageCount(),
		FirstRow:      s.FirstRow(),
		Total:         s.Total,
		SelectedIDs:   ids,
		SelectedCount: s.Selection.Len(),
		BulkInput:     s.BulkInput,
		PopoverOpen:   s.PopoverOpen,
		Gathering:     s.Gathering,
	}
}

func newArtworkResponse(a model.Artwork, selected bool) ArtworkResponse {
	return ArtworkResponse{
		ID:            a.ID,
		Title:         a.Title,
		PlaceOfOrigin: a.PlaceOfOrigin,
		ArtistDisplay: a.ArtistDisplay,
		Inscriptions:  a.Inscriptions,
		DateStart:     a.DateStart,
		DateEnd:       a.DateEnd,
		Selected:      selected,
	}
}

func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("OK")); err != nil {
		s.logger.Error().Err(err).Msg("unable to write health check")
	}
}

func (s *Server) getState(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, newStateResponse(s.store.State()))
}

func (s *Server) changePage(w http.ResponseWriter, r *http.Request) {
	var req PageRequest
	if !s.decode(w, r, &req) {
		return
	}

	state := s.store.Dispatch(detach(r), table.PageChanged{Page: req.Page})
	s.respondJSON(w, http.StatusOK, newStateResponse(state))
}

func (s *Server) toggleRow(w http.ResponseWriter, r *http.Request) {
	var req ToggleRequest
	if !s.decode(w, r, &req) {
		return
	}

	row, ok := findRow(s.store.State(), req.ID)
	if !ok {
		s.respondError(w, http.StatusNotFound, fmt.Sprintf("artwork %d is not on the current page", req.ID))
		return
	}

	state := s.store.Dispatch(r.Context(), table.RowToggled{Artwork: row})
	s.respondJSON(w, http.StatusOK, newStateResponse(state))
}

func (s *Server) clearSelection(w http.ResponseWriter, r *http.Request) {
	state := s.store.Dispatch(r.Context(), table.SelectionCleared{})
	s.respondJSON(w, http.StatusOK, newStateResponse(state))
}

func (s *Server) togglePopover(w http.ResponseWriter, r *http.Request) {
	state := s.store.Dispatch(r.Context(), table.PopoverToggled{})
	s.respondJSON(w, http.StatusOK, newStateResponse(state))
}

func (s *Server) bulkSelect(w http.ResponseWriter, r *http.Request) {
	var req BulkRequest
	if !s.decode(w, r, &req) {
		return
	}

	// Rejected counts never reach the store.
	if _, ok := artic.ParseCount(req.Count); !ok {
		s.respondError(w, http.StatusBadRequest, "count must be a positive integer")
		return
	}

	state := s.store.DispatchBatch(detach(r), table.BulkInputChanged{Text: req.Count}, table.BulkSubmitted{})
	s.respondJSON(w, http.StatusOK, newStateResponse(state))
}

// detach keeps the request's values but not its cancellation: the store is
// shared, so a load or gather finishes even if its caller goes away.
func detach(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}

func findRow(s table.State, id int) (model.Artwork, bool) {
	for _, a := range s.Rows {
		if a.ID == id {
			return a, true
		}
	}
	return model.Artwork{}, false
}

// decode reads and validates a JSON body, answering 400 on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		s.respondError(w, http.StatusBadRequest, "Validation error: "+validationMessage(err))
		return false
	}
	return true
}

func validationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(msgs, "; ")
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]any{
		"error":   true,
		"message": message,
		"code":    status,
	})
}
