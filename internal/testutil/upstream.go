// Package testutil provides testing utilities for artic-table.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
)

// MockUpstream is a configurable fake of the artwork listing API.
//
// It serves Total records whose IDs are their 1-based positions, so the
// expected IDs of any prefix are 1..n.
type MockUpstream struct {
	server *httptest.Server

	mu        sync.Mutex
	total     int
	failPages map[int]int
	badPages  map[int]bool
	requests  []url.Values
}

// NewMockUpstream starts a fake upstream holding total records.
func NewMockUpstream(total int) *MockUpstream {
	m := &MockUpstream{
		total:     total,
		failPages: make(map[int]int),
		badPages:  make(map[int]bool),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/artworks", m.handleListing)
	m.server = httptest.NewServer(mux)

	return m
}

// BaseURL returns the API root to configure clients with.
func (m *MockUpstream) BaseURL() string {
	return m.server.URL + "/api/v1"
}

// Close shuts down the server.
func (m *MockUpstream) Close() {
	m.server.Close()
}

// FailPage makes every request for page answer with status.
func (m *MockUpstream) FailPage(page, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failPages[page] = status
}

// MalformPage makes every request for page answer 200 with a non-JSON body.
func (m *MockUpstream) MalformPage(page int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.badPages[page] = true
}

// Requests returns the query of every listing request received so far.
func (m *MockUpstream) Requests() []url.Values {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]url.Values, len(m.requests))
	copy(out, m.requests)
	return out
}

// RequestCount returns the number of listing requests received so far.
func (m *MockUpstream) RequestCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// IDs returns 1..n, the IDs of the first n upstream records.
func IDs(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i + 1
	}
	return ids
}

func (m *MockUpstream) handleListing(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	m.mu.Lock()
	m.requests = append(m.requests, q)
	total := m.total
	m.mu.Unlock()

	page := intParam(q, "page", 1)
	limit := intParam(q, "limit", 12)

	m.mu.Lock()
	status, fail := m.failPages[page]
	bad := m.badPages[page]
	m.mu.Unlock()

	switch {
	case fail:
		http.Error(w, "upstream failure", status)
		return
	case bad:
		w.Write([]byte("<html>not json</html>"))
		return
	case limit > 100:
		http.Error(w, `{"status":403,"error":"Invalid limit"}`, http.StatusForbidden)
		return
	}

	offset := (page - 1) * limit
	data := make([]map[string]any, 0, limit)
	for i := offset; i < offset+limit && i < total; i++ {
		id := i + 1
		data = append(data, map[string]any{
			"id":              id,
			"title":           fmt.Sprintf("Artwork %d", id),
			"place_of_origin": "Chicago",
			"artist_display":  fmt.Sprintf("Artist %d\nAmerican", id),
			"inscriptions":    nil,
			"date_start":      1900 + id,
			"date_end":        1901 + id,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"pagination": map[string]any{
			"total":        total,
			"limit":        limit,
			"offset":       offset,
			"total_pages":  (total + limit - 1) / limit,
			"current_page": page,
		},
		"data": data,
	})
}

func intParam(q url.Values, key string, def int) int {
	v, err := strconv.Atoi(q.Get(key))
	if err != nil || v < 1 {
		return def
	}
	return v
}
