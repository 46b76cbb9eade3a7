// Package testutil provides a mock artwork catalog for tests.
package testutil

import (
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
)

// MockArtwork is one record served by MockCatalog.
type MockArtwork struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	PlaceOfOrigin string  `json:"place_of_origin"`
	ArtistDisplay string  `json:"artist_display"`
	Inscriptions  *string `json:"inscriptions"`
	DateStart     *int    `json:"date_start"`
	DateEnd       *int    `json:"date_end"`
}

// MockCatalog serves /artworks from an in-memory record list.
type MockCatalog struct {
	server *httptest.Server

	mu       sync.Mutex
	records  []MockArtwork
	failWith int

	requestCount int
	lastQuery    map[string]string
	lastHeader   http.Header
}

// NewMockCatalog starts a server holding total generated records.
func NewMockCatalog(total int) *MockCatalog {
	m := &MockCatalog{records: GenerateArtworks(total)}
	mux := http.NewServeMux()
	mux.HandleFunc("/artworks", m.handleArtworks)
	m.server = httptest.NewServer(mux)
	return m
}

// GenerateArtworks builds n deterministic records with ids 1..n.
func GenerateArtworks(n int) []MockArtwork {
	out := make([]MockArtwork, 0, n)
	for i := 1; i <= n; i++ {
		var inscriptions *string
		if i%2 == 0 {
			s := fmt.Sprintf("Signed lower right %d", i)
			inscriptions = &s
		}
		start, end := 1900+i, 1901+i
		out = append(out, MockArtwork{
			ID:            i,
			Title:         fmt.Sprintf("Artwork %d", i),
			PlaceOfOrigin: "Chicago",
			ArtistDisplay: fmt.Sprintf("Artist %d", i),
			Inscriptions:  inscriptions,
			DateStart:     &start,
			DateEnd:       &end,
		})
	}
	return out
}

// URL returns the base URL to configure a catalog client with.
func (m *MockCatalog) URL() string {
	return m.server.URL
}

// Close shuts down the server.
func (m *MockCatalog) Close() {
	m.server.Close()
}

// FailWith makes every subsequent request answer with status; 0 restores normal responses.
func (m *MockCatalog) FailWith(status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWith = status
}

// Requests returns the number of requests served so far.
func (m *MockCatalog) Requests() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requestCount
}

// LastQuery returns the page and limit parameters of the latest request.
func (m *MockCatalog) LastQuery() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return maps.Clone(m.lastQuery)
}

// LastHeader returns the headers of the latest request.
func (m *MockCatalog) LastHeader() http.Header {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastHeader.Clone()
}

func (m *MockCatalog) handleArtworks(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	m.requestCount++
	m.lastHeader = r.Header.Clone()
	m.lastQuery = map[string]string{
		"page":  r.URL.Query().Get("page"),
		"limit": r.URL.Query().Get("limit"),
	}
	failWith := m.failWith
	records := m.records
	m.mu.Unlock()

	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if failWith != 0 {
		http.Error(w, `{"error":"mock failure"}`, failWith)
		return
	}

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 {
		limit = 12
	}

	start := (page - 1) * limit
	end := start + limit
	if start > len(records) {
		start = len(records)
	}
	if end > len(records) {
		end = len(records)
	}

	totalPages := (len(records) + limit - 1) / limit
	body := map[string]any{
		"pagination": map[string]any{
			"total":        len(records),
			"limit":        limit,
			"offset":       start,
			"total_pages":  totalPages,
			"current_page": page,
		},
		"data": records[start:end],
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}
