package catalog

import (
	"encoding/json"
	"fmt"
)

// PageSize is the fixed number of records requested per page.
const PageSize = 10

// Artwork represents one catalog record. DateStart and DateEnd are nil when
// the catalog has no date.
type Artwork struct {
	ID            string
	Title         string
	PlaceOfOrigin string
	ArtistDisplay string
	Inscriptions  string
	DateStart     *int
	DateEnd       *int
}

// Page is one decoded page of artworks plus the catalog-wide record count.
type Page struct {
	Number       int
	Records      []Artwork
	TotalRecords int
}

// TotalPages returns ceil(TotalRecords / PageSize).
func TotalPages(totalRecords int) int {
	if totalRecords <= 0 {
		return 0
	}
	return (totalRecords + PageSize - 1) / PageSize
}

// artworksResponse matches GET /artworks. Null strings decode to "", null dates to nil.
type artworksResponse struct {
	Pagination struct {
		Total       int `json:"total"`
		Limit       int `json:"limit"`
		TotalPages  int `json:"total_pages"`
		CurrentPage int `json:"current_page"`
	} `json:"pagination"`
	Data []artworkJSON `json:"data"`
}

type artworkJSON struct {
	ID            json.Number `json:"id"`
	Title         string      `json:"title"`
	PlaceOfOrigin string      `json:"place_of_origin"`
	ArtistDisplay string      `json:"artist_display"`
	Inscriptions  string      `json:"inscriptions"`
	DateStart     *int        `json:"date_start"`
	DateEnd       *int        `json:"date_end"`
}

func (a artworkJSON) toArtwork() (Artwork, error) {
	id := a.ID.String()
	if id == "" {
		return Artwork{}, fmt.Errorf("artwork missing id")
	}
	return Artwork{
		ID:            id,
		Title:         a.Title,
		PlaceOfOrigin: a.PlaceOfOrigin,
		ArtistDisplay: a.ArtistDisplay,
		Inscriptions:  a.Inscriptions,
		DateStart:     a.DateStart,
		DateEnd:       a.DateEnd,
	}, nil
}
