// Package table holds the pagination and row-selection state behind the
// artwork table view.
//
// State is owned by a single update loop and is not safe for concurrent use.
// Every page fetch is bracketed by BeginFetch and ApplyPage/FailFetch; the
// Ticket returned by BeginFetch lets late responses for superseded fetches be
// recognised and dropped.
package table

import (
	"slices"

	"github.com/jask/artworks/internal/catalog"
)

// Ticket identifies one issued fetch.
type Ticket struct {
	Seq  uint64
	Page int
}

// Outcome describes what ApplyPage did.
type Outcome struct {
	Stale            bool
	FirstVisit       bool
	SelectionCleared bool
}

// State is the page-state holder, visited-pages set and selection holder.
type State struct {
	page         int
	totalRecords int
	loading      bool
	records      []catalog.Artwork
	visited      map[int]struct{}
	selection    []catalog.Artwork
	seq          uint64
}

// New returns state positioned on page 1 with nothing loaded.
func New() *State {
	return &State{page: 1, visited: make(map[int]struct{})}
}

func (s *State) Page() int         { return s.page }
func (s *State) TotalRecords() int { return s.totalRecords }
func (s *State) Loading() bool     { return s.loading }

// TotalPages is ceil(TotalRecords / catalog.PageSize).
func (s *State) TotalPages() int {
	return catalog.TotalPages(s.totalRecords)
}

// Records returns a copy of the displayed records.
func (s *State) Records() []catalog.Artwork {
	return slices.Clone(s.records)
}

// Visited reports whether page has been fetched successfully in this session.
func (s *State) Visited(page int) bool {
	_, ok := s.visited[page]
	return ok
}

// VisitedPages returns the visited set in ascending order.
func (s *State) VisitedPages() []int {
	out := make([]int, 0, len(s.visited))
	for p := range s.visited {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

// GoToPage moves to page n when 1 <= n <= TotalPages() and n differs from the
// current page. Anything else is ignored. It reports whether the page changed,
// in which case the caller must fetch it.
func (s *State) GoToPage(n int) bool {
	if n < 1 || n > s.TotalPages() || n == s.page {
		return false
	}
	s.page = n
	return true
}

func (s *State) First() bool    { return s.GoToPage(1) }
func (s *State) Previous() bool { return s.GoToPage(s.page - 1) }
func (s *State) Next() bool     { return s.GoToPage(s.page + 1) }
func (s *State) Last() bool     { return s.GoToPage(s.TotalPages()) }

// CanGoBack is false on page 1 (First and Previous disabled).
func (s *State) CanGoBack() bool { return s.page > 1 }

// CanGoForward is false on the last page (Next and Last disabled).
func (s *State) CanGoForward() bool { return s.page < s.TotalPages() }

// BeginFetch marks a fetch of page as in flight and supersedes any earlier one.
func (s *State) BeginFetch(page int) Ticket {
	s.seq++
	s.loading = true
	return Ticket{Seq: s.seq, Page: page}
}

// ApplyPage stores a successful response. A revisited page clears the
// selection; a first visit records the page and leaves the selection alone.
// Responses for superseded tickets change nothing.
func (s *State) ApplyPage(t Ticket, p catalog.Page) Outcome {
	if t.Seq != s.seq {
		return Outcome{Stale: true}
	}
	s.loading = false
	records := p.Records
	if len(records) > catalog.PageSize {
		records = records[:catalog.PageSize]
	}
	s.records = slices.Clone(records)
	s.totalRecords = p.TotalRecords

	if s.Visited(t.Page) {
		s.selection = nil
		return Outcome{SelectionCleared: true}
	}
	s.visited[t.Page] = struct{}{}
	return Outcome{FirstVisit: true}
}

// FailFetch ends a failed fetch. Records, total and selection are kept.
// It reports false when the ticket was superseded.
func (s *State) FailFetch(t Ticket) bool {
	if t.Seq != s.seq {
		return false
	}
	s.loading = false
	return true
}
