package table

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/artworks/internal/catalog"
)

func rows(from, n int) []catalog.Artwork {
	out := make([]catalog.Artwork, 0, n)
	for i := from; i < from+n; i++ {
		out = append(out, catalog.Artwork{ID: fmt.Sprint(i), Title: fmt.Sprintf("Artwork %d", i)})
	}
	return out
}

func pageOf(total, number int) catalog.Page {
	n := catalog.PageSize
	if rem := total - (number-1)*catalog.PageSize; rem < n {
		n = max(rem, 0)
	}
	return catalog.Page{Number: number, Records: rows((number-1)*catalog.PageSize+1, n), TotalRecords: total}
}

// load runs a full successful fetch of page against a catalog holding total records.
func load(t *testing.T, s *State, total, page int) Outcome {
	t.Helper()
	ticket := s.BeginFetch(page)
	require.True(t, s.Loading())
	out := s.ApplyPage(ticket, pageOf(total, page))
	require.False(t, s.Loading())
	return out
}

func TestNewStateDefaults(t *testing.T) {
	s := New()
	require.Equal(t, 1, s.Page())
	require.Equal(t, 0, s.TotalRecords())
	require.Equal(t, 0, s.TotalPages())
	require.False(t, s.Loading())
	require.Empty(t, s.Records())
	require.Empty(t, s.Selection())
	require.Empty(t, s.VisitedPages())
}

func TestGoToPageIgnoredBeforeFirstLoad(t *testing.T) {
	s := New()
	for _, n := range []int{-1, 0, 1, 2} {
		require.False(t, s.GoToPage(n))
		require.Equal(t, 1, s.Page())
	}
}

func TestGoToPageOutOfRange(t *testing.T) {
	s := New()
	load(t, s, 25, 1)
	require.Equal(t, 3, s.TotalPages())

	for _, n := range []int{-5, 0, 4, 100} {
		require.False(t, s.GoToPage(n), "n=%d", n)
		require.Equal(t, 1, s.Page(), "n=%d", n)
	}
	require.True(t, s.GoToPage(3))
	require.Equal(t, 3, s.Page())
	require.False(t, s.GoToPage(4))
	require.Equal(t, 3, s.Page())
}

func TestGoToCurrentPageIsNoop(t *testing.T) {
	s := New()
	load(t, s, 25, 1)
	require.False(t, s.GoToPage(1))
}

func TestNavigationHelpers(t *testing.T) {
	s := New()
	load(t, s, 25, 1)
	require.False(t, s.CanGoBack())
	require.True(t, s.CanGoForward())
	require.False(t, s.First())
	require.False(t, s.Previous())

	require.True(t, s.Next())
	require.Equal(t, 2, s.Page())
	require.True(t, s.Last())
	require.Equal(t, 3, s.Page())
	require.False(t, s.CanGoForward())
	require.False(t, s.Next())
	require.False(t, s.Last())

	require.True(t, s.Previous())
	require.Equal(t, 2, s.Page())
	require.True(t, s.First())
	require.Equal(t, 1, s.Page())
}

func TestApplyPageReplacesRecords(t *testing.T) {
	s := New()
	load(t, s, 25, 1)
	require.Len(t, s.Records(), 10)
	require.Equal(t, "1", s.Records()[0].ID)

	require.True(t, s.GoToPage(3))
	load(t, s, 25, 3)
	require.Len(t, s.Records(), 5)
	require.Equal(t, "21", s.Records()[0].ID)
	require.Equal(t, 25, s.TotalRecords())
}

func TestApplyPageClipsToPageSize(t *testing.T) {
	s := New()
	ticket := s.BeginFetch(1)
	s.ApplyPage(ticket, catalog.Page{Number: 1, Records: rows(1, 14), TotalRecords: 14})
	require.Len(t, s.Records(), catalog.PageSize)
	require.Equal(t, 2, s.TotalPages())
}

func TestFirstVisitAddsPageOnce(t *testing.T) {
	s := New()
	out := load(t, s, 25, 1)
	require.True(t, out.FirstVisit)
	require.False(t, out.SelectionCleared)
	require.Equal(t, []int{1}, s.VisitedPages())

	require.True(t, s.GoToPage(2))
	load(t, s, 25, 2)
	require.True(t, s.GoToPage(1))
	out = load(t, s, 25, 1)
	require.False(t, out.FirstVisit)
	require.Equal(t, []int{1, 2}, s.VisitedPages())
}

func TestSelectionSurvivesFirstVisitAndClearsOnRevisit(t *testing.T) {
	s := New()
	load(t, s, 25, 1)
	require.Empty(t, s.Selection())

	picked := s.Records()[:2]
	s.SetSelection(picked)
	require.Equal(t, picked, s.Selection())

	require.True(t, s.GoToPage(2))
	out := load(t, s, 25, 2)
	require.True(t, out.FirstVisit)
	require.Equal(t, picked, s.Selection(), "first visit keeps selection")

	require.True(t, s.GoToPage(1))
	out = load(t, s, 25, 1)
	require.True(t, out.SelectionCleared)
	require.Empty(t, s.Selection())
}

func TestRevisitAlwaysClearsSelection(t *testing.T) {
	s := New()
	load(t, s, 40, 1)
	for _, p := range []int{2, 3, 4} {
		require.True(t, s.GoToPage(p))
		load(t, s, 40, p)
	}
	for _, p := range []int{1, 3, 2, 4} {
		s.SetSelection(s.Records()[:1])
		require.True(t, s.GoToPage(p))
		load(t, s, 40, p)
		require.Empty(t, s.Selection(), "page %d", p)
	}
}

func TestFailedFetchKeepsState(t *testing.T) {
	s := New()
	load(t, s, 25, 1)
	s.SetSelection(s.Records()[3:5])
	records, total, selection := s.Records(), s.TotalRecords(), s.Selection()

	require.True(t, s.GoToPage(2))
	ticket := s.BeginFetch(2)
	require.True(t, s.Loading())
	require.True(t, s.FailFetch(ticket))

	require.False(t, s.Loading())
	require.Equal(t, records, s.Records())
	require.Equal(t, total, s.TotalRecords())
	require.Equal(t, selection, s.Selection())
	require.False(t, s.Visited(2))
}

func TestStaleResponseIsDropped(t *testing.T) {
	s := New()
	load(t, s, 40, 1)

	require.True(t, s.GoToPage(2))
	slow := s.BeginFetch(2)
	require.True(t, s.GoToPage(3))
	fast := s.BeginFetch(3)

	out := s.ApplyPage(fast, pageOf(40, 3))
	require.False(t, out.Stale)
	require.False(t, s.Loading())

	out = s.ApplyPage(slow, pageOf(40, 2))
	require.True(t, out.Stale)
	require.Equal(t, "21", s.Records()[0].ID, "page 3 records stay")
	require.False(t, s.Visited(2))
	require.Equal(t, 3, s.Page())
}

func TestLoadingHeldUntilLatestFetchResolves(t *testing.T) {
	s := New()
	load(t, s, 40, 1)

	require.True(t, s.GoToPage(2))
	first := s.BeginFetch(2)
	require.True(t, s.GoToPage(3))
	second := s.BeginFetch(3)

	require.False(t, s.FailFetch(first))
	require.True(t, s.Loading())
	s.ApplyPage(second, pageOf(40, 3))
	require.False(t, s.Loading())
}

func TestSelectionIsCopied(t *testing.T) {
	s := New()
	in := rows(1, 2)
	s.SetSelection(in)
	in[0].Title = "mutated"
	require.Equal(t, "Artwork 1", s.Selection()[0].Title)

	out := s.Selection()
	out[1].Title = "mutated"
	require.Equal(t, "Artwork 2", s.Selection()[1].Title)
}
