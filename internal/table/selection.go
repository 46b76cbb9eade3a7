package table

import (
	"slices"

	"github.com/jask/artworks/internal/catalog"
)

// Selection returns a copy of the checked rows in the order they were checked.
func (s *State) Selection() []catalog.Artwork {
	return slices.Clone(s.selection)
}

// SetSelection replaces the selection wholesale.
func (s *State) SetSelection(rows []catalog.Artwork) {
	s.selection = slices.Clone(rows)
}

// IsSelected reports whether a row with id is checked.
func (s *State) IsSelected(id string) bool {
	return indexOf(s.selection, id) >= 0
}

// ToggleRow returns sel with row removed when present (by id) or appended otherwise.
func ToggleRow(sel []catalog.Artwork, row catalog.Artwork) []catalog.Artwork {
	out := slices.Clone(sel)
	if i := indexOf(out, row.ID); i >= 0 {
		return slices.Delete(out, i, i+1)
	}
	return append(out, row)
}

// ToggleAll unchecks every displayed row when all of them are checked, and
// otherwise appends the displayed rows that are not yet checked.
func ToggleAll(sel, displayed []catalog.Artwork) []catalog.Artwork {
	if len(displayed) == 0 {
		return slices.Clone(sel)
	}
	allChecked := true
	for _, row := range displayed {
		if indexOf(sel, row.ID) < 0 {
			allChecked = false
			break
		}
	}
	out := slices.Clone(sel)
	if allChecked {
		return slices.DeleteFunc(out, func(a catalog.Artwork) bool {
			return indexOf(displayed, a.ID) >= 0
		})
	}
	for _, row := range displayed {
		if indexOf(out, row.ID) < 0 {
			out = append(out, row)
		}
	}
	return out
}

func indexOf(rows []catalog.Artwork, id string) int {
	return slices.IndexFunc(rows, func(a catalog.Artwork) bool { return a.ID == id })
}
