package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/jask/artworks/internal/catalog"
)

type column struct {
	title string
	width int
	value func(catalog.Artwork) string
}

func (a *App) columns() []column {
	return []column{
		{title: "Title", width: a.cfg.TitleWidth, value: func(r catalog.Artwork) string { return r.Title }},
		{title: "Place of Origin", width: 16, value: func(r catalog.Artwork) string { return r.PlaceOfOrigin }},
		{title: "Artist Display", width: 28, value: func(r catalog.Artwork) string { return r.ArtistDisplay }},
		{title: "Inscriptions", width: 24, value: func(r catalog.Artwork) string { return r.Inscriptions }},
		{title: "Start Date", width: 10, value: func(r catalog.Artwork) string { return yearText(r.DateStart) }},
		{title: "End Date", width: 10, value: func(r catalog.Artwork) string { return yearText(r.DateEnd) }},
	}
}

func (a *App) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(a.cfg.Title))
	b.WriteString("\n")
	b.WriteString(tableBoxStyle.Render(a.renderTable()))
	b.WriteString("\n")
	b.WriteString(a.renderNav())
	b.WriteString("\n")
	b.WriteString(selectedBoxStyle.Render(a.renderSelected()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(a.help.View(a.keys)))
	return b.String()
}

func (a *App) renderTable() string {
	cols := a.columns()
	lines := make([]string, 0, catalog.PageSize+2)

	header := []string{pad("[ ]", 3)}
	for _, c := range cols {
		header = append(header, pad(c.title, c.width))
	}
	lines = append(lines, tableHeaderStyle.Render(strings.Join(header, " ")))

	records := a.state.Records()
	if len(records) == 0 && !a.state.Loading() {
		lines = append(lines, emptyStyle.Render("No records found."))
	}
	for i, r := range records {
		box := "[ ]"
		if a.state.IsSelected(r.ID) {
			box = checkedStyle.Render("[x]")
		}
		cells := []string{box}
		for _, c := range cols {
			text := pad(cellText(c.value(r)), c.width)
			if c.title == "Start Date" || c.title == "End Date" {
				text = yearStyle.Render(text)
			}
			cells = append(cells, text)
		}
		line := strings.Join(cells, " ")
		if i == a.cursor {
			line = cursorStyle.Render(ansi.Strip(line))
		} else {
			line = cellStyle.Render(line)
		}
		lines = append(lines, line)
	}

	if a.state.Loading() {
		lines = append(lines, a.spinner.View()+loadingStyle.Render(" Loading..."))
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderNav() string {
	back, forward := a.state.CanGoBack(), a.state.CanGoForward()
	parts := []string{
		navButton("First", back),
		navButton("Previous", back),
		pageIndicatorStyle.Render(fmt.Sprintf("Page %d of %d", a.state.Page(), a.state.TotalPages())),
		navButton("Next", forward),
		navButton("Last", forward),
	}
	return strings.Join(parts, "  ")
}

func navButton(label string, enabled bool) string {
	if enabled {
		return navButtonStyle.Render(label)
	}
	return navDisabledStyle.Render(label)
}

func (a *App) renderSelected() string {
	sel := a.state.Selection()
	lines := []string{titleStyle.Render("Selected Rows:")}
	if len(sel) == 0 {
		lines = append(lines, emptyStyle.Render("none"))
	}
	for _, r := range sel {
		lines = append(lines, "• "+selectedItemStyle.Render(cellText(r.Title))+" "+selectedIDStyle.Render("(ID: "+r.ID+")"))
	}
	if a.width > 0 && a.width < minWidth(a.columns()) {
		lines = append(lines, warnStyle.Render("widen the terminal to see every column"))
	}
	return strings.Join(lines, "\n")
}

func minWidth(cols []column) int {
	w := 3 + 4 // checkbox and box padding
	for _, c := range cols {
		w += c.width + 1
	}
	return w
}

// yearText renders a missing date as an empty cell.
func yearText(year *int) string {
	if year == nil {
		return ""
	}
	return strconv.Itoa(*year)
}

// cellText flattens multi-line catalog values onto one line.
func cellText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// pad truncates s to width cells (ellipsis when cut) and right-pads it.
func pad(s string, width int) string {
	s = ansi.Truncate(s, width, "…")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
