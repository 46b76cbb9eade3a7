// Package tui renders the artwork table and drives page fetches.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jask/artworks/internal/catalog"
	"github.com/jask/artworks/internal/config"
	"github.com/jask/artworks/internal/table"
)

// App is the bubbletea model for the artwork table.
type App struct {
	ctx     context.Context
	fetcher catalog.Fetcher
	cfg     config.UIConfig
	logger  zerolog.Logger

	state   *table.State
	cursor  int
	keys    keyMap
	help    help.Model
	spinner spinner.Model
	width   int
}

// New builds the table view. Nothing is fetched until Init runs.
func New(ctx context.Context, cfg config.UIConfig, fetcher catalog.Fetcher) *App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = loadingStyle
	h := help.New()
	h.ShowAll = cfg.ShowHelp
	return &App{
		ctx:     ctx,
		fetcher: fetcher,
		cfg:     cfg,
		logger:  log.With().Str("component", "tui").Logger(),
		state:   table.New(),
		keys:    defaultKeyMap(),
		help:    h,
		spinner: sp,
	}
}

// Init loads the first page.
func (a *App) Init() tea.Cmd {
	return a.fetch()
}

// Update applies key presses and fetch results to the table state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.help.Width = m.Width
	case tea.KeyMsg:
		return a.handleKey(m)
	case pageLoadedMsg:
		a.applyPage(m)
	case pageFailedMsg:
		a.failPage(m)
	case spinner.TickMsg:
		if !a.state.Loading() {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(m)
		return a, cmd
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
	case key.Matches(m, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.cursor < len(a.state.Records())-1 {
			a.cursor++
		}
	case key.Matches(m, a.keys.First):
		return a.navigate(a.state.First())
	case key.Matches(m, a.keys.Previous):
		return a.navigate(a.state.Previous())
	case key.Matches(m, a.keys.Next):
		return a.navigate(a.state.Next())
	case key.Matches(m, a.keys.Last):
		return a.navigate(a.state.Last())
	case key.Matches(m, a.keys.Toggle):
		records := a.state.Records()
		if a.cursor < len(records) {
			a.state.SetSelection(table.ToggleRow(a.state.Selection(), records[a.cursor]))
		}
	case key.Matches(m, a.keys.ToggleAll):
		a.state.SetSelection(table.ToggleAll(a.state.Selection(), a.state.Records()))
	case key.Matches(m, a.keys.Clear):
		a.state.SetSelection(nil)
	}
	return a, nil
}

// navigate fetches the current page when a pagination control moved it.
func (a *App) navigate(changed bool) (tea.Model, tea.Cmd) {
	if !changed {
		return a, nil
	}
	return a, a.fetch()
}

func (a *App) fetch() tea.Cmd {
	ticket := a.state.BeginFetch(a.state.Page())
	a.logger.Debug().Int("page", ticket.Page).Uint64("seq", ticket.Seq).Msg("Fetching artworks")
	return tea.Batch(fetchPageCmd(a.ctx, a.fetcher, ticket), a.spinner.Tick)
}

func (a *App) applyPage(m pageLoadedMsg) {
	out := a.state.ApplyPage(m.ticket, m.page)
	if out.Stale {
		catalog.StaleResponses.Inc()
		a.logger.Debug().Int("page", m.ticket.Page).Uint64("seq", m.ticket.Seq).Msg("Dropped stale artworks page")
		return
	}
	if n := len(a.state.Records()); a.cursor >= n {
		a.cursor = max(n-1, 0)
	}
	a.logger.Info().
		Int("page", m.ticket.Page).
		Int("records", len(m.page.Records)).
		Int("total", m.page.TotalRecords).
		Bool("first_visit", out.FirstVisit).
		Bool("selection_cleared", out.SelectionCleared).
		Msg("Artworks page loaded")
}

func (a *App) failPage(m pageFailedMsg) {
	if !a.state.FailFetch(m.ticket) {
		catalog.StaleResponses.Inc()
	}
	a.logger.Error().
		Err(m.err).
		Int("page", m.ticket.Page).
		Str("error_class", string(catalog.ClassOf(m.err))).
		Msg("Error fetching artworks")
}

func fetchPageCmd(ctx context.Context, f catalog.Fetcher, t table.Ticket) tea.Cmd {
	return func() tea.Msg {
		page, err := f.FetchPage(ctx, t.Page)
		if err != nil {
			return pageFailedMsg{ticket: t, err: err}
		}
		return pageLoadedMsg{ticket: t, page: page}
	}
}

// messages
type pageLoadedMsg struct {
	ticket table.Ticket
	page   catalog.Page
}

type pageFailedMsg struct {
	ticket table.Ticket
	err    error
}
