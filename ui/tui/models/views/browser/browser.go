// Copyright (c) 2025 ToeiRei
// Tablekit - table filter components for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

// package browser is the dataset browser view: a table over the filtered
// rows with a status footer. `f` opens the select-filter popup for the
// current column, `/` searches across all cells, `y` copies the current
// cell to the clipboard.
package browser

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/toeirei/tablekit/internal/datasource"
	"github.com/toeirei/tablekit/internal/filter"
	"github.com/toeirei/tablekit/internal/i18n"
	"github.com/toeirei/tablekit/internal/model"
	"github.com/toeirei/tablekit/ui/tui/models/components/selectfilter"
	"github.com/toeirei/tablekit/ui/tui/models/helpers/form"
	forminput "github.com/toeirei/tablekit/ui/tui/models/helpers/form/input"
	"github.com/toeirei/tablekit/ui/tui/util"
)

// Source is the data a browser needs: the rows behind the table plus the
// column definitions describing how each column filters.
type Source interface {
	datasource.RowProvider
	Columns(ctx context.Context) ([]model.Column, error)
}

type Model struct {
	source Source
	sink   *filter.MemorySink
	keymap KeyMap

	columns []model.Column
	rows    []model.Row

	table       table.Model
	colIndex    int
	query       string
	searching   bool
	search      *forminput.Text
	exact       *forminput.Toggle
	searchFocus int

	popup *selectfilter.Model

	helpView  help.Model
	announced help.KeyMap

	status string
	size   util.Size
	err    error
}

func New(source Source) Model {
	m := Model{
		source:   source,
		sink:     filter.NewMemorySink(),
		keymap:   DefaultKeyMap(),
		search:   forminput.NewText(i18n.T("search.label"), i18n.T("search.placeholder")),
		exact:    forminput.NewToggle(i18n.T("search.exact"), false),
		helpView: help.New(),
	}

	ctx := context.Background()
	if m.columns, m.err = source.Columns(ctx); m.err != nil {
		return m
	}
	if m.rows, m.err = source.Rows(ctx); m.err != nil {
		return m
	}

	t := table.New(
		table.WithFocused(true),
		table.WithHeight(15),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorSubtle).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(colorWhite).
		Background(colorHighlight).
		Bold(false)
	t.SetStyles(s)
	m.table = t

	m.rebuildTable()
	return m
}

// rebuildTable recomputes the visible rows from the active filters and the
// search query, and refreshes the column headers (the current column is
// marked).
func (m *Model) rebuildTable() {
	cols := make([]table.Column, len(m.columns))
	width := m.columnWidth()
	for i, c := range m.columns {
		title := c.Title
		if i == m.colIndex {
			title = "▾ " + title
		}
		cols[i] = table.Column{Title: title, Width: width}
	}

	var rows []table.Row
	for _, row := range m.rows {
		if !m.sink.Matches(row) {
			continue
		}
		if m.query != "" && !m.matchesSearch(row) {
			continue
		}
		cells := make(table.Row, len(m.columns))
		for i, c := range m.columns {
			cells[i] = row.Value(c.ID).String()
		}
		rows = append(rows, cells)
	}

	m.table.SetColumns(cols)
	m.table.SetRows(rows)
	if m.searching {
		m.table.GotoTop()
	}
}

// matchesSearch reports whether any cell of the row contains the query.
// Matching is case-insensitive unless the exact toggle is on.
func (m *Model) matchesSearch(row model.Row) bool {
	q := m.query
	if !m.exact.On() {
		q = strings.ToLower(q)
	}
	for _, c := range m.columns {
		cell := row.Value(c.ID).String()
		if !m.exact.On() {
			cell = strings.ToLower(cell)
		}
		if strings.Contains(cell, q) {
			return true
		}
	}
	return false
}

func (m *Model) columnWidth() int {
	if len(m.columns) == 0 {
		return 0
	}
	usable := m.size.Width - 4
	if usable <= 0 {
		return 16
	}
	return max(usable/len(m.columns)-2, 4)
}

// currentCell returns the string form of the cell under the cursor.
func (m *Model) currentCell() (string, bool) {
	row := m.table.SelectedRow()
	if row == nil || m.colIndex >= len(row) {
		return "", false
	}
	return row[m.colIndex], true
}

func (m *Model) openFilter() tea.Cmd {
	col := m.columns[m.colIndex]
	popup := selectfilter.New(col, m.source, m.sink)
	popup.Preselect(m.sink.Values(col.ID))
	m.popup = popup
	return tea.Batch(
		popup.Init(),
		popup.Update(m.size.ToMsg()),
		popup.Focus(m.keymap),
	)
}

func (m Model) Init() tea.Cmd {
	return m.search.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.size.Update(msg) {
		m.table.SetHeight(max(m.size.Height-7, 3))
		m.table.SetWidth(m.size.Width)
		m.rebuildTable()
		if m.popup != nil {
			m.popup.Refresh()
			return m, m.popup.Update(msg)
		}
		return m, nil
	}

	if amsg, ok := msg.(util.AnnounceKeyMapMsg); ok {
		m.announced = amsg.KeyMap
		return m, nil
	}

	if _, ok := msg.(selectfilter.ClosedMsg); ok {
		m.popup = nil
		m.status = ""
		m.announced = nil
		m.rebuildTable()
		return m, nil
	}

	// the popup owns the keyboard while it is open; refreshing first keeps
	// its option set in step with the provider's generation
	if m.popup != nil {
		m.popup.Refresh()
		return m, m.popup.Update(msg)
	}

	if m.err != nil {
		if kmsg, ok := msg.(tea.KeyMsg); ok && key.Matches(kmsg, m.keymap.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if m.searching {
			return m.updateSearch(kmsg)
		}

		switch {
		case key.Matches(kmsg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(kmsg, m.keymap.Filter):
			if len(m.columns) == 0 {
				return m, nil
			}
			return m, m.openFilter()
		case key.Matches(kmsg, m.keymap.Search):
			m.searching = true
			m.searchFocus = 0
			m.query = ""
			m.search.Reset()
			m.rebuildTable()
			return m, m.search.Focus(m.keymap)
		case key.Matches(kmsg, m.keymap.Copy):
			if cell, ok := m.currentCell(); ok {
				if err := clipboard.WriteAll(cell); err == nil {
					m.status = i18n.T("browser.copied")
				}
			}
			return m, nil
		case key.Matches(kmsg, m.keymap.PrevColumn):
			if m.colIndex > 0 {
				m.colIndex--
				m.rebuildTable()
			}
			return m, nil
		case key.Matches(kmsg, m.keymap.NextColumn):
			if m.colIndex < len(m.columns)-1 {
				m.colIndex++
				m.rebuildTable()
			}
			return m, nil
		}
		m.status = ""
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// updateSearch drives the search bar while it is open. Tab moves focus
// between the query field and the case toggle, esc abandons the search,
// enter on the query field closes the bar and keeps the query applied.
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searching = false
		m.query = ""
		m.search.Reset()
		m.search.Blur()
		m.exact.Blur()
		m.announced = nil
		m.rebuildTable()
		return m, nil
	case tea.KeyTab:
		if m.searchFocus == 0 {
			m.search.Blur()
			m.searchFocus = 1
			return m, m.exact.Focus(m.keymap)
		}
		m.exact.Blur()
		m.searchFocus = 0
		return m, m.search.Focus(m.keymap)
	}

	if m.searchFocus == 1 {
		cmd, _ := m.exact.Update(msg)
		m.rebuildTable()
		return m, cmd
	}

	cmd, action := m.search.Update(msg)
	if action == form.ActionNext {
		m.searching = false
		m.search.Blur()
		m.exact.Blur()
		m.announced = nil
		return m, cmd
	}
	m.query = m.search.Value()
	m.rebuildTable()
	return m, cmd
}

func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("failed to load dataset: %v", m.err))
	}

	if m.popup != nil {
		overlay := m.popup.View()
		if m.announced != nil {
			overlay = lipgloss.JoinVertical(lipgloss.Left, overlay, m.helpView.View(m.announced))
		}
		return lipgloss.Place(
			m.size.Width, m.size.Height,
			lipgloss.Center, lipgloss.Center,
			overlay,
		)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("app.title")) + "\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")

	if m.searching {
		bar := lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.search.View(max(m.size.Width-28, 20)),
			"  ",
			m.exact.View(24),
		)
		b.WriteString(bar + "\n")
	}

	b.WriteString(m.footerView())
	return b.String()
}

func (m Model) footerView() string {
	parts := []string{
		fmt.Sprintf("%d %s", len(m.rows), i18n.T("browser.status.rows")),
	}
	if visible := len(m.table.Rows()); visible != len(m.rows) {
		parts = append(parts, fmt.Sprintf("%d %s", visible, i18n.T("browser.status.filtered")))
	}
	if cols := m.sink.FilteredColumns(); len(cols) > 0 {
		parts = append(parts, "⧩ "+strings.Join(cols, ", "))
	}
	if m.status != "" {
		parts = append(parts, successStyle.Render(m.status))
	}

	// a focused input's announced keymap replaces the static hint line
	keys := fmt.Sprintf(
		"f: %s • /: %s • y: %s • q: %s",
		i18n.T("browser.footer.filter"),
		i18n.T("browser.footer.search"),
		i18n.T("browser.footer.copy"),
		i18n.T("browser.footer.quit"),
	)
	if m.announced != nil {
		keys = m.helpView.View(m.announced)
	}

	return helpStyle.Render(strings.Join(parts, " | ") + "\n" + keys)
}

var _ tea.Model = Model{}
