// Copyright (c) 2025 ToeiRei
// Tablekit - table filter components for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

// package selectfilter is the table filter popup. Given a column, a row
// provider and a filter sink it derives the selectable option set, hosts a
// choice input with apply/reset buttons, and commits the selection into the
// sink. The surface has exactly two exits: apply (commit and close) and
// reset (clear and close).
package selectfilter

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/toeirei/tablekit/internal/datasource"
	"github.com/toeirei/tablekit/internal/filter"
	"github.com/toeirei/tablekit/internal/i18n"
	"github.com/toeirei/tablekit/internal/logging"
	"github.com/toeirei/tablekit/internal/model"
	"github.com/toeirei/tablekit/internal/optionset"
	"github.com/toeirei/tablekit/ui/tui/models/helpers/form"
	forminput "github.com/toeirei/tablekit/ui/tui/models/helpers/form/input"
	"github.com/toeirei/tablekit/ui/tui/util"
)

// selection carries the committed form values. The two fields are mutually
// exclusive: single mode writes "filter", multi mode writes "filters".
type selection struct {
	Filter  string   `mapstructure:"filter"`
	Filters []string `mapstructure:"filters"`
}

type Model struct {
	column   model.Column
	provider datasource.RowProvider
	sink     filter.Sink
	mode     filter.Mode
	deriver  *optionset.Deriver

	form   form.Form[selection]
	choice *forminput.Choice

	// generation of the provider the current option set was derived from
	gen  uint64
	size util.Size
}

// New builds the filter popup for one column. The option set is derived
// immediately; Refresh recomputes it when the provider moves.
func New(column model.Column, provider datasource.RowProvider, sink filter.Sink) *Model {
	mode := filter.ResolveMode(column.FilterFn)

	m := &Model{
		column:   column,
		provider: provider,
		sink:     sink,
		mode:     mode,
		deriver:  optionset.New(i18n.Lang()),
	}

	m.choice = forminput.NewChoice(mode, m.deriveOptions())
	m.gen = provider.Generation()

	m.form = form.New(
		form.WithInput[selection](mode.FieldName(), m.choice),
		form.WithInput[selection]("apply", forminput.NewButton(i18n.T("filter.apply"), form.ActionSubmit)),
		form.WithInlineInput[selection]("reset", forminput.NewButton(i18n.T("filter.reset"), form.ActionCancel)),
		form.WithOnSubmit(func(result selection, err error) tea.Cmd {
			if err != nil {
				logging.Errorf("filter form decode failed: %v", err)
				return closeCmd(column.ID, false)
			}
			m.apply(result)
			return closeCmd(column.ID, true)
		}),
		form.WithOnCancel[selection](func() tea.Cmd {
			m.sink.ClearFilter(column.ID)
			return closeCmd(column.ID, false)
		}),
	)

	return m
}

// deriveOptions computes the option set: an externally supplied option list
// wins when non-empty, otherwise the values are scraped from the provider's
// rows.
func (m *Model) deriveOptions() []optionset.Option {
	raw := m.column.FilterOptions
	if len(raw) == 0 {
		values, err := m.provider.ColumnValues(context.Background(), m.column.ID)
		if err != nil {
			logging.Errorf("failed to read column %s values: %v", m.column.ID, err)
			return nil
		}
		raw = values
	}
	return m.deriver.Derive(m.column.ID, raw)
}

// Options returns the currently derived option set.
func (m *Model) Options() []optionset.Option {
	return m.choice.Options()
}

// Refresh recomputes the option set when the row provider's generation moved
// since the last derivation. Selections whose value survives are kept. The
// hosting view calls this on every update while the popup is open, so a
// popup held across data reloads stays current.
func (m *Model) Refresh() {
	if gen := m.provider.Generation(); gen != m.gen {
		m.choice.SetOptions(m.deriveOptions())
		m.gen = gen
	}
}

// Preselect seeds the choice input with the currently active filter values.
func (m *Model) Preselect(values []string) {
	if m.mode == filter.ModeMulti {
		m.choice.Set(values)
		return
	}
	if len(values) > 0 {
		m.choice.Set(values[0])
	}
}

func (m *Model) apply(result selection) {
	if m.mode == filter.ModeMulti {
		m.sink.SetFilter(m.column.ID, result.Filters)
		return
	}
	m.sink.SetFilter(m.column.ID, []string{result.Filter})
}

func (m *Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m *Model) Focus(base help.KeyMap) tea.Cmd {
	return m.form.Focus(base)
}

func (m *Model) Blur() {
	m.form.Blur()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(m.size.ToMsg())
		return cmd
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return cmd
}

func (m *Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("81")).
		Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color("81")).
		Padding(1, 2)

	title := titleStyle.Render(i18n.T("filter.title") + ": " + m.column.Title)

	hint := i18n.T("filter.hint.single")
	if m.mode == filter.ModeMulti {
		hint = i18n.T("filter.hint.multi")
	}

	body := m.form.View()
	if len(m.choice.Options()) == 0 {
		body = hintStyle.Render(i18n.T("filter.no_options"))
	}

	return boxStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		body,
		"",
		hintStyle.Render(hint),
	))
}

var _ util.Focusable = (*Model)(nil)
