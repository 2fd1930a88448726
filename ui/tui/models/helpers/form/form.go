// Copyright (c) 2025 ToeiRei
// Tablekit - table filter components for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

// package form is the externally-owned form-state object the components
// read and write through a narrow interface: get a value, set a value,
// submit, reset. The hosting view owns the Form; inputs never talk to the
// data layer themselves.
package form

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-viper/mapstructure/v2"
	"github.com/toeirei/tablekit/ui/tui/util"
	"github.com/toeirei/tablekit/util/slicest"
)

// Input is one field of a form. Get returns the field's current value; Set
// replaces it. Update reports an Action when the input wants the form to
// move focus, submit, or cancel.
type Input interface {
	util.Focusable
	Reset()
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, Action)
	Set(any)
	Get() any
	View(width int) string
}

type formItem struct {
	id    string
	input Input
}

// formRow groups item indexes rendered side by side.
type formRow struct {
	items []int
}

// Form tracks a set of named inputs and decodes their values into T on
// submit. The zero Form is not usable; construct with New.
type Form[T any] struct {
	OnSubmit         func(result T, err error) tea.Cmd
	OnCancel         func() tea.Cmd
	ResetAfterSubmit bool
	BaseKeyMap       help.KeyMap

	items       []formItem
	rows        []formRow
	activeIndex int
	focused     bool
	size        util.Size
}

func (f Form[T]) Init() tea.Cmd {
	return tea.Batch(slicest.Map(f.items, func(item formItem) tea.Cmd {
		return item.input.Init()
	})...)
}

func (f Form[T]) Update(msg tea.Msg) (Form[T], tea.Cmd) {
	// handle size updates
	if f.size.Update(msg) {
		return f, nil
	}

	if !f.focused || len(f.items) == 0 {
		return f, nil
	}

	// handle focus traversal for the form itself
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(kmsg, DefaultKeyMap.Next):
			return f, f.changeActiveIndex(1)
		case key.Matches(kmsg, DefaultKeyMap.Prev):
			return f, f.changeActiveIndex(-1)
		}
	}

	// pass msg to active input
	return f, f.updateActiveInput(msg)
}

func (f Form[T]) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		slicest.Map(f.rows, func(row formRow) string {
			return lipgloss.JoinHorizontal(
				lipgloss.Center,
				slicest.Map(row.items, func(itemIndex int) string {
					return f.items[itemIndex].input.View(f.size.Width / len(row.items))
				})...,
			)
		})...,
	)
}

func (f *Form[T]) Focus(base help.KeyMap) tea.Cmd {
	f.focused, f.BaseKeyMap = true, base
	if len(f.items) == 0 {
		return nil
	}
	return f.items[f.activeIndex].input.Focus(util.MergeKeyMaps(f.BaseKeyMap, DefaultKeyMap))
}

func (f *Form[T]) Blur() {
	f.focused, f.BaseKeyMap = false, nil
	if len(f.items) == 0 {
		return
	}
	f.items[f.activeIndex].input.Blur()
}

// *Form implements util.Focusable
var _ util.Focusable = (*Form[any])(nil)

// Reset clears every input and moves focus back to the first one.
func (f *Form[T]) Reset() tea.Cmd {
	for _, item := range f.items {
		item.input.Reset()
	}
	return f.changeActiveIndex(-f.activeIndex)
}

// Submit decodes the current values and hands them to OnSubmit.
func (f *Form[T]) Submit() tea.Cmd {
	var resetCmd tea.Cmd
	data, err := f.Get()
	if f.ResetAfterSubmit {
		resetCmd = f.Reset()
	}
	if f.OnSubmit == nil {
		return resetCmd
	}
	return tea.Batch(
		resetCmd,
		f.OnSubmit(data, err),
	)
}

func (f *Form[T]) updateActiveInput(msg tea.Msg) tea.Cmd {
	updateCmd, action := f.items[f.activeIndex].input.Update(msg)

	var actionCmd tea.Cmd
	switch action {
	case ActionNone:
	case ActionNext:
		actionCmd = f.changeActiveIndex(1)
	case ActionPrev:
		actionCmd = f.changeActiveIndex(-1)
	case ActionSubmit:
		actionCmd = f.Submit()
	case ActionCancel:
		if f.OnCancel != nil {
			actionCmd = f.OnCancel()
		}
	}

	return tea.Batch(updateCmd, actionCmd)
}

func (f *Form[T]) changeActiveIndex(delta int) tea.Cmd {
	if len(f.items) == 0 {
		return nil
	}
	delta = delta % len(f.items)

	if delta != 0 && f.focused {
		oldActiveIndex := f.activeIndex
		f.activeIndex += delta

		if f.activeIndex > len(f.items)-1 {
			f.activeIndex = 0
		}
		if f.activeIndex < 0 {
			f.activeIndex = len(f.items) - 1
		}

		f.items[oldActiveIndex].input.Blur()
	}

	if !f.focused {
		return nil
	}
	return f.items[f.activeIndex].input.Focus(util.MergeKeyMaps(f.BaseKeyMap, DefaultKeyMap))
}

// Get decodes the current input values into T.
func (f *Form[T]) Get() (T, error) {
	var data T
	values := make(map[string]any, len(f.items))

	for _, item := range f.items {
		values[item.id] = item.input.Get()
	}

	err := mapstructure.Decode(values, &data)
	return data, err
}

// Set distributes the fields of data onto the matching inputs.
func (f *Form[T]) Set(data T) error {
	values := make(map[string]any, len(f.items))
	if err := mapstructure.Decode(data, &values); err != nil {
		return err
	}

	for i := range f.items {
		if value, ok := values[f.items[i].id]; ok {
			f.items[i].input.Set(value)
		}
	}

	return nil
}
