// Copyright (c) 2025 ToeiRei
// Tablekit - table filter components for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

type NewOpt[T any] = func(form *Form[T])

func New[T any](opts ...NewOpt[T]) Form[T] {
	form := Form[T]{}
	for _, opt := range opts {
		opt(&form)
	}
	return form
}

func WithOnSubmit[T any](fn func(result T, err error) tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnSubmit = fn
	}
}

func WithOnCancel[T any](fn func() tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnCancel = fn
	}
}

func WithResetAfterSubmit[T any]() NewOpt[T] {
	return func(form *Form[T]) {
		form.ResetAfterSubmit = true
	}
}

func WithKeyMap[T any](keyMap help.KeyMap) NewOpt[T] {
	return func(form *Form[T]) {
		form.BaseKeyMap = keyMap
	}
}

// WithInput appends an input on its own row.
func WithInput[T any](id string, input Input) NewOpt[T] {
	return func(form *Form[T]) {
		form.items = append(form.items, formItem{
			id:    id,
			input: input,
		})
		form.rows = append(form.rows, formRow{items: []int{len(form.items) - 1}})
	}
}

// WithInlineInput appends an input to the previous input's row, so the two
// render side by side. Falls back to a fresh row on an empty form.
func WithInlineInput[T any](id string, input Input) NewOpt[T] {
	return func(form *Form[T]) {
		form.items = append(form.items, formItem{
			id:    id,
			input: input,
		})
		if len(form.rows) == 0 {
			form.rows = append(form.rows, formRow{items: []int{len(form.items) - 1}})
			return
		}
		last := &form.rows[len(form.rows)-1]
		last.items = append(last.items, len(form.items)-1)
	}
}
