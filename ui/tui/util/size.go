// Copyright (c) 2025 ToeiRei
// Tablekit - table filter components for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import (
	"cmp"

	tea "github.com/charmbracelet/bubbletea"
)

// Size tracks the most recent terminal dimensions for a model.
type Size struct {
	Width  int
	Height int
}

// Update absorbs window size messages; it reports true when the message was a
// resize, so callers can stop propagating it.
func (s *Size) Update(msg tea.Msg) bool {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		s.Width, s.Height = msg.Width, msg.Height
		return true
	}
	return false
}

// ToMsg re-emits the stored size as a window size message.
func (s *Size) ToMsg() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{
		Width:  s.Width,
		Height: s.Height,
	}
}

// Clamp bounds wanted to the closed interval [min, max].
func Clamp[T cmp.Ordered](_min, _wanted, _max T) T {
	return min(max(_min, _wanted), _max)
}
