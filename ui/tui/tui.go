// Copyright (c) 2025 ToeiRei
// Tablekit - table filter components for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/toeirei/tablekit/ui/tui/models/views/browser"
)

// Run starts the dataset browser over the given source and blocks until the
// user quits.
func Run(source browser.Source) error {
	_, err := tea.NewProgram(
		browser.New(source),
		tea.WithAltScreen(),
	).Run()
	return err
}
