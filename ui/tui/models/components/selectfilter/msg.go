// Copyright (c) 2025 ToeiRei
// Tablekit - table filter components for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.
package selectfilter

import tea "github.com/charmbracelet/bubbletea"

// ClosedMsg tells the hosting view to dismiss the filter surface. Applied
// reports whether the selection was committed (true) or the filter reset.
type ClosedMsg struct {
	ColumnID string
	Applied  bool
}

func closeCmd(columnID string, applied bool) tea.Cmd {
	return func() tea.Msg {
		return ClosedMsg{ColumnID: columnID, Applied: applied}
	}
}
