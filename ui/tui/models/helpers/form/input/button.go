// Copyright (c) 2025 ToeiRei
// Tablekit - table filter components for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/tablekit/ui/tui/models/helpers/form"
	"github.com/toeirei/tablekit/ui/tui/util"
)

// Button fires a form action when clicked. The default action is submit; a
// cancel button is the same component with Action set to form.ActionCancel.
type Button struct {
	Label    string
	Action   form.Action
	Disabled bool
	KeyMap   ButtonKeyMap

	DisabledStyle lipgloss.Style
	BlurredStyle  lipgloss.Style
	FocusedStyle  lipgloss.Style

	focused bool
}

type ButtonKeyMap struct {
	Click key.Binding
}

func (k ButtonKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Click} }

func (k ButtonKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Click}} }

func NewButton(label string, action form.Action) *Button {
	return &Button{
		Label:  label,
		Action: action,
		KeyMap: ButtonKeyMap{
			Click: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", strings.ToLower(label)),
			),
		},
		DisabledStyle: lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Foreground(lipgloss.Color("240")),
		BlurredStyle: lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Foreground(lipgloss.Color("240")),
		FocusedStyle: lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205")).
			Foreground(lipgloss.Color("240")).
			Bold(true),
	}
}

func (b *Button) Focus(base help.KeyMap) tea.Cmd {
	b.focused = true
	return util.AnnounceKeyMapCmd(base, b.KeyMap)
}

func (b *Button) Blur() {
	b.focused = false
}

func (b *Button) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if msg, ok := msg.(tea.KeyMsg); ok && !b.Disabled && key.Matches(msg, b.KeyMap.Click) {
		return nil, b.Action
	}
	return nil, form.ActionNone
}

func (b *Button) View(width int) string {
	if b.Disabled {
		return b.DisabledStyle.MaxWidth(width - 2).Render(b.Label)
	} else if b.focused {
		return b.FocusedStyle.MaxWidth(width - 2).Render(b.Label)
	} else {
		return b.BlurredStyle.MaxWidth(width - 2).Render(b.Label)
	}
}

// not needed
func (b *Button) Get() any      { return nil }
func (b *Button) Init() tea.Cmd { return nil }
func (b *Button) Reset()        {}
func (b *Button) Set(any)       {}

var _ form.Input = (*Button)(nil)
