// Copyright (c) 2025 ToeiRei
// Tablekit - table filter components for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/tablekit/internal/i18n"
	"github.com/toeirei/tablekit/ui/tui/models/helpers/form"
	"github.com/toeirei/tablekit/ui/tui/util"
)

// Toggle is a two-state button. Space or enter flips it; Get reports the
// state as a bool.
type Toggle struct {
	Label    string
	Disabled bool
	KeyMap   ToggleKeyMap

	on      bool
	focused bool
}

type ToggleKeyMap struct {
	Flip key.Binding
}

func (k ToggleKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Flip} }

func (k ToggleKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Flip}} }

func NewToggle(label string, on bool) *Toggle {
	return &Toggle{
		Label: label,
		on:    on,
		KeyMap: ToggleKeyMap{
			Flip: key.NewBinding(
				key.WithKeys(" ", "enter"),
				key.WithHelp("space", "toggle"),
			),
		},
	}
}

func (t *Toggle) Focus(base help.KeyMap) tea.Cmd {
	t.focused = true
	return util.AnnounceKeyMapCmd(base, t.KeyMap)
}

func (t *Toggle) Blur() {
	t.focused = false
}

func (t *Toggle) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if msg, ok := msg.(tea.KeyMsg); ok && !t.Disabled && key.Matches(msg, t.KeyMap.Flip) {
		t.on = !t.on
	}
	return nil, form.ActionNone
}

func (t *Toggle) View(width int) string {
	state := i18n.T("toggle.off")
	if t.on {
		state = i18n.T("toggle.on")
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	if t.Disabled {
		style = style.Strikethrough(true)
	} else if t.focused {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	}

	marker := "[ ]"
	if t.on {
		marker = "[x]"
	}
	return style.MaxWidth(width).Render(marker + " " + t.Label + " (" + state + ")")
}

func (t *Toggle) Get() any      { return t.on }
func (t *Toggle) Init() tea.Cmd { return nil }
func (t *Toggle) Reset()        { t.on = false }

func (t *Toggle) Set(value any) {
	if value, ok := value.(bool); ok {
		t.on = value
	}
}

// On reports the current state without going through the any-typed Get.
func (t *Toggle) On() bool { return t.on }

var _ form.Input = (*Toggle)(nil)
