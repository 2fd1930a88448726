// Copyright (c) 2025 ToeiRei
// Tablekit - table filter components for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/tablekit/ui/tui/models/helpers/form"
	"github.com/toeirei/tablekit/ui/tui/util"
)

// Text is a single-line text field with a label above the input and an
// optional helper line below it. The helper line doubles as the error line:
// when Err is non-empty it replaces Help and renders in the error style.
type Text struct {
	Label       string
	Placeholder string
	Help        string
	Err         string
	KeyMap      TextKeyMap

	input   textinput.Model
	focused bool
}

type TextKeyMap struct {
	Next key.Binding
}

func (k TextKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Next} }

func (k TextKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Next}} }

func NewText(label, placeholder string) *Text {
	t := textinput.New()
	t.CharLimit = 64
	return &Text{
		Label:       label,
		Placeholder: placeholder,
		KeyMap: TextKeyMap{
			Next: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "next"),
			),
		},
		input: t,
	}
}

func (t *Text) Focus(base help.KeyMap) tea.Cmd {
	t.focused = true
	return tea.Batch(
		t.input.Focus(),
		util.AnnounceKeyMapCmd(base, t.KeyMap),
	)
}

func (t *Text) Blur() {
	t.input.Blur()
	t.focused = false
}

func (t *Text) Get() any {
	return t.input.Value()
}

func (t *Text) Init() tea.Cmd {
	return textinput.Blink
}

func (t *Text) Reset() {
	t.input.SetValue("")
	t.Err = ""
}

func (t *Text) Set(value any) {
	if value, ok := value.(string); ok {
		t.input.SetValue(value)
	}
}

func (t *Text) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, t.KeyMap.Next) {
		return nil, form.ActionNext
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return cmd, form.ActionNone
}

func (t *Text) View(width int) string {
	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Width(width)

	focusedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	label := t.Label
	if t.focused {
		label = focusedStyle.Render(label)
	} else {
		label = labelStyle.Render(label)
	}

	t.input.Width = width - 2
	t.input.Placeholder = t.Placeholder

	parts := []string{label, t.input.View()}
	if t.Err != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		parts = append(parts, errStyle.Render(t.Err))
	} else if t.Help != "" {
		helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
		parts = append(parts, helpStyle.Render(t.Help))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Value returns the current text without going through the any-typed Get.
func (t *Text) Value() string {
	return t.input.Value()
}

var _ form.Input = (*Text)(nil)
