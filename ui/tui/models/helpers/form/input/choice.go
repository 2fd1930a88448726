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
	"github.com/toeirei/tablekit/internal/filter"
	"github.com/toeirei/tablekit/internal/optionset"
	"github.com/toeirei/tablekit/ui/tui/models/helpers/form"
	"github.com/toeirei/tablekit/ui/tui/util"
	"github.com/toeirei/tablekit/util/slicest"
)

// Choice renders an option list as either radio buttons (single selection)
// or checkboxes (multi selection), depending on its mode. The two semantics
// are mutually exclusive: in single mode picking an option clears any other
// selection, in multi mode options toggle independently.
type Choice struct {
	Mode   filter.Mode
	KeyMap ChoiceKeyMap

	options  []optionset.Option
	cursor   int
	selected map[string]bool
	focused  bool
}

type ChoiceKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Next   key.Binding
}

func (k ChoiceKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle}
}

func (k ChoiceKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Toggle, k.Next}}
}

func NewChoice(mode filter.Mode, options []optionset.Option) *Choice {
	return &Choice{
		Mode:     mode,
		options:  options,
		selected: make(map[string]bool),
		KeyMap: ChoiceKeyMap{
			Up: key.NewBinding(
				key.WithKeys("up", "k"),
				key.WithHelp("↑/k", "up"),
			),
			Down: key.NewBinding(
				key.WithKeys("down", "j"),
				key.WithHelp("↓/j", "down"),
			),
			Toggle: key.NewBinding(
				key.WithKeys(" ", "x"),
				key.WithHelp("space", "select"),
			),
			Next: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "next"),
			),
		},
	}
}

// SetOptions replaces the option list, keeping selections whose value still
// exists.
func (c *Choice) SetOptions(options []optionset.Option) {
	keep := make(map[string]bool, len(c.selected))
	for _, o := range options {
		if c.selected[o.Value] {
			keep[o.Value] = true
		}
	}
	c.options = options
	c.selected = keep
	c.cursor = util.Clamp(0, c.cursor, max(len(options)-1, 0))
}

// Options returns the current option list.
func (c *Choice) Options() []optionset.Option {
	return c.options
}

func (c *Choice) Focus(base help.KeyMap) tea.Cmd {
	c.focused = true
	return util.AnnounceKeyMapCmd(base, c.KeyMap)
}

func (c *Choice) Blur() {
	c.focused = false
}

func (c *Choice) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(c.options) == 0 {
		return nil, form.ActionNone
	}

	switch {
	case key.Matches(kmsg, c.KeyMap.Up):
		c.cursor = util.Clamp(0, c.cursor-1, len(c.options)-1)
	case key.Matches(kmsg, c.KeyMap.Down):
		c.cursor = util.Clamp(0, c.cursor+1, len(c.options)-1)
	case key.Matches(kmsg, c.KeyMap.Toggle):
		value := c.options[c.cursor].Value
		if c.Mode == filter.ModeMulti {
			c.selected[value] = !c.selected[value]
		} else {
			was := c.selected[value]
			c.selected = map[string]bool{value: !was}
		}
	case key.Matches(kmsg, c.KeyMap.Next):
		return nil, form.ActionNext
	}

	return nil, form.ActionNone
}

// Get returns the selection under the mode's field semantics: a single string
// (the no-filter sentinel when nothing is picked) or the selected value set
// in option order.
func (c *Choice) Get() any {
	if c.Mode == filter.ModeMulti {
		values := make([]string, 0, len(c.selected))
		for _, o := range c.options {
			if c.selected[o.Value] {
				values = append(values, o.Value)
			}
		}
		return values
	}

	for _, o := range c.options {
		if c.selected[o.Value] {
			return o.Value
		}
	}
	return filter.NoFilter
}

func (c *Choice) Set(value any) {
	switch v := value.(type) {
	case string:
		c.selected = make(map[string]bool)
		if v != filter.NoFilter {
			c.selected[v] = true
		}
	case []string:
		live := slicest.Filter(v, func(s string) bool { return s != filter.NoFilter })
		c.selected = slicest.ToMap(live, func(s string) (string, bool) { return s, true })
	}
}

func (c *Choice) Init() tea.Cmd { return nil }

func (c *Choice) Reset() {
	c.selected = make(map[string]bool)
	c.cursor = 0
}

func (c *Choice) View(width int) string {
	itemStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)

	var b strings.Builder
	for i, o := range c.options {
		marker := "( )"
		if c.Mode == filter.ModeMulti {
			marker = "[ ]"
			if c.selected[o.Value] {
				marker = "[x]"
			}
		} else if c.selected[o.Value] {
			marker = "(•)"
		}

		line := marker + " " + o.Label
		if c.focused && i == c.cursor {
			line = cursorStyle.MaxWidth(width).Render("> " + line)
		} else {
			line = itemStyle.MaxWidth(width).Render("  " + line)
		}
		b.WriteString(line)
		if i < len(c.options)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

var _ form.Input = (*Choice)(nil)
