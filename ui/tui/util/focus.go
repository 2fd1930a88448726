// Copyright (c) 2025 ToeiRei
// Tablekit - table filter components for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import (
	"github.com/bobg/go-generics/v4/slices"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/tablekit/util/slicest"
)

// Focusable is implemented by models that take part in focus traversal. Focus
// receives the key map of the surrounding surface so the model can announce
// the merged bindings for help rendering.
type Focusable interface {
	Focus(base help.KeyMap) tea.Cmd
	Blur()
}

// AnnounceKeyMapMsg tells the hosting view which key bindings are active for
// the currently focused model.
type AnnounceKeyMapMsg struct {
	KeyMap help.KeyMap
}

// AnnounceKeyMapCmd merges the given key maps and emits them as an
// AnnounceKeyMapMsg.
func AnnounceKeyMapCmd(keymaps ...help.KeyMap) tea.Cmd {
	merged := MergeKeyMaps(keymaps...)
	return func() tea.Msg {
		return AnnounceKeyMapMsg{KeyMap: merged}
	}
}

// MergeKeyMaps combines several key maps into one; nil entries are skipped.
func MergeKeyMaps(keymaps ...help.KeyMap) help.KeyMap {
	return MergedKeyMaps{KeyMaps: keymaps}
}

type MergedKeyMaps struct {
	KeyMaps []help.KeyMap
}

func (m MergedKeyMaps) ShortHelp() []key.Binding {
	bindings := slicest.Map(m.KeyMaps, func(k help.KeyMap) []key.Binding {
		if k != nil {
			return k.ShortHelp()
		}
		return nil
	})
	return slices.Concat(bindings...)
}

func (m MergedKeyMaps) FullHelp() [][]key.Binding {
	groups := slicest.Map(m.KeyMaps, func(k help.KeyMap) [][]key.Binding {
		if k != nil {
			return k.FullHelp()
		}
		return nil
	})
	return slices.Concat(groups...)
}

var _ help.KeyMap = (*MergedKeyMaps)(nil)
