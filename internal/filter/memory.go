// Copyright (c) 2025 ToeiRei
// Tablekit - table filter components for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

package filter

import (
	"sort"

	"github.com/toeirei/tablekit/internal/model"
	"github.com/toeirei/tablekit/util/slicest"
)

// MemorySink is the in-process Sink used by the demo browser. It records the
// active selection per column and answers row-match queries against it.
// The components call it from a single Bubble Tea update loop, so it carries
// no locking.
type MemorySink struct {
	active map[string][]string
}

// NewMemorySink returns an empty sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{active: make(map[string][]string)}
}

// SetFilter records the selection for a column. Empty selections and the
// NoFilter sentinel clear the column instead.
func (s *MemorySink) SetFilter(columnID string, values []string) {
	kept := slicest.Filter(values, func(v string) bool { return v != NoFilter })
	if len(kept) == 0 {
		s.ClearFilter(columnID)
		return
	}
	s.active[columnID] = kept
}

// ClearFilter removes the filter on a column, if any.
func (s *MemorySink) ClearFilter(columnID string) {
	delete(s.active, columnID)
}

// Values returns the active selection for a column, nil when unfiltered.
func (s *MemorySink) Values(columnID string) []string {
	return s.active[columnID]
}

// FilteredColumns returns the IDs of all columns with an active filter,
// sorted for deterministic rendering.
func (s *MemorySink) FilteredColumns() []string {
	out := make([]string, 0, len(s.active))
	for id := range s.active {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Matches reports whether a row passes every active column filter. A row
// matches a column when the cell's string form equals any selected value.
func (s *MemorySink) Matches(row model.Row) bool {
	for columnID, wanted := range s.active {
		if !slicest.Contains(wanted, row.Value(columnID).String()) {
			return false
		}
	}
	return true
}

var _ Sink = (*MemorySink)(nil)
