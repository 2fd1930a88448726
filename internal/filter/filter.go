// Copyright (c) 2025 ToeiRei
// Tablekit - table filter components for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

// package filter holds the selection-mode resolution and the filter
// application sink that the select-filter control commits into.
package filter // import "github.com/toeirei/tablekit/internal/filter"

// FnIncludesSome is the filter-function identifier that switches a column's
// select filter into multi-selection semantics. Any other identifier (or
// none) means single selection.
const FnIncludesSome = "arrIncludesSome"

// NoFilter is the sentinel selection value meaning "no filter applied".
const NoFilter = ""

// Mode selects between the two mutually exclusive selection semantics of a
// column filter control.
type Mode int

const (
	// ModeSingle renders radio semantics: at most one value, field "filter".
	ModeSingle Mode = iota
	// ModeMulti renders checkbox semantics: a value set, field "filters".
	ModeMulti
)

// ResolveMode maps a column's filter-function identifier to its selection
// mode.
func ResolveMode(filterFn string) Mode {
	if filterFn == FnIncludesSome {
		return ModeMulti
	}
	return ModeSingle
}

// FieldName returns the form field the mode writes its selection under. The
// two names are mutually exclusive; a control is always one or the other.
func (m Mode) FieldName() string {
	if m == ModeMulti {
		return "filters"
	}
	return "filter"
}

// Sink receives the user's final selection and applies it to the dataset
// being filtered. Implementations decide what "applying" means; the controls
// only ever call these two methods.
type Sink interface {
	// SetFilter applies the given selected values for a column. An empty
	// slice, or a single NoFilter value, clears the column's filter.
	SetFilter(columnID string, values []string)
	// ClearFilter removes any filter on the column.
	ClearFilter(columnID string)
}
