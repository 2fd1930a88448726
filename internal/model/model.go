// Copyright (c) 2025 ToeiRei
// Tablekit - table filter components for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

// package model defines the tabular data entities the components render and
// filter: columns, rows, and the dataset that groups them.
package model // import "github.com/toeirei/tablekit/internal/model"

import "github.com/toeirei/tablekit/internal/optionset"

// Column describes one column of a dataset.
//
// FilterOptions, when non-empty, is the authoritative source for the column's
// selectable filter values; otherwise the values are scraped from visible
// rows. FilterFn is the filter-function identifier the filter package
// resolves into single or multi selection.
// Accessor is the key cells are read from in raw source data when it
// differs from the column ID. Loaders re-key cells to the ID, so rows are
// always addressed by ID once inside a Dataset.
type Column struct {
	ID            string
	Title         string
	Accessor      string
	FilterFn      string
	FilterOptions []optionset.Value
}

// Row is one data row, cells keyed by column ID. Missing cells read as null.
type Row map[string]optionset.Value

// Value returns the raw cell value for a column, null when absent.
func (r Row) Value(columnID string) optionset.Value {
	return r[columnID]
}

// Dataset is the unit the demo application loads and browses.
type Dataset struct {
	Name    string
	Columns []Column
	Rows    []Row
}

// Column looks a column up by ID.
func (d *Dataset) Column(id string) (Column, bool) {
	for _, c := range d.Columns {
		if c.ID == id {
			return c, true
		}
	}
	return Column{}, false
}

// ColumnValues collects the raw values of one column across all rows, in row
// order. This is the fallback option source when a column carries no
// FilterOptions.
func (d *Dataset) ColumnValues(columnID string) []optionset.Value {
	out := make([]optionset.Value, 0, len(d.Rows))
	for _, r := range d.Rows {
		out = append(out, r.Value(columnID))
	}
	return out
}
