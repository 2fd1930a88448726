// Copyright (c) 2025 ToeiRei
// Tablekit - table filter components for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

// package datasource provides the row-data sources behind the table
// components. It abstracts the backing store (in-memory dataset, YAML file,
// SQL database) behind one provider interface, so the components read rows
// and column values in a uniform way.
package datasource // import "github.com/toeirei/tablekit/internal/datasource"

import (
	"context"

	"github.com/toeirei/tablekit/internal/model"
	"github.com/toeirei/tablekit/internal/optionset"
)

// RowProvider is the row-data source the components consume.
//
// Generation is an identity counter: it moves every time the underlying data
// changes, and the select-filter recomputes its option set when the observed
// generation differs from the one it derived against.
type RowProvider interface {
	Rows(ctx context.Context) ([]model.Row, error)
	ColumnValues(ctx context.Context, columnID string) ([]optionset.Value, error)
	Generation() uint64
}

// Memory serves rows from an in-memory Dataset.
type Memory struct {
	dataset *model.Dataset
	gen     uint64
}

// NewMemory wraps a dataset in a provider.
func NewMemory(ds *model.Dataset) *Memory {
	return &Memory{dataset: ds, gen: 1}
}

// Dataset returns the wrapped dataset.
func (m *Memory) Dataset() *model.Dataset { return m.dataset }

// Replace swaps the dataset and bumps the generation so dependent controls
// recompute.
func (m *Memory) Replace(ds *model.Dataset) {
	m.dataset = ds
	m.gen++
}

// Columns returns the column definitions of the current dataset.
func (m *Memory) Columns(context.Context) ([]model.Column, error) {
	return m.dataset.Columns, nil
}

// Rows returns all rows of the current dataset.
func (m *Memory) Rows(context.Context) ([]model.Row, error) {
	return m.dataset.Rows, nil
}

// ColumnValues returns the raw values of one column across all rows.
func (m *Memory) ColumnValues(_ context.Context, columnID string) ([]optionset.Value, error) {
	return m.dataset.ColumnValues(columnID), nil
}

// Generation implements RowProvider.
func (m *Memory) Generation() uint64 { return m.gen }

var _ RowProvider = (*Memory)(nil)
