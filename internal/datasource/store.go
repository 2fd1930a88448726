// Copyright (c) 2025 ToeiRei
// Tablekit - table filter components for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

// This file contains the SQL-backed row provider. It abstracts the engine
// (SQLite, PostgreSQL, MySQL) behind a long-lived *bun.DB so higher-level
// callers never touch *sql.DB directly.
package datasource

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite"

	// SQL drivers required for integration tests and runtime.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/toeirei/tablekit/internal/model"
	"github.com/toeirei/tablekit/internal/optionset"
)

// sqlOpenFunc allows tests to override database opening behavior.
var sqlOpenFunc = sql.Open

// ColumnModel maps the `columns` table for Bun queries.
type ColumnModel struct {
	bun.BaseModel `bun:"table:columns"`
	ID            string `bun:"id,pk"`
	Title         string `bun:"title"`
	FilterFn      string `bun:"filter_fn"`
	Position      int    `bun:"position"`
}

// CellModel maps the `cells` table. A cell stores its raw value with an
// explicit kind discriminator so the scalar type survives the round trip.
type CellModel struct {
	bun.BaseModel `bun:"table:cells"`
	ID            int64   `bun:"id,pk,autoincrement"`
	RowIndex      int64   `bun:"row_index"`
	ColumnID      string  `bun:"column_id"`
	Kind          int     `bun:"kind"`
	TextValue     string  `bun:"text_value"`
	NumValue      float64 `bun:"num_value"`
	BoolValue     bool    `bun:"bool_value"`
}

// Store is the SQL-backed RowProvider.
type Store struct {
	bun *bun.DB
	gen uint64
}

// NewStore opens a database for the given engine type and DSN and returns a
// Store with its schema in place.
func NewStore(dbType, dsn string) (*Store, error) {
	driverName := dbType
	// The pgx stdlib registers driver name "pgx"; map "postgres" to that driver.
	if dbType == "postgres" {
		driverName = "pgx"
	}
	start := time.Now()
	sqlDB, err := sqlOpenFunc(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// For in-memory SQLite databases force a single connection; the
	// per-connection in-memory semantics would otherwise make the schema
	// invisible across connections. Tests commonly use ":memory:".
	if dbType == "sqlite" && dsn == ":memory:" {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	}

	bunDB, err := createBunDB(sqlDB, dbType)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	s := &Store{bun: bunDB, gen: 1}
	if err := s.initSchema(context.Background()); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	dsLogf("datasource: opened %s store in %s", dbType, time.Since(start))
	return s, nil
}

// createBunDB constructs a *bun.DB for the provided *sql.DB and dbType.
func createBunDB(sqlDB *sql.DB, dbType string) (*bun.DB, error) {
	switch dbType {
	case "sqlite":
		return bun.NewDB(sqlDB, sqlitedialect.New()), nil
	case "postgres":
		return bun.NewDB(sqlDB, pgdialect.New()), nil
	case "mysql":
		return bun.NewDB(sqlDB, mysqldialect.New()), nil
	default:
		return nil, fmt.Errorf("unsupported database type: '%s'", dbType)
	}
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.bun.Close()
}

func (s *Store) initSchema(ctx context.Context) error {
	if _, err := s.bun.NewCreateTable().Model((*ColumnModel)(nil)).IfNotExists().Exec(ctx); err != nil {
		return err
	}
	if _, err := s.bun.NewCreateTable().Model((*CellModel)(nil)).IfNotExists().Exec(ctx); err != nil {
		return err
	}
	return nil
}

// Seed replaces the stored dataset with the given one inside a single
// transaction. Column FilterOptions are not persisted; they travel with the
// dataset file.
func (s *Store) Seed(ctx context.Context, ds *model.Dataset) error {
	tx, err := s.bun.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	// Bun requires a WHERE clause on Delete; raw statements keep this terse.
	if _, err := tx.NewRaw("DELETE FROM cells").Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear cells: %w", err)
	}
	if _, err := tx.NewRaw("DELETE FROM columns").Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear columns: %w", err)
	}

	for i, c := range ds.Columns {
		cm := &ColumnModel{ID: c.ID, Title: c.Title, FilterFn: c.FilterFn, Position: i}
		if _, err := tx.NewInsert().Model(cm).Exec(ctx); err != nil {
			return mapStoreError(fmt.Errorf("failed to insert column %s: %w", c.ID, err))
		}
	}
	for ri, row := range ds.Rows {
		for _, c := range ds.Columns {
			cell := cellFromValue(int64(ri), c.ID, row.Value(c.ID))
			if _, err := tx.NewInsert().Model(cell).Exec(ctx); err != nil {
				return fmt.Errorf("failed to insert cell: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	s.gen++
	return nil
}

// Columns returns the stored column metadata in position order.
func (s *Store) Columns(ctx context.Context) ([]model.Column, error) {
	var cms []ColumnModel
	if err := s.bun.NewSelect().Model(&cms).Order("position ASC").Scan(ctx); err != nil {
		return nil, err
	}
	cols := make([]model.Column, len(cms))
	for i, cm := range cms {
		cols[i] = model.Column{ID: cm.ID, Title: cm.Title, FilterFn: cm.FilterFn}
	}
	return cols, nil
}

// Rows reconstructs all rows from the cells table, in row order.
func (s *Store) Rows(ctx context.Context) ([]model.Row, error) {
	var cells []CellModel
	if err := s.bun.NewSelect().Model(&cells).Order("row_index ASC", "id ASC").Scan(ctx); err != nil {
		return nil, err
	}

	byRow := make(map[int64]model.Row)
	for _, c := range cells {
		row, ok := byRow[c.RowIndex]
		if !ok {
			row = make(model.Row)
			byRow[c.RowIndex] = row
		}
		row[c.ColumnID] = valueFromCell(c)
	}

	indexes := make([]int64, 0, len(byRow))
	for i := range byRow {
		indexes = append(indexes, i)
	}
	sort.Slice(indexes, func(a, b int) bool { return indexes[a] < indexes[b] })

	rows := make([]model.Row, 0, len(indexes))
	for _, i := range indexes {
		rows = append(rows, byRow[i])
	}
	return rows, nil
}

// ColumnValues returns one column's raw values across all rows, in row order.
func (s *Store) ColumnValues(ctx context.Context, columnID string) ([]optionset.Value, error) {
	var cells []CellModel
	err := s.bun.NewSelect().Model(&cells).
		Where("column_id = ?", columnID).
		Order("row_index ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]optionset.Value, len(cells))
	for i, c := range cells {
		out[i] = valueFromCell(c)
	}
	return out, nil
}

// Generation implements RowProvider.
func (s *Store) Generation() uint64 { return s.gen }

var _ RowProvider = (*Store)(nil)

func cellFromValue(rowIndex int64, columnID string, v optionset.Value) *CellModel {
	cell := &CellModel{
		RowIndex: rowIndex,
		ColumnID: columnID,
		Kind:     int(v.Kind()),
	}
	switch v.Kind() {
	case optionset.KindBool:
		cell.BoolValue = v.Truthy()
	case optionset.KindNumber:
		cell.NumValue = v.Num()
	case optionset.KindString:
		cell.TextValue = v.String()
	}
	return cell
}

func valueFromCell(c CellModel) optionset.Value {
	switch optionset.Kind(c.Kind) {
	case optionset.KindBool:
		return optionset.Bool(c.BoolValue)
	case optionset.KindNumber:
		return optionset.Number(c.NumValue)
	case optionset.KindString:
		return optionset.String(c.TextValue)
	default:
		return optionset.Null()
	}
}
