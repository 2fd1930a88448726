// Copyright (c) 2025 ToeiRei
// Tablekit - table filter components for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

// This file loads datasets from YAML files, transparently decompressing
// zstd-compressed files by extension.
package datasource

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/klauspost/compress/zstd"

	"github.com/toeirei/tablekit/internal/model"
	"github.com/toeirei/tablekit/internal/optionset"
)

// datasetFile is the on-disk YAML shape of a dataset.
type datasetFile struct {
	Name    string           `yaml:"name"`
	Columns []columnFile     `yaml:"columns"`
	Rows    []map[string]any `yaml:"rows"`
}

type columnFile struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Accessor string `yaml:"accessor"`
	FilterFn string `yaml:"filterFn"`
	Options  []any  `yaml:"options"`
}

// LoadDataset reads a dataset from a YAML file. Files ending in .zst are
// decompressed on the fly.
func LoadDataset(path string) (*model.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to open zstd dataset: %w", err)
		}
		defer zr.Close()
		r = zr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	return ParseDataset(data)
}

// ParseDataset decodes a YAML dataset document.
func ParseDataset(data []byte) (*model.Dataset, error) {
	var df datasetFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	if len(df.Columns) == 0 {
		return nil, fmt.Errorf("dataset has no columns")
	}

	ds := &model.Dataset{Name: df.Name}
	// accessor -> column ID, for re-keying raw cells
	rekey := make(map[string]string)
	for _, c := range df.Columns {
		if c.ID == "" {
			return nil, fmt.Errorf("dataset column without id")
		}
		col := model.Column{
			ID:       c.ID,
			Title:    c.Title,
			Accessor: c.Accessor,
			FilterFn: c.FilterFn,
		}
		if col.Title == "" {
			col.Title = c.ID
		}
		if col.Accessor != "" && col.Accessor != col.ID {
			rekey[col.Accessor] = col.ID
		}
		for _, o := range c.Options {
			col.FilterOptions = append(col.FilterOptions, optionset.From(o))
		}
		ds.Columns = append(ds.Columns, col)
	}

	for _, raw := range df.Rows {
		row := make(model.Row, len(raw))
		for k, v := range raw {
			if id, ok := rekey[k]; ok {
				k = id
			}
			row[k] = optionset.From(v)
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds, nil
}
