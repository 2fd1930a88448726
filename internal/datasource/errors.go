// Copyright (c) 2025 ToeiRei
// Tablekit - table filter components for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

// Shared datasource errors and helpers.
package datasource

import (
	"errors"
	"strings"
)

// ErrDuplicate is returned when attempting to insert a record that already exists.
var ErrDuplicate = errors.New("duplicate record")

// mapStoreError inspects low-level driver errors and maps common constraint
// violations to package-level sentinel errors. This is a conservative,
// string-based mapping to avoid importing SQL driver packages here.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}
	le := strings.ToLower(err.Error())
	// MySQL duplicate entry, Postgres unique violation (23505), SQLite unique constraint
	if strings.Contains(le, "duplicate") || strings.Contains(le, "unique") || strings.Contains(le, "23505") || strings.Contains(le, "1062") {
		return ErrDuplicate
	}
	return err
}
