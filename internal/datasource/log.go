// Copyright (c) 2025 ToeiRei
// Tablekit - table filter components for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

package datasource

import "github.com/toeirei/tablekit/internal/logging"

var debugEnabled bool

// SetDebug enables or disables datasource debug logging. Disabled by default.
func SetDebug(enabled bool) {
	debugEnabled = enabled
}

func dsLogf(format string, v ...any) {
	if debugEnabled {
		logging.Debugf(format, v...)
	}
}
