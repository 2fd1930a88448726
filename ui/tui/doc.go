// Copyright (c) 2025 ToeiRei
// Tablekit - table filter components for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui implements the terminal UI. Presentation and input handling
// live here; data access goes through the datasource providers and the
// filter sink.
package tui
