// Copyright (c) 2025 ToeiRei
// Tablekit - table filter components for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cli contains the command-line interface wiring: the cobra root
// command, configuration loading, and resolution of the configured data
// source before the terminal UI takes over.
package cli
