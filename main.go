// Copyright (c) 2025 ToeiRei
// Tablekit - table filter components for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for tablekit.
//
// Usage:
//
//	go run . [flags]
//	./tablekit [flags]
//
// This launches the tablekit dataset browser. See --help for options.
package main

import (
	"log"
	"os"

	"github.com/toeirei/tablekit/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Printf("tablekit error: %v", err)
		os.Exit(1)
	}
}
