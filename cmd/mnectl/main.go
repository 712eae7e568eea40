// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command mnectl administers an M&E tracker database: it creates the
// schema, provisions staff accounts and loads seed data.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := New().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "mnectl: %v\n", err)
		os.Exit(1)
	}
}
