// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema",
		Long:  "Create every table and index. Safe to run repeatedly.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, conn, err := c.openStore()
			if err != nil {
				return err
			}
			defer conn.Close()

			c.printf(cmd.OutOrStdout(), "✓ Schema ready (%s)\n", c.v.GetString("database_type"))
			return nil
		},
	}
}
