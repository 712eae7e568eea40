// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/me-tracker/auth"
	"github.com/danielhkuo/me-tracker/models"
	"github.com/danielhkuo/me-tracker/store"
)

var errInvalidRole = fmt.Errorf("role must be %s or %s", models.RoleAdmin, models.RoleStaff)

func (c *CLI) newStaffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staff",
		Short: "Manage staff accounts",
	}
	cmd.AddCommand(c.newStaffAddCmd())
	return cmd
}

func (c *CLI) newStaffAddCmd() *cobra.Command {
	var name, email, role, password string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Provision a staff account",
		Long: `Provision a staff account.

The password is read from --password or, when omitted, from the first line
of standard input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return errors.New("password required (use --password or stdin)")
				}
				password = strings.TrimRight(line, "\r\n")
			}

			st, conn, err := c.openStore()
			if err != nil {
				return err
			}
			defer conn.Close()

			staff, err := addStaff(cmd.Context(), st, name, email, role, password)
			if err != nil {
				return err
			}

			c.printf(cmd.OutOrStdout(), "✓ Staff created: %s <%s> %s (%s)\n", staff.Name, staff.Email, staff.Role, staff.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().StringVar(&role, "role", models.RoleStaff, "role (ADMIN or STAFF)")
	cmd.Flags().StringVar(&password, "password", "", "password (prefer stdin)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")

	return cmd
}

// checkStaff reports the first problem with a staff entry.
func checkStaff(name, email, role, password string) error {
	role = strings.ToUpper(strings.TrimSpace(role))
	if role != models.RoleAdmin && role != models.RoleStaff {
		return errInvalidRole
	}
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return errors.New("name and email are required")
	}
	if password == "" {
		return errors.New("password is required")
	}
	return nil
}

// addStaff validates and inserts one staff account.
func addStaff(ctx context.Context, st *store.Store, name, email, role, password string) (models.Staff, error) {
	if err := checkStaff(name, email, role, password); err != nil {
		return models.Staff{}, err
	}
	role = strings.ToUpper(strings.TrimSpace(role))

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.Staff{}, err
	}

	staff := models.Staff{
		ID:           auth.GenerateID(),
		Name:         strings.TrimSpace(name),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: hash,
		Role:         role,
	}
	if err := st.CreateStaff(ctx, staff); err != nil {
		return models.Staff{}, err
	}
	return staff, nil
}
