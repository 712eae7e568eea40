// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/me-tracker/store"
	"github.com/danielhkuo/me-tracker/validation"
)

// SeedFile is the YAML document loaded by `mnectl seed`.
type SeedFile struct {
	Teams []SeedTeam  `yaml:"teams"`
	Staff []SeedStaff `yaml:"staff"`
}

type SeedTeam struct {
	Name string `yaml:"name"`
}

type SeedStaff struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Role     string `yaml:"role"`
	Password string `yaml:"password"`
}

// SeedResult counts what a seed run created and skipped.
type SeedResult struct {
	TeamsCreated, TeamsSkipped int
	StaffCreated, StaffSkipped int
}

func (c *CLI) newSeedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load teams and staff from a YAML file",
		Long: `Load teams and staff from a YAML file:

  teams:
    - name: Ops
  staff:
    - name: Ada
      email: ada@example.org
      role: ADMIN
      password: change-me

Teams whose name already exists and staff whose email already exists are
skipped, so the same file can be applied twice.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := loadSeedFile(file)
			if err != nil {
				return err
			}

			st, conn, err := c.openStore()
			if err != nil {
				return err
			}
			defer conn.Close()

			res, err := applySeed(cmd.Context(), st, validation.New(), seed)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			c.printf(out, "✓ Teams: %s created, %s skipped\n", humanize.Comma(int64(res.TeamsCreated)), humanize.Comma(int64(res.TeamsSkipped)))
			c.printf(out, "✓ Staff: %s created, %s skipped\n", humanize.Comma(int64(res.StaffCreated)), humanize.Comma(int64(res.StaffSkipped)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "seed file (yaml)")
	cmd.MarkFlagRequired("file")

	return cmd
}

func loadSeedFile(path string) (SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SeedFile{}, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return SeedFile{}, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return seed, nil
}

// applySeed validates every entry before writing any of them.
func applySeed(ctx context.Context, st *store.Store, v *validation.Validator, seed SeedFile) (SeedResult, error) {
	for i, t := range seed.Teams {
		if _, err := v.Team(validation.NewForm(url.Values{"name": {t.Name}})); err != nil {
			return SeedResult{}, fmt.Errorf("teams[%d]: %w", i, err)
		}
	}
	for i, s := range seed.Staff {
		if err := checkStaff(s.Name, s.Email, s.Role, s.Password); err != nil {
			return SeedResult{}, fmt.Errorf("staff[%d]: %w", i, err)
		}
	}

	existing, err := st.ListTeams(ctx)
	if err != nil {
		return SeedResult{}, err
	}
	names := make(map[string]bool, len(existing))
	for _, t := range existing {
		names[t.Name] = true
	}

	var res SeedResult
	for _, t := range seed.Teams {
		if names[t.Name] {
			res.TeamsSkipped++
			continue
		}
		in, _ := v.Team(validation.NewForm(url.Values{"name": {t.Name}}))
		if _, err := st.CreateTeam(ctx, in); err != nil {
			return res, err
		}
		names[t.Name] = true
		res.TeamsCreated++
	}

	for i, s := range seed.Staff {
		_, err := st.FindStaffByEmail(ctx, s.Email)
		if err == nil {
			res.StaffSkipped++
			continue
		}
		if !errors.Is(err, store.ErrNotFound) {
			return res, err
		}
		if _, err := addStaff(ctx, st, s.Name, s.Email, s.Role, s.Password); err != nil {
			return res, fmt.Errorf("staff[%d]: %w", i, err)
		}
		res.StaffCreated++
	}

	return res, nil
}
