// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"database/sql"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/danielhkuo/me-tracker/db"
	"github.com/danielhkuo/me-tracker/store"
)

// CLI holds the command tree and its resolved configuration.
type CLI struct {
	rootCmd *cobra.Command
	v       *viper.Viper

	configPath string
}

func New() *CLI {
	c := &CLI{v: viper.New()}
	c.rootCmd = c.newRootCmd()
	return c
}

// Execute runs the CLI with os.Args.
func (c *CLI) Execute() error {
	return c.rootCmd.Execute()
}

func (c *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mnectl",
		Short: "Administer the M&E tracker database",
		Long: `mnectl manages an M&E tracker database.

Commands:
  migrate    create the schema
  staff add  provision a staff account
  seed       load teams and staff from a YAML file

The database is chosen with --database-url/--database-type, the
DATABASE_URL/DATABASE_TYPE environment variables, or a config file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initConfig(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (yaml)")
	cmd.PersistentFlags().StringP("database-url", "d", "", "database URL")
	cmd.PersistentFlags().StringP("database-type", "t", "", "database type (sqlite or postgres)")

	cmd.AddCommand(c.newMigrateCmd())
	cmd.AddCommand(c.newStaffCmd())
	cmd.AddCommand(c.newSeedCmd())

	return cmd
}

func (c *CLI) initConfig(cmd *cobra.Command) error {
	c.v.SetDefault("database_type", db.TypeSQLite)

	if err := c.v.BindPFlag("database_url", cmd.Root().PersistentFlags().Lookup("database-url")); err != nil {
		return err
	}
	if err := c.v.BindPFlag("database_type", cmd.Root().PersistentFlags().Lookup("database-type")); err != nil {
		return err
	}
	c.v.BindEnv("database_url", "DATABASE_URL")
	c.v.BindEnv("database_type", "DATABASE_TYPE")

	if c.configPath != "" {
		c.v.SetConfigFile(c.configPath)
		if err := c.v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config: %w", err)
		}
	}
	return nil
}

// openStore connects using the resolved configuration and makes sure the
// schema exists.
func (c *CLI) openStore() (*store.Store, *sql.DB, error) {
	url := c.v.GetString("database_url")
	if url == "" {
		return nil, nil, fmt.Errorf("database URL required (use -d or DATABASE_URL env)")
	}
	dbType := strings.ToLower(c.v.GetString("database_type"))

	conn, err := db.Open(dbType, url)
	if err != nil {
		return nil, nil, err
	}
	if err := db.CreateSchema(conn, dbType); err != nil {
		conn.Close()
		return nil, nil, err
	}
	return store.New(conn), conn, nil
}

func (c *CLI) printf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format, args...)
}
