// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates its schema.

# Connecting

Open selects the driver from the configured type and pings the server:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

Supported types:

  - postgres: github.com/lib/pq
  - sqlite:   modernc.org/sqlite (pure Go, default)

# Schema Creation

CreateSchema initializes all required tables for the given type:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - staff: users, bcrypt password hash, role
  - team
  - strategic_objective: target/actual metrics, status, team_id
  - project: strategic_objective_id, responsible_team_id, metrics
  - livelihood: grant records per project
  - workshop: workshop records per project

# Relationships

	team 1──* strategic_objective
	team 1──* project
	strategic_objective 1──* project
	project 1──* livelihood
	project 1──* workshop

Reference columns are plain integers. Referenced rows are not required to
exist; lists resolve them with LEFT JOIN.

Progress percentages are not stored; they are derived on read.
*/
package db
