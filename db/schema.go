// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database types
const (
	TypePostgres = "postgres"
	TypeSQLite   = "sqlite"
)

// Open connects to the database and verifies the connection.
func Open(dbType, url string) (*sql.DB, error) {
	driver, err := driverName(dbType)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dbType, err)
	}

	if dbType == TypeSQLite {
		// SQLite allows one writer; in-memory databases are per connection.
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", dbType, err)
	}

	return conn, nil
}

func driverName(dbType string) (string, error) {
	switch dbType {
	case TypePostgres:
		return "postgres", nil
	case TypeSQLite:
		return "sqlite", nil
	}
	return "", fmt.Errorf("unsupported database type %q (use sqlite or postgres)", dbType)
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	var ddl string
	switch dbType {
	case TypePostgres:
		ddl = postgresSchema
	case TypeSQLite:
		ddl = sqliteSchema
	default:
		return fmt.Errorf("unsupported database type %q", dbType)
	}

	_, err := db.Exec(ddl)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Reference columns (team_id, strategic_objective_id, project_id) are not
// declared as foreign keys: references are not checked on create and lists
// join with LEFT JOIN.

const postgresSchema = `
-- Staff
CREATE TABLE IF NOT EXISTS staff (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL,
    role TEXT NOT NULL
);

-- Teams
CREATE TABLE IF NOT EXISTS team (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL
);

-- Strategic Objectives
CREATE TABLE IF NOT EXISTS strategic_objective (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    outcome TEXT NOT NULL,
    kpi TEXT NOT NULL,
    target_value DOUBLE PRECISION NOT NULL CHECK (target_value > 0),
    actual_value DOUBLE PRECISION NOT NULL CHECK (actual_value >= 0),
    status TEXT NOT NULL CHECK (status IN ('ON_TRACK', 'AT_RISK', 'DELAYED', 'COMPLETED')),
    team_id BIGINT NOT NULL,
    last_updated TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_strategic_objective_team_id ON strategic_objective(team_id);

-- Projects
CREATE TABLE IF NOT EXISTS project (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    objective TEXT NOT NULL,
    strategic_objective_id BIGINT NOT NULL,
    outcome TEXT NOT NULL,
    activity TEXT NOT NULL,
    kpi TEXT NOT NULL,
    target_value DOUBLE PRECISION NOT NULL CHECK (target_value > 0),
    actual_value DOUBLE PRECISION NOT NULL CHECK (actual_value >= 0),
    status TEXT NOT NULL CHECK (status IN ('ON_TRACK', 'AT_RISK', 'DELAYED', 'COMPLETED')),
    responsible_team_id BIGINT NOT NULL,
    timeline TEXT NOT NULL,
    last_updated TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_project_strategic_objective_id ON project(strategic_objective_id);
CREATE INDEX IF NOT EXISTS idx_project_responsible_team_id ON project(responsible_team_id);

-- Livelihood grants
CREATE TABLE IF NOT EXISTS livelihood (
    id BIGSERIAL PRIMARY KEY,
    project_id BIGINT NOT NULL,
    participant_name TEXT NOT NULL,
    location TEXT NOT NULL,
    disaggregated_sex TEXT NOT NULL,
    disability BOOLEAN NOT NULL,
    age_group TEXT NOT NULL,
    grant_amount_received DOUBLE PRECISION NOT NULL CHECK (grant_amount_received > 0),
    purpose TEXT NOT NULL,
    progress1 TEXT NOT NULL,
    progress2 TEXT NOT NULL,
    outcome TEXT NOT NULL,
    subsequent_grant_amount DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (subsequent_grant_amount >= 0)
);

CREATE INDEX IF NOT EXISTS idx_livelihood_project_id ON livelihood(project_id);

-- Workshops
CREATE TABLE IF NOT EXISTS workshop (
    id BIGSERIAL PRIMARY KEY,
    project_id BIGINT NOT NULL,
    num_participants BIGINT NOT NULL CHECK (num_participants >= 0),
    disaggregated_sex TEXT NOT NULL,
    disability BOOLEAN NOT NULL,
    age_group TEXT NOT NULL,
    pre_evaluation TEXT NOT NULL,
    post_evaluation TEXT NOT NULL,
    local_partner TEXT NOT NULL,
    local_partner_responsibility TEXT NOT NULL,
    success_of_partnership TEXT NOT NULL,
    challenges TEXT NOT NULL,
    strengths TEXT NOT NULL,
    outcomes TEXT NOT NULL,
    recommendations TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_workshop_project_id ON workshop(project_id);
`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS staff (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL,
    role TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS team (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS strategic_objective (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    outcome TEXT NOT NULL,
    kpi TEXT NOT NULL,
    target_value REAL NOT NULL CHECK (target_value > 0),
    actual_value REAL NOT NULL CHECK (actual_value >= 0),
    status TEXT NOT NULL CHECK (status IN ('ON_TRACK', 'AT_RISK', 'DELAYED', 'COMPLETED')),
    team_id INTEGER NOT NULL,
    last_updated TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_strategic_objective_team_id ON strategic_objective(team_id);

CREATE TABLE IF NOT EXISTS project (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    objective TEXT NOT NULL,
    strategic_objective_id INTEGER NOT NULL,
    outcome TEXT NOT NULL,
    activity TEXT NOT NULL,
    kpi TEXT NOT NULL,
    target_value REAL NOT NULL CHECK (target_value > 0),
    actual_value REAL NOT NULL CHECK (actual_value >= 0),
    status TEXT NOT NULL CHECK (status IN ('ON_TRACK', 'AT_RISK', 'DELAYED', 'COMPLETED')),
    responsible_team_id INTEGER NOT NULL,
    timeline TEXT NOT NULL,
    last_updated TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_project_strategic_objective_id ON project(strategic_objective_id);
CREATE INDEX IF NOT EXISTS idx_project_responsible_team_id ON project(responsible_team_id);

CREATE TABLE IF NOT EXISTS livelihood (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    project_id INTEGER NOT NULL,
    participant_name TEXT NOT NULL,
    location TEXT NOT NULL,
    disaggregated_sex TEXT NOT NULL,
    disability BOOLEAN NOT NULL,
    age_group TEXT NOT NULL,
    grant_amount_received REAL NOT NULL CHECK (grant_amount_received > 0),
    purpose TEXT NOT NULL,
    progress1 TEXT NOT NULL,
    progress2 TEXT NOT NULL,
    outcome TEXT NOT NULL,
    subsequent_grant_amount REAL NOT NULL DEFAULT 0 CHECK (subsequent_grant_amount >= 0)
);

CREATE INDEX IF NOT EXISTS idx_livelihood_project_id ON livelihood(project_id);

CREATE TABLE IF NOT EXISTS workshop (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    project_id INTEGER NOT NULL,
    num_participants INTEGER NOT NULL CHECK (num_participants >= 0),
    disaggregated_sex TEXT NOT NULL,
    disability BOOLEAN NOT NULL,
    age_group TEXT NOT NULL,
    pre_evaluation TEXT NOT NULL,
    post_evaluation TEXT NOT NULL,
    local_partner TEXT NOT NULL,
    local_partner_responsibility TEXT NOT NULL,
    success_of_partnership TEXT NOT NULL,
    challenges TEXT NOT NULL,
    strengths TEXT NOT NULL,
    outcomes TEXT NOT NULL,
    recommendations TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_workshop_project_id ON workshop(project_id);
`
