// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns an immutable Config with all settings:

	cliparse.LoadDotEnv()
	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: PostgreSQL connection string or SQLite path (required)
  - DatabaseType: sqlite (default) or postgres
  - SessionSecret: Key for signing the session cookie
  - Environment: development (default) or production

# CLI Flags

	-p                Server port
	-d                Database URL
	-t                Database type
	--session-secret  Session cookie secret
	--env             Environment

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	SESSION_SECRET → --session-secret
	APP_ENV        → --env (NODE_ENV is also honored)

CLI flags take precedence over environment variables, which take precedence
over a .env file loaded with LoadDotEnv.

# Validation

ParseFlags returns an error if:

  - DATABASE_URL is missing
  - DATABASE_TYPE is neither sqlite nor postgres
  - SESSION_SECRET is missing in production

In development a missing secret logs a warning and falls back to
DevSessionSecret.
*/
package cliparse
