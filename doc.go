// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the M&E tracker server.

The M&E tracker records monitoring-and-evaluation data for an
organisation: teams, strategic objectives, projects, livelihood grants and
workshops. Staff sign in with email and password; everyone signed in can
read, only ADMIN staff can create.

# Starting the Server

The server reads flags, then environment variables, then a .env file:

	DATABASE_URL=me.db go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string
  - SESSION_SECRET (--session-secret): required when APP_ENV=production

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - APP_ENV (--env): development (default) or production

Staff accounts are provisioned with the mnectl command (cmd/mnectl).

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (entities, login)
  - router: Route definitions using Go 1.22+ routing
  - middleware: logging, metrics, session gate, JSON helpers
  - validation: form coercion and per-entity rule sets
  - session: signed session cookie
  - auth: passwords and the ADMIN role check
  - store: record persistence
  - models: records, inputs and responses
  - db: connection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
