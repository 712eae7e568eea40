// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store reads and writes records through database/sql.

The same queries run on PostgreSQL (lib/pq) and SQLite (modernc.org/sqlite):
both accept $N placeholders and INSERT ... RETURNING id.

	st := store.New(conn)
	team, err := st.CreateTeam(ctx, models.TeamInput{Name: "Ops"})
	teams, err := st.ListTeams(ctx)

Lists re-read the full table on every call. References to teams, objectives
and projects are joined with LEFT JOIN, so a record whose reference does
not resolve is still listed with a nil reference.

Progress percentages and formatted grant amounts are derived when records
are read; neither is stored.

Lookups that find nothing return ErrNotFound.
*/
package store
