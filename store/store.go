// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/danielhkuo/me-tracker/models"
)

var ErrNotFound = errors.New("record not found")

// Store is the record store. Every list re-reads its table; nothing is cached.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Ping reports whether the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// FindStaffByID loads a staff member by id.
func (s *Store) FindStaffByID(ctx context.Context, id string) (models.Staff, error) {
	return s.findStaff(ctx, "id", id)
}

// FindStaffByEmail loads a staff member by email, case-insensitively.
func (s *Store) FindStaffByEmail(ctx context.Context, email string) (models.Staff, error) {
	return s.findStaff(ctx, "email", normalizeEmail(email))
}

func (s *Store) findStaff(ctx context.Context, column, value string) (models.Staff, error) {
	var staff models.Staff
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, password, role
		FROM staff
		WHERE `+column+` = $1
	`, value).Scan(&staff.ID, &staff.Name, &staff.Email, &staff.PasswordHash, &staff.Role)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Staff{}, ErrNotFound
	}
	if err != nil {
		return models.Staff{}, fmt.Errorf("failed to query staff: %w", err)
	}
	return staff, nil
}

// CreateStaff inserts a staff member. PasswordHash must already be hashed.
func (s *Store) CreateStaff(ctx context.Context, staff models.Staff) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO staff (id, name, email, password, role)
		VALUES ($1, $2, $3, $4, $5)
	`, staff.ID, staff.Name, normalizeEmail(staff.Email), staff.PasswordHash, staff.Role)
	if err != nil {
		return fmt.Errorf("failed to insert staff: %w", err)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ListTeams returns every team ordered by id.
func (s *Store) ListTeams(ctx context.Context) ([]models.Team, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM team ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer rows.Close()

	teams := []models.Team{}
	for rows.Next() {
		var team models.Team
		if err := rows.Scan(&team.ID, &team.Name); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, team)
	}
	return teams, rows.Err()
}

// CreateTeam inserts a validated team.
func (s *Store) CreateTeam(ctx context.Context, in models.TeamInput) (models.Team, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO team (name) VALUES ($1) RETURNING id
	`, in.Name).Scan(&id)
	if err != nil {
		return models.Team{}, fmt.Errorf("failed to insert team: %w", err)
	}
	return models.Team{ID: id, Name: in.Name}, nil
}

func teamRef(id sql.NullInt64, name sql.NullString) *models.Team {
	if !id.Valid {
		return nil
	}
	return &models.Team{ID: id.Int64, Name: name.String}
}
