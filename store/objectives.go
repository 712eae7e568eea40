// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/me-tracker/models"
)

// ListStrategicObjectives returns every objective with its responsible team.
func (s *Store) ListStrategicObjectives(ctx context.Context) ([]models.StrategicObjective, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT so.id, so.name, so.outcome, so.kpi, so.target_value, so.actual_value,
		       so.status, so.team_id, so.last_updated, t.id, t.name
		FROM strategic_objective so
		LEFT JOIN team t ON t.id = so.team_id
		ORDER BY so.id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query strategic objectives: %w", err)
	}
	defer rows.Close()

	objectives := []models.StrategicObjective{}
	for rows.Next() {
		var so models.StrategicObjective
		var teamID sql.NullInt64
		var teamName sql.NullString

		if err := rows.Scan(
			&so.ID, &so.Name, &so.Outcome, &so.KPI, &so.TargetValue, &so.ActualValue,
			&so.Status, &so.TeamID, &so.LastUpdated, &teamID, &teamName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan strategic objective: %w", err)
		}

		so.ResponsibleTeam = teamRef(teamID, teamName)
		so.ProgressPercentage = models.ProgressPercentage(so.ActualValue, so.TargetValue)
		objectives = append(objectives, so)
	}
	return objectives, rows.Err()
}

// CreateStrategicObjective inserts a validated objective. The progress
// percentage is derived, not stored.
func (s *Store) CreateStrategicObjective(ctx context.Context, in models.StrategicObjectiveInput) (models.StrategicObjective, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO strategic_objective (name, outcome, kpi, target_value, actual_value, status, team_id, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, in.Name, in.Outcome, in.KPI, in.TargetValue, in.ActualValue, in.Status, in.TeamID, in.LastUpdated).Scan(&id)
	if err != nil {
		return models.StrategicObjective{}, fmt.Errorf("failed to insert strategic objective: %w", err)
	}

	return models.StrategicObjective{
		ID:                 id,
		Name:               in.Name,
		Outcome:            in.Outcome,
		KPI:                in.KPI,
		TargetValue:        in.TargetValue,
		ActualValue:        in.ActualValue,
		ProgressPercentage: models.ProgressPercentage(in.ActualValue, in.TargetValue),
		Status:             in.Status,
		TeamID:             in.TeamID,
		LastUpdated:        in.LastUpdated,
	}, nil
}

// ListProjects returns every project with its objective and team.
func (s *Store) ListProjects(ctx context.Context) ([]models.Project, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.objective, p.strategic_objective_id, p.outcome, p.activity,
		       p.kpi, p.target_value, p.actual_value, p.status, p.responsible_team_id,
		       p.timeline, p.last_updated, so.id, so.name, t.id, t.name
		FROM project p
		LEFT JOIN strategic_objective so ON so.id = p.strategic_objective_id
		LEFT JOIN team t ON t.id = p.responsible_team_id
		ORDER BY p.id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		var p models.Project
		var soID, teamID sql.NullInt64
		var soName, teamName sql.NullString

		if err := rows.Scan(
			&p.ID, &p.Name, &p.Objective, &p.StrategicObjectiveID, &p.Outcome, &p.Activity,
			&p.KPI, &p.TargetValue, &p.ActualValue, &p.Status, &p.ResponsibleTeamID,
			&p.Timeline, &p.LastUpdated, &soID, &soName, &teamID, &teamName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}

		if soID.Valid {
			p.StrategicObjective = &models.StrategicObjectiveRef{ID: soID.Int64, Name: soName.String}
		}
		p.ResponsibleTeam = teamRef(teamID, teamName)
		p.ProgressPercentage = models.ProgressPercentage(p.ActualValue, p.TargetValue)
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// CreateProject inserts a validated project.
func (s *Store) CreateProject(ctx context.Context, in models.ProjectInput) (models.Project, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO project (name, objective, strategic_objective_id, outcome, activity, kpi,
		                     target_value, actual_value, status, responsible_team_id, timeline, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`, in.Name, in.Objective, in.StrategicObjectiveID, in.Outcome, in.Activity, in.KPI,
		in.TargetValue, in.ActualValue, in.Status, in.ResponsibleTeamID, in.Timeline, in.LastUpdated).Scan(&id)
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to insert project: %w", err)
	}

	return models.Project{
		ID:                   id,
		Name:                 in.Name,
		Objective:            in.Objective,
		StrategicObjectiveID: in.StrategicObjectiveID,
		Outcome:              in.Outcome,
		Activity:             in.Activity,
		KPI:                  in.KPI,
		TargetValue:          in.TargetValue,
		ActualValue:          in.ActualValue,
		ProgressPercentage:   models.ProgressPercentage(in.ActualValue, in.TargetValue),
		Status:               in.Status,
		ResponsibleTeamID:    in.ResponsibleTeamID,
		Timeline:             in.Timeline,
		LastUpdated:          in.LastUpdated,
	}, nil
}
