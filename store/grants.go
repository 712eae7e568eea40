// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/me-tracker/models"
)

func projectRef(id sql.NullInt64, name sql.NullString) *models.ProjectRef {
	if !id.Valid {
		return nil
	}
	return &models.ProjectRef{ID: id.Int64, Name: name.String}
}

// FormatAmount renders a grant amount with thousands separators, e.g. 1,250.50.
func FormatAmount(amount float64) string {
	return humanize.FormatFloat("#,###.##", amount)
}

// ListLivelihoods returns every livelihood grant with its project.
func (s *Store) ListLivelihoods(ctx context.Context) ([]models.Livelihood, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT l.id, l.project_id, l.participant_name, l.location, l.disaggregated_sex,
		       l.disability, l.age_group, l.grant_amount_received, l.purpose, l.progress1,
		       l.progress2, l.outcome, l.subsequent_grant_amount, p.id, p.name
		FROM livelihood l
		LEFT JOIN project p ON p.id = l.project_id
		ORDER BY l.id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query livelihoods: %w", err)
	}
	defer rows.Close()

	livelihoods := []models.Livelihood{}
	for rows.Next() {
		var l models.Livelihood
		var projectID sql.NullInt64
		var projectName sql.NullString

		if err := rows.Scan(
			&l.ID, &l.ProjectID, &l.ParticipantName, &l.Location, &l.DisaggregatedSex,
			&l.Disability, &l.AgeGroup, &l.GrantAmountReceived, &l.Purpose, &l.Progress1,
			&l.Progress2, &l.Outcome, &l.SubsequentGrantAmount, &projectID, &projectName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan livelihood: %w", err)
		}

		l.Project = projectRef(projectID, projectName)
		l.GrantAmountDisplay = FormatAmount(l.GrantAmountReceived)
		livelihoods = append(livelihoods, l)
	}
	return livelihoods, rows.Err()
}

// CreateLivelihood inserts a validated livelihood grant.
func (s *Store) CreateLivelihood(ctx context.Context, in models.LivelihoodInput) (models.Livelihood, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO livelihood (project_id, participant_name, location, disaggregated_sex, disability,
		                        age_group, grant_amount_received, purpose, progress1, progress2,
		                        outcome, subsequent_grant_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`, in.ProjectID, in.ParticipantName, in.Location, in.DisaggregatedSex, in.Disability,
		in.AgeGroup, in.GrantAmountReceived, in.Purpose, in.Progress1, in.Progress2,
		in.Outcome, in.SubsequentGrantAmount).Scan(&id)
	if err != nil {
		return models.Livelihood{}, fmt.Errorf("failed to insert livelihood: %w", err)
	}

	return models.Livelihood{
		ID:                    id,
		ProjectID:             in.ProjectID,
		ParticipantName:       in.ParticipantName,
		Location:              in.Location,
		DisaggregatedSex:      in.DisaggregatedSex,
		Disability:            in.Disability,
		AgeGroup:              in.AgeGroup,
		GrantAmountReceived:   in.GrantAmountReceived,
		GrantAmountDisplay:    FormatAmount(in.GrantAmountReceived),
		Purpose:               in.Purpose,
		Progress1:             in.Progress1,
		Progress2:             in.Progress2,
		Outcome:               in.Outcome,
		SubsequentGrantAmount: in.SubsequentGrantAmount,
	}, nil
}

// ListWorkshops returns every workshop with its project.
func (s *Store) ListWorkshops(ctx context.Context) ([]models.Workshop, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT w.id, w.project_id, w.num_participants, w.disaggregated_sex, w.disability,
		       w.age_group, w.pre_evaluation, w.post_evaluation, w.local_partner,
		       w.local_partner_responsibility, w.success_of_partnership, w.challenges,
		       w.strengths, w.outcomes, w.recommendations, p.id, p.name
		FROM workshop w
		LEFT JOIN project p ON p.id = w.project_id
		ORDER BY w.id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query workshops: %w", err)
	}
	defer rows.Close()

	workshops := []models.Workshop{}
	for rows.Next() {
		var w models.Workshop
		var projectID sql.NullInt64
		var projectName sql.NullString

		if err := rows.Scan(
			&w.ID, &w.ProjectID, &w.NumParticipants, &w.DisaggregatedSex, &w.Disability,
			&w.AgeGroup, &w.PreEvaluation, &w.PostEvaluation, &w.LocalPartner,
			&w.LocalPartnerResponsibility, &w.SuccessOfPartnership, &w.Challenges,
			&w.Strengths, &w.Outcomes, &w.Recommendations, &projectID, &projectName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan workshop: %w", err)
		}

		w.Project = projectRef(projectID, projectName)
		workshops = append(workshops, w)
	}
	return workshops, rows.Err()
}

// CreateWorkshop inserts a validated workshop.
func (s *Store) CreateWorkshop(ctx context.Context, in models.WorkshopInput) (models.Workshop, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO workshop (project_id, num_participants, disaggregated_sex, disability, age_group,
		                      pre_evaluation, post_evaluation, local_partner, local_partner_responsibility,
		                      success_of_partnership, challenges, strengths, outcomes, recommendations)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`, in.ProjectID, in.NumParticipants, in.DisaggregatedSex, in.Disability, in.AgeGroup,
		in.PreEvaluation, in.PostEvaluation, in.LocalPartner, in.LocalPartnerResponsibility,
		in.SuccessOfPartnership, in.Challenges, in.Strengths, in.Outcomes, in.Recommendations).Scan(&id)
	if err != nil {
		return models.Workshop{}, fmt.Errorf("failed to insert workshop: %w", err)
	}

	return models.Workshop{
		ID:                         id,
		ProjectID:                  in.ProjectID,
		NumParticipants:            in.NumParticipants,
		DisaggregatedSex:           in.DisaggregatedSex,
		Disability:                 in.Disability,
		AgeGroup:                   in.AgeGroup,
		PreEvaluation:              in.PreEvaluation,
		PostEvaluation:             in.PostEvaluation,
		LocalPartner:               in.LocalPartner,
		LocalPartnerResponsibility: in.LocalPartnerResponsibility,
		SuccessOfPartnership:       in.SuccessOfPartnership,
		Challenges:                 in.Challenges,
		Strengths:                  in.Strengths,
		Outcomes:                   in.Outcomes,
		Recommendations:            in.Recommendations,
	}, nil
}
