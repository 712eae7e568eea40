// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/me-tracker/models"
	"github.com/danielhkuo/me-tracker/store"
	"github.com/danielhkuo/me-tracker/testutil"
)

var lastUpdated = time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC)

// sameInstant compares times by instant; SQLite may hand back another zone.
var sameInstant = cmp.Comparer(func(a, b time.Time) bool { return a.Equal(b) })

func TestStaff(t *testing.T) {
	st := store.New(testutil.SetupTestDB(t))
	ctx := context.Background()

	staff := models.Staff{ID: "u1", Name: "Ada", Email: "  Ada@Example.org ", PasswordHash: "hash", Role: models.RoleAdmin}
	require.NoError(t, st.CreateStaff(ctx, staff))

	byID, err := st.FindStaffByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.org", byID.Email, "emails are stored normalized")
	assert.Equal(t, "hash", byID.PasswordHash)

	byEmail, err := st.FindStaffByEmail(ctx, "ADA@example.org")
	require.NoError(t, err)
	assert.Equal(t, "u1", byEmail.ID)

	_, err = st.FindStaffByID(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.FindStaffByEmail(ctx, "nobody@example.org")
	assert.ErrorIs(t, err, store.ErrNotFound)

	// Duplicate email
	staff.ID = "u2"
	assert.Error(t, st.CreateStaff(ctx, staff))
}

func TestTeams(t *testing.T) {
	st := store.New(testutil.SetupTestDB(t))
	ctx := context.Background()

	teams, err := st.ListTeams(ctx)
	require.NoError(t, err)
	assert.NotNil(t, teams, "empty list encodes as [] not null")
	assert.Empty(t, teams)

	ops, err := st.CreateTeam(ctx, models.TeamInput{Name: "Ops"})
	require.NoError(t, err)
	assert.Positive(t, ops.ID)

	// Names are not unique
	_, err = st.CreateTeam(ctx, models.TeamInput{Name: "Ops"})
	require.NoError(t, err)

	teams, err = st.ListTeams(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, ops, teams[0])
}

func TestStrategicObjectives(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	st := store.New(conn)
	ctx := context.Background()

	teamID := testutil.CreateTestTeam(t, conn, "Field")

	in := models.StrategicObjectiveInput{
		Name:        "Reach",
		Outcome:     "More households reached",
		KPI:         "Households",
		TargetValue: 200,
		ActualValue: 50,
		Status:      models.StatusOnTrack,
		TeamID:      teamID,
		LastUpdated: lastUpdated,
	}
	created, err := st.CreateStrategicObjective(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, 25.0, created.ProgressPercentage)

	// Dangling team reference is accepted and listed with a nil team
	in.TeamID = 999
	_, err = st.CreateStrategicObjective(ctx, in)
	require.NoError(t, err)

	list, err := st.ListStrategicObjectives(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	want := created
	want.ResponsibleTeam = &models.Team{ID: teamID, Name: "Field"}
	if diff := cmp.Diff(want, list[0], sameInstant); diff != "" {
		t.Errorf("ListStrategicObjectives()[0] mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, list[1].ResponsibleTeam)
	assert.Equal(t, int64(999), list[1].TeamID)
}

func TestProjects(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	st := store.New(conn)
	ctx := context.Background()

	teamID := testutil.CreateTestTeam(t, conn, "Field")
	objective, err := st.CreateStrategicObjective(ctx, models.StrategicObjectiveInput{
		Name: "Reach", Outcome: "o", KPI: "k", TargetValue: 10, ActualValue: 1,
		Status: models.StatusAtRisk, TeamID: teamID, LastUpdated: lastUpdated,
	})
	require.NoError(t, err)

	created, err := st.CreateProject(ctx, models.ProjectInput{
		Name:                 "Wells",
		Objective:            "Dig wells",
		StrategicObjectiveID: objective.ID,
		Outcome:              "Water access",
		Activity:             "Drilling",
		KPI:                  "Wells dug",
		TargetValue:          8,
		ActualValue:          8,
		Status:               models.StatusCompleted,
		ResponsibleTeamID:    teamID,
		Timeline:             "2025",
		LastUpdated:          lastUpdated,
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0, created.ProgressPercentage)

	list, err := st.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	want := created
	want.StrategicObjective = &models.StrategicObjectiveRef{ID: objective.ID, Name: "Reach"}
	want.ResponsibleTeam = &models.Team{ID: teamID, Name: "Field"}
	if diff := cmp.Diff(want, list[0], sameInstant); diff != "" {
		t.Errorf("ListProjects()[0] mismatch (-want +got):\n%s", diff)
	}
}

func TestLivelihoods(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	st := store.New(conn)
	ctx := context.Background()

	projectID := testutil.CreateTestProject(t, conn, "Wells", 1, 1)

	created, err := st.CreateLivelihood(ctx, models.LivelihoodInput{
		ProjectID:           projectID,
		ParticipantName:     "Grace",
		Location:            "Gulu",
		DisaggregatedSex:    models.SexFemale,
		Disability:          true,
		AgeGroup:            models.AgeGroup30To44,
		GrantAmountReceived: 1250.5,
		Purpose:             "Tailoring",
		Progress1:           "Bought machine",
		Progress2:           "First orders",
		Outcome:             "Profitable",
	})
	require.NoError(t, err)
	assert.Equal(t, "1,250.50", created.GrantAmountDisplay)
	assert.Equal(t, 0.0, created.SubsequentGrantAmount)

	list, err := st.ListLivelihoods(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	want := created
	want.Project = &models.ProjectRef{ID: projectID, Name: "Wells"}
	if diff := cmp.Diff(want, list[0]); diff != "" {
		t.Errorf("ListLivelihoods()[0] mismatch (-want +got):\n%s", diff)
	}
}

func TestWorkshops(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	st := store.New(conn)
	ctx := context.Background()

	created, err := st.CreateWorkshop(ctx, models.WorkshopInput{
		ProjectID:                  42,
		NumParticipants:            30,
		DisaggregatedSex:           models.SexOther,
		AgeGroup:                   models.AgeGroup65AndUp,
		PreEvaluation:              "Low awareness",
		PostEvaluation:             "High awareness",
		LocalPartner:               "Village council",
		LocalPartnerResponsibility: "Venue",
		SuccessOfPartnership:       "Good",
		Challenges:                 "Rain",
		Strengths:                  "Turnout",
		Outcomes:                   "Action plan",
		Recommendations:            "Repeat quarterly",
	})
	require.NoError(t, err)

	list, err := st.ListWorkshops(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	// Project 42 does not exist
	if diff := cmp.Diff(created, list[0]); diff != "" {
		t.Errorf("ListWorkshops()[0] mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, list[0].Project)
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{500, "500.00"},
		{1250.5, "1,250.50"},
		{1000000, "1,000,000.00"},
		{0.1, "0.10"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, store.FormatAmount(tt.amount))
	}
}

func TestCanceledContext(t *testing.T) {
	st := store.New(testutil.SetupTestDB(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := st.ListTeams(ctx)
	assert.Error(t, err)
}
