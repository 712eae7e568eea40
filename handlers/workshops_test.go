// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/me-tracker/models"
	"github.com/danielhkuo/me-tracker/testutil"
)

func workshopForm() url.Values {
	return url.Values{
		"projectId":                  {"1"},
		"numParticipants":            {"24"},
		"disaggregatedSex":           {"MALE"},
		"ageGroup":                   {"GROUP_45_54"},
		"preEvaluation":              {"Low awareness"},
		"postEvaluation":             {"High awareness"},
		"localPartner":               {"Village council"},
		"localPartnerResponsibility": {"Venue"},
		"successOfPartnership":       {"Good"},
		"challenges":                 {"Rain"},
		"strengths":                  {"Turnout"},
		"outcomes":                   {"Action plan"},
		"recommendations":            {"Repeat quarterly"},
	}
}

func TestWorkshopHandler_CreateThenList(t *testing.T) {
	env := newTestEnv(t)
	h := NewWorkshopHandler(env.store, env.validator)

	w := serve(h.Create, as(post("/workshop", workshopForm()), env.admin))
	testutil.AssertStatus(t, w, http.StatusOK)

	var created models.Workshop
	testutil.AssertJSON(t, w, &created)
	assert.Equal(t, int64(24), created.NumParticipants)
	assert.False(t, created.Disability)

	w = serve(h.List, as(testutil.MakeRequest("GET", "/workshop"), env.staff))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.WorkshopListResponse
	testutil.AssertJSON(t, w, &resp)
	require.Len(t, resp.Workshops, 1)
	assert.Nil(t, resp.Workshops[0].Project, "project 1 does not exist")
	assert.Empty(t, resp.Projects)
}

func TestWorkshopHandler_Validation(t *testing.T) {
	env := newTestEnv(t)
	h := NewWorkshopHandler(env.store, env.validator)

	form := workshopForm()
	form.Set("numParticipants", "2.5")
	form.Del("recommendations")

	w := serve(h.Create, as(post("/workshop", form), env.admin))
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	var resp models.ValidationErrorResponse
	testutil.AssertJSON(t, w, &resp)
	assert.Equal(t, []models.FieldError{
		{Path: []string{"numParticipants"}, Message: "Number of participants must be a whole number"},
		{Path: []string{"recommendations"}, Message: "Recommendations are required"},
	}, resp.Errors)
	assert.Equal(t, 0, testutil.CountRows(t, env.db, "workshop"))
}

func TestWorkshopHandler_CreateForbidden(t *testing.T) {
	env := newTestEnv(t)
	h := NewWorkshopHandler(env.store, env.validator)

	w := serve(h.Create, as(post("/workshop", workshopForm()), env.staff))
	testutil.AssertStatus(t, w, http.StatusForbidden)
	assert.Equal(t, 0, testutil.CountRows(t, env.db, "workshop"))
}
