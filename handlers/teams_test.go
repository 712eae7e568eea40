// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/me-tracker/models"
	"github.com/danielhkuo/me-tracker/testutil"
)

// An admin creates "Ops"; the team then appears in the list.
func TestTeamHandler_CreateThenList(t *testing.T) {
	env := newTestEnv(t)
	h := NewTeamHandler(env.store, env.validator)

	w := serve(h.Create, as(post("/team", url.Values{"name": {"Ops"}}), env.admin))
	testutil.AssertStatus(t, w, http.StatusOK)

	var created models.Team
	testutil.AssertJSON(t, w, &created)
	assert.Equal(t, "Ops", created.Name)
	assert.Positive(t, created.ID)

	w = serve(h.List, as(testutil.MakeRequest("GET", "/team"), env.staff))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.TeamListResponse
	testutil.AssertJSON(t, w, &resp)
	require.Len(t, resp.Teams, 1)
	assert.Equal(t, created, resp.Teams[0])
	require.NotNil(t, resp.User)
	assert.Equal(t, env.staff.ID, resp.User.ID)
}

func TestTeamHandler_ListEmpty(t *testing.T) {
	env := newTestEnv(t)
	h := NewTeamHandler(env.store, env.validator)

	w := serve(h.List, as(testutil.MakeRequest("GET", "/team"), env.staff))
	testutil.AssertStatus(t, w, http.StatusOK)
	assert.Contains(t, w.Body.String(), `"teams":[]`)
}

func TestTeamHandler_CreateForbidden(t *testing.T) {
	env := newTestEnv(t)
	h := NewTeamHandler(env.store, env.validator)

	w := serve(h.Create, as(post("/team", url.Values{"name": {"Ops"}}), env.staff))

	testutil.AssertStatus(t, w, http.StatusForbidden)
	assert.JSONEq(t, `{"error":"Not authorized"}`, w.Body.String())
	assert.Equal(t, 0, testutil.CountRows(t, env.db, "team"), "no record created")
}

func TestTeamHandler_CreateWithoutUser(t *testing.T) {
	env := newTestEnv(t)
	h := NewTeamHandler(env.store, env.validator)

	w := serve(h.Create, post("/team", url.Values{"name": {"Ops"}}))

	testutil.AssertStatus(t, w, http.StatusForbidden)
	assert.Equal(t, 0, testutil.CountRows(t, env.db, "team"))
}

func TestTeamHandler_CreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		form    url.Values
		message string
	}{
		{"missing name", url.Values{}, "Team name is required"},
		{"empty name", url.Values{"name": {""}}, "Team name is required"},
		{"name too long", url.Values{"name": {strings.Repeat("x", 101)}}, "Team name must be 100 characters or less"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			h := NewTeamHandler(env.store, env.validator)

			w := serve(h.Create, as(post("/team", tt.form), env.admin))
			testutil.AssertStatus(t, w, http.StatusBadRequest)

			var resp models.ValidationErrorResponse
			testutil.AssertJSON(t, w, &resp)
			require.Len(t, resp.Errors, 1)
			assert.Equal(t, []string{"name"}, resp.Errors[0].Path)
			assert.Equal(t, tt.message, resp.Errors[0].Message)
			assert.Equal(t, []string{tt.message}, resp.FieldErrors["name"])

			assert.Equal(t, 0, testutil.CountRows(t, env.db, "team"))
		})
	}
}

func TestTeamHandler_NameAtLimit(t *testing.T) {
	env := newTestEnv(t)
	h := NewTeamHandler(env.store, env.validator)

	w := serve(h.Create, as(post("/team", url.Values{"name": {strings.Repeat("x", 100)}}), env.admin))
	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestTeamHandler_StoreFailure(t *testing.T) {
	env := newTestEnv(t)
	h := NewTeamHandler(env.store, env.validator)
	env.db.Close()

	w := serve(h.Create, as(post("/team", url.Values{"name": {"Ops"}}), env.admin))
	testutil.AssertStatus(t, w, http.StatusInternalServerError)
	assert.JSONEq(t, `{"error":"An unexpected error occurred"}`, w.Body.String())

	w = serve(h.List, as(testutil.MakeRequest("GET", "/team"), env.admin))
	testutil.AssertStatus(t, w, http.StatusInternalServerError)
	assert.JSONEq(t, `{"error":"An unexpected error occurred"}`, w.Body.String())
}
