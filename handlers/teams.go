// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/me-tracker/auth"
	"github.com/danielhkuo/me-tracker/middleware"
	"github.com/danielhkuo/me-tracker/models"
	"github.com/danielhkuo/me-tracker/store"
	"github.com/danielhkuo/me-tracker/validation"
)

type TeamHandler struct {
	store     *store.Store
	validator *validation.Validator
}

func NewTeamHandler(st *store.Store, v *validation.Validator) *TeamHandler {
	return &TeamHandler{store: st, validator: v}
}

// List handles GET /team
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	teams, err := h.store.ListTeams(r.Context())
	if err != nil {
		middleware.InternalError(w, "failed to list teams", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.TeamListResponse{
		Teams: teams,
		User:  middleware.UserFromContext(r.Context()),
	})
}

// Create handles POST /team
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	createRequest[models.TeamInput, models.Team]{
		entity:   "team",
		action:   auth.CreateTeam,
		validate: h.validator.Team,
		insert:   h.store.CreateTeam,
		logID:    func(t models.Team) int64 { return t.ID },
	}.serve(w, r)
}
