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

type StrategyHandler struct {
	store     *store.Store
	validator *validation.Validator
}

func NewStrategyHandler(st *store.Store, v *validation.Validator) *StrategyHandler {
	return &StrategyHandler{store: st, validator: v}
}

// List handles GET /strategy. Teams are included for the create form.
func (h *StrategyHandler) List(w http.ResponseWriter, r *http.Request) {
	objectives, err := h.store.ListStrategicObjectives(r.Context())
	if err != nil {
		middleware.InternalError(w, "failed to list strategic objectives", err)
		return
	}

	teams, err := h.store.ListTeams(r.Context())
	if err != nil {
		middleware.InternalError(w, "failed to list teams", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.StrategyListResponse{
		StrategicObjectives: objectives,
		Teams:               teams,
		User:                middleware.UserFromContext(r.Context()),
	})
}

// Create handles POST /strategy
func (h *StrategyHandler) Create(w http.ResponseWriter, r *http.Request) {
	createRequest[models.StrategicObjectiveInput, models.StrategicObjective]{
		entity:   "strategic objective",
		action:   auth.CreateStrategicObjective,
		validate: h.validator.StrategicObjective,
		insert:   h.store.CreateStrategicObjective,
		logID:    func(so models.StrategicObjective) int64 { return so.ID },
	}.serve(w, r)
}
