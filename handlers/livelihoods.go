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

type LivelihoodHandler struct {
	store     *store.Store
	validator *validation.Validator
}

func NewLivelihoodHandler(st *store.Store, v *validation.Validator) *LivelihoodHandler {
	return &LivelihoodHandler{store: st, validator: v}
}

// List handles GET /livelihood
func (h *LivelihoodHandler) List(w http.ResponseWriter, r *http.Request) {
	livelihoods, err := h.store.ListLivelihoods(r.Context())
	if err != nil {
		middleware.InternalError(w, "failed to list livelihoods", err)
		return
	}
	projects, err := h.store.ListProjects(r.Context())
	if err != nil {
		middleware.InternalError(w, "failed to list projects", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.LivelihoodListResponse{
		Livelihoods: livelihoods,
		Projects:    projects,
		User:        middleware.UserFromContext(r.Context()),
	})
}

// Create handles POST /livelihood
func (h *LivelihoodHandler) Create(w http.ResponseWriter, r *http.Request) {
	createRequest[models.LivelihoodInput, models.Livelihood]{
		entity:   "livelihood",
		action:   auth.CreateLivelihood,
		validate: h.validator.Livelihood,
		insert:   h.store.CreateLivelihood,
		logID:    func(l models.Livelihood) int64 { return l.ID },
	}.serve(w, r)
}
