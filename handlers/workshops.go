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

type WorkshopHandler struct {
	store     *store.Store
	validator *validation.Validator
}

func NewWorkshopHandler(st *store.Store, v *validation.Validator) *WorkshopHandler {
	return &WorkshopHandler{store: st, validator: v}
}

// List handles GET /workshop
func (h *WorkshopHandler) List(w http.ResponseWriter, r *http.Request) {
	workshops, err := h.store.ListWorkshops(r.Context())
	if err != nil {
		middleware.InternalError(w, "failed to list workshops", err)
		return
	}
	projects, err := h.store.ListProjects(r.Context())
	if err != nil {
		middleware.InternalError(w, "failed to list projects", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.WorkshopListResponse{
		Workshops: workshops,
		Projects:  projects,
		User:      middleware.UserFromContext(r.Context()),
	})
}

// Create handles POST /workshop
func (h *WorkshopHandler) Create(w http.ResponseWriter, r *http.Request) {
	createRequest[models.WorkshopInput, models.Workshop]{
		entity:   "workshop",
		action:   auth.CreateWorkshop,
		validate: h.validator.Workshop,
		insert:   h.store.CreateWorkshop,
		logID:    func(ws models.Workshop) int64 { return ws.ID },
	}.serve(w, r)
}
