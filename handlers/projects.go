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

type ProjectHandler struct {
	store     *store.Store
	validator *validation.Validator
}

func NewProjectHandler(st *store.Store, v *validation.Validator) *ProjectHandler {
	return &ProjectHandler{store: st, validator: v}
}

// List handles GET /project
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	projects, err := h.store.ListProjects(ctx)
	if err != nil {
		middleware.InternalError(w, "failed to list projects", err)
		return
	}
	objectives, err := h.store.ListStrategicObjectives(ctx)
	if err != nil {
		middleware.InternalError(w, "failed to list strategic objectives", err)
		return
	}
	teams, err := h.store.ListTeams(ctx)
	if err != nil {
		middleware.InternalError(w, "failed to list teams", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ProjectListResponse{
		Projects:            projects,
		StrategicObjectives: objectives,
		Teams:               teams,
		User:                middleware.UserFromContext(ctx),
	})
}

// Create handles POST /project
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	createRequest[models.ProjectInput, models.Project]{
		entity:   "project",
		action:   auth.CreateProject,
		validate: h.validator.Project,
		insert:   h.store.CreateProject,
		logID:    func(p models.Project) int64 { return p.ID },
	}.serve(w, r)
}

// LoginOrCreate routes POST /project. The project page embeds a login form,
// so a submission carrying email and password goes to login; anything else
// goes to create.
func LoginOrCreate(login, create http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if values, err := middleware.ParseForm(r); err == nil && values.Has("email") && values.Has("password") {
			login(w, r)
			return
		}
		create(w, r)
	}
}
