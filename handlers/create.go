// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/me-tracker/auth"
	"github.com/danielhkuo/me-tracker/middleware"
	"github.com/danielhkuo/me-tracker/validation"
)

// Response messages
const (
	msgNotAuthorized  = "Not authorized"
	msgInvalidForm    = "Invalid form submission"
	msgBadCredentials = "Invalid email or password"
)

// createRequest is the write path every entity route shares:
// authorize, coerce and validate the form, then insert.
type createRequest[In, Out any] struct {
	entity   string
	action   auth.Action
	validate func(*validation.Form) (In, error)
	insert   func(context.Context, In) (Out, error)
	logID    func(Out) int64
}

func (c createRequest[In, Out]) serve(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if err := auth.Authorize(user, c.action); err != nil {
		userID := ""
		if user != nil {
			userID = user.ID
		}
		slog.Warn("create refused", "entity", c.entity, "user_id", userID, "error", err)
		middleware.ErrorResponse(w, http.StatusForbidden, msgNotAuthorized)
		return
	}

	values, err := middleware.ParseForm(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidForm)
		return
	}

	in, err := c.validate(validation.NewForm(values))
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			middleware.JSONResponse(w, http.StatusBadRequest, verrs.Response())
			return
		}
		middleware.InternalError(w, "failed to validate "+c.entity, err)
		return
	}

	out, err := c.insert(r.Context(), in)
	if err != nil {
		middleware.InternalError(w, "failed to insert "+c.entity, err)
		return
	}

	slog.Info(c.entity+" created", "id", c.logID(out), "user_id", user.ID)
	middleware.JSONResponse(w, http.StatusOK, out)
}
