// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/me-tracker/auth"
	"github.com/danielhkuo/me-tracker/middleware"
	"github.com/danielhkuo/me-tracker/models"
	"github.com/danielhkuo/me-tracker/session"
	"github.com/danielhkuo/me-tracker/store"
)

type AuthHandler struct {
	store    *store.Store
	sessions *session.Manager
}

func NewAuthHandler(st *store.Store, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{store: st, sessions: sessions}
}

// LoginPage handles GET /login
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.LoginPageResponse{
		RedirectTo: SafeRedirect(r.URL.Query().Get("redirectTo")),
	})
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	values, err := middleware.ParseForm(r)
	if err != nil || !values.Has("email") || !values.Has("password") {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidForm)
		return
	}

	user, err := auth.Authenticate(r.Context(), h.store, values.Get("email"), values.Get("password"))
	if errors.Is(err, auth.ErrInvalidCredentials) {
		slog.Info("login failed")
		middleware.ErrorResponse(w, http.StatusBadRequest, msgBadCredentials)
		return
	}
	if err != nil {
		middleware.InternalError(w, "failed to authenticate", err)
		return
	}

	cookie, err := h.sessions.Create(user.ID)
	if err != nil {
		middleware.InternalError(w, "failed to create session", err)
		return
	}

	slog.Info("staff logged in", "user_id", user.ID)
	http.SetCookie(w, cookie)
	http.Redirect(w, r, SafeRedirect(values.Get("redirectTo")), http.StatusFound)
}

// Logout handles POST /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessions.Destroy())
	http.Redirect(w, r, "/login", http.StatusFound)
}

// Home handles GET /
func (h *AuthHandler) Home(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.HomeResponse{
		User: middleware.UserFromContext(r.Context()),
	})
}

// SafeRedirect returns target when it is a local absolute path, else "/".
func SafeRedirect(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	return target
}
