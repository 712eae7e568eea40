// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/me-tracker/models"
	"github.com/danielhkuo/me-tracker/session"
)

type userKey struct{}

// UserFromContext returns the staff member resolved by RequireSession.
func UserFromContext(ctx context.Context) *models.Staff {
	user, _ := ctx.Value(userKey{}).(*models.Staff)
	return user
}

// WithUser stores user in ctx. Handlers read it back with UserFromContext.
func WithUser(ctx context.Context, user *models.Staff) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// RequireSession resolves the session user before calling next.
//
//   - no valid session: 302 to /login?redirectTo=<path>
//   - session names an unknown user: cookie destroyed, 302 to login
//   - store failure: generic 500, session left intact
func RequireSession(sessions *session.Manager, staff session.StaffFinder, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := sessions.RequireUser(r); err != nil {
			RedirectToLogin(w, r, err)
			return
		}

		user, err := sessions.CurrentUser(r.Context(), r, staff)
		switch {
		case errors.Is(err, session.ErrUnknownUser):
			slog.Warn("session references unknown staff, clearing", "path", r.URL.Path)
			http.SetCookie(w, sessions.Destroy())
			RedirectToLogin(w, r, nil)
			return
		case err != nil:
			InternalError(w, "failed to load session user", err)
			return
		case user == nil:
			RedirectToLogin(w, r, nil)
			return
		}

		next(w, r.WithContext(WithUser(r.Context(), user)))
	}
}

// RedirectToLogin sends a 302 to the login page, returning to the
// destination carried by err or, failing that, to the request path.
func RedirectToLogin(w http.ResponseWriter, r *http.Request, err error) {
	var unauth *session.UnauthenticatedError
	if !errors.As(err, &unauth) {
		unauth = &session.UnauthenticatedError{RedirectTo: r.URL.Path}
	}
	http.Redirect(w, r, unauth.LoginURL(), http.StatusFound)
}
