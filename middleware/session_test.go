// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/me-tracker/models"
	"github.com/danielhkuo/me-tracker/session"
	"github.com/danielhkuo/me-tracker/store"
)

type fakeFinder struct {
	staff map[string]models.Staff
	err   error
}

func (f fakeFinder) FindStaffByID(_ context.Context, id string) (models.Staff, error) {
	if f.err != nil {
		return models.Staff{}, f.err
	}
	s, ok := f.staff[id]
	if !ok {
		return models.Staff{}, store.ErrNotFound
	}
	return s, nil
}

func newManager(t *testing.T) *session.Manager {
	t.Helper()
	m, err := session.NewManager(session.Config{Secret: "middleware-test-secret"})
	require.NoError(t, err)
	return m
}

func TestRequireSession(t *testing.T) {
	sessions := newManager(t)
	admin := models.Staff{ID: "u1", Name: "Ada", Role: models.RoleAdmin}

	validCookie, err := sessions.Create("u1")
	require.NoError(t, err)
	ghostCookie, err := sessions.Create("ghost")
	require.NoError(t, err)

	tests := []struct {
		name         string
		cookie       *http.Cookie
		finder       fakeFinder
		wantStatus   int
		wantLocation string
		wantCalled   bool
		wantCleared  bool
	}{
		{
			name:         "no cookie redirects to login",
			finder:       fakeFinder{},
			wantStatus:   http.StatusFound,
			wantLocation: "/login?redirectTo=%2Fstrategy",
		},
		{
			name:         "tampered cookie redirects to login",
			cookie:       &http.Cookie{Name: session.CookieName, Value: "forged"},
			finder:       fakeFinder{},
			wantStatus:   http.StatusFound,
			wantLocation: "/login?redirectTo=%2Fstrategy",
		},
		{
			name:         "unknown user clears cookie",
			cookie:       ghostCookie,
			finder:       fakeFinder{staff: map[string]models.Staff{"u1": admin}},
			wantStatus:   http.StatusFound,
			wantLocation: "/login?redirectTo=%2Fstrategy",
			wantCleared:  true,
		},
		{
			name:       "store failure is 500 and keeps session",
			cookie:     validCookie,
			finder:     fakeFinder{err: errors.New("connection reset")},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "valid session reaches handler",
			cookie:     validCookie,
			finder:     fakeFinder{staff: map[string]models.Staff{"u1": admin}},
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen *models.Staff
			called := false
			h := RequireSession(sessions, tt.finder, func(w http.ResponseWriter, r *http.Request) {
				called = true
				seen = UserFromContext(r.Context())
			})

			req := httptest.NewRequest("GET", "/strategy", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			w := httptest.NewRecorder()
			h(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCalled, called)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, w.Header().Get("Location"))
			}

			cleared := false
			for _, c := range w.Result().Cookies() {
				if c.Name == session.CookieName && c.MaxAge < 0 {
					cleared = true
				}
			}
			assert.Equal(t, tt.wantCleared, cleared)

			if tt.wantCalled {
				require.NotNil(t, seen)
				assert.Equal(t, "u1", seen.ID)
			}
		})
	}
}

func TestUserFromContext_Empty(t *testing.T) {
	assert.Nil(t, UserFromContext(context.Background()))
}
