// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/danielhkuo/me-tracker/middleware"
	"github.com/danielhkuo/me-tracker/models"
	"github.com/danielhkuo/me-tracker/store"
	"github.com/danielhkuo/me-tracker/testutil"
	"github.com/danielhkuo/me-tracker/validation"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	db        *sql.DB
	store     *store.Store
	validator *validation.Validator
	admin     models.Staff
	staff     models.Staff
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	return &testEnv{
		db:        conn,
		store:     store.New(conn),
		validator: validation.New(validation.WithClock(func() time.Time { return testNow })),
		admin:     testutil.CreateTestStaff(t, conn, "Ada Admin", "ada@example.org", models.RoleAdmin),
		staff:     testutil.CreateTestStaff(t, conn, "Sam Staff", "sam@example.org", models.RoleStaff),
	}
}

// as attaches user to the request the way RequireSession does.
func as(r *http.Request, user models.Staff) *http.Request {
	return r.WithContext(middleware.WithUser(r.Context(), &user))
}

func serve(h http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h(w, r)
	return w
}

func post(path string, form url.Values) *http.Request {
	return testutil.MakeFormRequest(path, form)
}
