// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/danielhkuo/me-tracker/auth"
	"github.com/danielhkuo/me-tracker/cliparse"
	"github.com/danielhkuo/me-tracker/db"
	"github.com/danielhkuo/me-tracker/models"
	"github.com/danielhkuo/me-tracker/session"
)

// TestPassword is the plaintext password of every staff member created here
const TestPassword = "test-password"

// TestSessionSecret signs cookies in tests
const TestSessionSecret = "test-session-secret"

var dbCounter atomic.Int64

// SetupTestDB creates a fresh in-memory SQLite database with the full schema.
// Each call gets its own database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbCounter.Add(1))
	conn, err := db.Open(db.TypeSQLite, dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseURL:   "file::memory:",
		DatabaseType:  db.TypeSQLite,
		SessionSecret: TestSessionSecret,
		Environment:   cliparse.EnvDevelopment,
	}
}

// NewSessionManager returns a manager signing with TestSessionSecret
func NewSessionManager(t *testing.T) *session.Manager {
	t.Helper()
	m, err := session.NewManager(session.Config{Secret: TestSessionSecret})
	if err != nil {
		t.Fatalf("Failed to create session manager: %v", err)
	}
	return m
}

// CreateTestStaff inserts a staff member with TestPassword and returns it
func CreateTestStaff(t *testing.T, conn *sql.DB, name, email, role string) models.Staff {
	t.Helper()

	hash, err := auth.HashPassword(TestPassword)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	staff := models.Staff{
		ID:           auth.GenerateID(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	_, err = conn.Exec(`
		INSERT INTO staff (id, name, email, password, role)
		VALUES ($1, $2, $3, $4, $5)
	`, staff.ID, staff.Name, staff.Email, staff.PasswordHash, staff.Role)
	if err != nil {
		t.Fatalf("Failed to create test staff: %v", err)
	}

	return staff
}

// SessionCookie returns a signed session cookie for userID
func SessionCookie(t *testing.T, m *session.Manager, userID string) *http.Cookie {
	t.Helper()
	c, err := m.Create(userID)
	if err != nil {
		t.Fatalf("Failed to create session cookie: %v", err)
	}
	return c
}

// CreateTestTeam inserts a team and returns its ID
func CreateTestTeam(t *testing.T, conn *sql.DB, name string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`INSERT INTO team (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test team: %v", err)
	}
	return id
}

// CreateTestProject inserts a project under the given objective and team
// and returns its ID
func CreateTestProject(t *testing.T, conn *sql.DB, name string, objectiveID, teamID int64) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO project (name, objective, strategic_objective_id, outcome, activity, kpi,
		                     target_value, actual_value, status, responsible_team_id, timeline, last_updated)
		VALUES ($1, 'Objective', $2, 'Outcome', 'Activity', 'KPI', 100, 40, 'ON_TRACK', $3, 'Q3', $4)
		RETURNING id
	`, name, objectiveID, teamID, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test project: %v", err)
	}
	return id
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// MakeFormRequest creates a url-encoded POST request
func MakeFormRequest(path string, form url.Values, cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

// MakeRequest creates an HTTP test request without a body
func MakeRequest(method, path string, cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
