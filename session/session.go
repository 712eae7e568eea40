// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/securecookie"

	"github.com/danielhkuo/me-tracker/models"
	"github.com/danielhkuo/me-tracker/store"
)

const (
	CookieName = "ME_session"
	MaxAge     = 30 * 24 * time.Hour
)

var (
	ErrMissingSecret = errors.New("session secret is required")
	// ErrUnknownUser means the session names a user the store does not know.
	// The session is stale and should be destroyed.
	ErrUnknownUser = errors.New("session user not found")
)

// UnauthenticatedError is returned when a request carries no valid session.
type UnauthenticatedError struct {
	RedirectTo string
}

func (e *UnauthenticatedError) Error() string {
	return "authentication required for " + e.RedirectTo
}

// LoginURL is the login location that returns to RedirectTo afterwards.
func (e *UnauthenticatedError) LoginURL() string {
	return "/login?" + url.Values{"redirectTo": {e.RedirectTo}}.Encode()
}

// StaffFinder resolves a user id to a staff record.
type StaffFinder interface {
	FindStaffByID(ctx context.Context, id string) (models.Staff, error)
}

type Config struct {
	Secret string
	Secure bool
}

// Manager issues and verifies the signed session cookie. The cookie holds
// only the user id. Safe for concurrent use.
type Manager struct {
	codec  *securecookie.SecureCookie
	secure bool
}

type payload struct {
	UserID string `json:"userId"`
}

func NewManager(cfg Config) (*Manager, error) {
	if cfg.Secret == "" {
		return nil, ErrMissingSecret
	}

	codec := securecookie.New([]byte(cfg.Secret), nil)
	codec.MaxAge(int(MaxAge.Seconds()))
	codec.SetSerializer(securecookie.JSONEncoder{})

	return &Manager{codec: codec, secure: cfg.Secure}, nil
}

func (m *Manager) cookie(value string, maxAge int) *http.Cookie {
	c := &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
	if maxAge > 0 {
		c.Expires = time.Now().Add(time.Duration(maxAge) * time.Second)
	} else {
		c.Expires = time.Unix(0, 0)
	}
	return c
}

// Create returns a new session cookie for userID. Call only after the
// user's credentials have been verified.
func (m *Manager) Create(userID string) (*http.Cookie, error) {
	if userID == "" {
		return nil, errors.New("session: empty user id")
	}
	value, err := m.codec.Encode(CookieName, payload{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("failed to encode session: %w", err)
	}
	return m.cookie(value, int(MaxAge.Seconds())), nil
}

// UserID returns the session's user id. Missing, tampered, expired and
// malformed cookies all report false.
func (m *Manager) UserID(r *http.Request) (string, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return "", false
	}

	var p payload
	if err := m.codec.Decode(CookieName, c.Value, &p); err != nil {
		return "", false
	}
	if p.UserID == "" {
		return "", false
	}
	return p.UserID, true
}

// RequireUser returns the session's user id or an *UnauthenticatedError
// carrying the requested path.
func (m *Manager) RequireUser(r *http.Request) (string, error) {
	userID, ok := m.UserID(r)
	if !ok {
		return "", &UnauthenticatedError{RedirectTo: r.URL.Path}
	}
	return userID, nil
}

// CurrentUser resolves the session to a staff record. It returns nil, nil
// when there is no session and ErrUnknownUser when the id no longer
// exists. Other store failures are returned wrapped; they say nothing about
// the session's validity and must not end it.
func (m *Manager) CurrentUser(ctx context.Context, r *http.Request, finder StaffFinder) (*models.Staff, error) {
	userID, ok := m.UserID(r)
	if !ok {
		return nil, nil
	}

	staff, err := finder.FindStaffByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUnknownUser
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}
	return &staff, nil
}

// Destroy returns a cookie that clears the session.
func (m *Manager) Destroy() *http.Cookie {
	return m.cookie("", -1)
}
