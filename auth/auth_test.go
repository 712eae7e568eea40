// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/me-tracker/models"
	"github.com/danielhkuo/me-tracker/store"
)

func TestGenerateID(t *testing.T) {
	id := GenerateID()
	_, err := uuid.Parse(id)
	require.NoError(t, err, "GenerateID() should return a UUID")

	if GenerateID() == id {
		t.Error("GenerateID() produced duplicate IDs (extremely unlikely)")
	}
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	assert.NotEqual(t, "correct horse", hash, "hash should not be the plaintext")
	assert.True(t, CheckPassword(hash, "correct horse"))
	assert.False(t, CheckPassword(hash, "wrong horse"))
	assert.False(t, CheckPassword("not-a-hash", "correct horse"))

	// Salted: same password, different hash
	hash2, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)

	_, err = HashPassword("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

type fakeStaff struct {
	byEmail map[string]models.Staff
	err     error
}

func (f fakeStaff) FindStaffByEmail(_ context.Context, email string) (models.Staff, error) {
	if f.err != nil {
		return models.Staff{}, f.err
	}
	s, ok := f.byEmail[email]
	if !ok {
		return models.Staff{}, store.ErrNotFound
	}
	return s, nil
}

func TestAuthenticate(t *testing.T) {
	hash, err := HashPassword("pw")
	require.NoError(t, err)

	admin := models.Staff{ID: "u1", Name: "Ada", Email: "ada@example.org", PasswordHash: hash, Role: models.RoleAdmin}
	lookup := fakeStaff{byEmail: map[string]models.Staff{admin.Email: admin}}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"valid credentials", "ada@example.org", "pw", nil},
		{"wrong password", "ada@example.org", "nope", ErrInvalidCredentials},
		{"unknown email", "bob@example.org", "pw", ErrInvalidCredentials},
		{"empty password", "ada@example.org", "", ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := Authenticate(context.Background(), lookup, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, user.ID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "u1", user.ID)
		})
	}
}

func TestAuthenticateStoreFailure(t *testing.T) {
	boom := errors.New("connection refused")
	_, err := Authenticate(context.Background(), fakeStaff{err: boom}, "ada@example.org", "pw")

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestIsAuthorized(t *testing.T) {
	admin := &models.Staff{ID: "a", Role: models.RoleAdmin}
	staff := &models.Staff{ID: "s", Role: models.RoleStaff}
	other := &models.Staff{ID: "o", Role: "admin"}

	writes := []Action{CreateTeam, CreateStrategicObjective, CreateProject, CreateLivelihood, CreateWorkshop}

	for _, action := range writes {
		t.Run(string(action), func(t *testing.T) {
			assert.True(t, IsAuthorized(admin, action))
			assert.False(t, IsAuthorized(staff, action))
			assert.False(t, IsAuthorized(other, action), "role match is case-sensitive")
			assert.False(t, IsAuthorized(nil, action))
		})
	}

	assert.True(t, IsAuthorized(staff, ViewRecords))
	assert.True(t, IsAuthorized(admin, ViewRecords))
	assert.False(t, IsAuthorized(nil, ViewRecords))
}

func TestAuthorize(t *testing.T) {
	assert.NoError(t, Authorize(&models.Staff{Role: models.RoleAdmin}, CreateTeam))
	assert.ErrorIs(t, Authorize(&models.Staff{Role: models.RoleStaff}, CreateTeam), ErrForbidden)
}
