// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/danielhkuo/me-tracker/models"
	"github.com/danielhkuo/me-tracker/store"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmptyPassword      = errors.New("password must not be empty")
)

// dummyHash is compared against when the email is unknown, so both failure
// paths spend the same bcrypt work.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)

// StaffLookup finds staff by login email.
type StaffLookup interface {
	FindStaffByEmail(ctx context.Context, email string) (models.Staff, error)
}

// GenerateID creates a random UUID for staff records
func GenerateID() string {
	return uuid.NewString()
}

// HashPassword returns the bcrypt hash of password
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the bcrypt hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Authenticate verifies an email/password pair. Unknown emails and wrong
// passwords both return ErrInvalidCredentials.
func Authenticate(ctx context.Context, staff StaffLookup, email, password string) (models.Staff, error) {
	user, err := staff.FindStaffByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return models.Staff{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.Staff{}, fmt.Errorf("failed to look up staff: %w", err)
	}

	if !CheckPassword(user.PasswordHash, password) {
		return models.Staff{}, ErrInvalidCredentials
	}
	return user, nil
}
