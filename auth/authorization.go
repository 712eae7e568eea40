// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"

	"github.com/danielhkuo/me-tracker/models"
)

var ErrForbidden = errors.New("not authorized")

// Action names an operation subject to a role check.
type Action string

// Write actions
const (
	CreateTeam               Action = "create:team"
	CreateStrategicObjective Action = "create:strategic_objective"
	CreateProject            Action = "create:project"
	CreateLivelihood         Action = "create:livelihood"
	CreateWorkshop           Action = "create:workshop"
)

// Read actions
const (
	ViewRecords Action = "view:records"
)

var writeActions = map[Action]bool{
	CreateTeam:               true,
	CreateStrategicObjective: true,
	CreateProject:            true,
	CreateLivelihood:         true,
	CreateWorkshop:           true,
}

// IsAuthorized reports whether user may perform action. Writes need the
// ADMIN role; reads need only a resolved user.
func IsAuthorized(user *models.Staff, action Action) bool {
	if user == nil {
		return false
	}
	if writeActions[action] {
		return user.Role == models.RoleAdmin
	}
	return true
}

// Authorize is IsAuthorized returning ErrForbidden on refusal.
func Authorize(user *models.Staff, action Action) error {
	if !IsAuthorized(user, action) {
		return ErrForbidden
	}
	return nil
}
