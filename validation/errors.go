// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validation

import (
	"strings"

	"github.com/danielhkuo/me-tracker/models"
)

// Errors is an ordered list of field-addressed validation failures.
type Errors []models.FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, strings.Join(fe.Path, ".")+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ByField groups messages by the first path element, preserving order.
func (e Errors) ByField() map[string][]string {
	grouped := make(map[string][]string, len(e))
	for _, fe := range e {
		if len(fe.Path) == 0 {
			continue
		}
		grouped[fe.Path[0]] = append(grouped[fe.Path[0]], fe.Message)
	}
	return grouped
}

// Response builds the 400 payload.
func (e Errors) Response() models.ValidationErrorResponse {
	return models.ValidationErrorResponse{
		Errors:      []models.FieldError(e),
		FieldErrors: e.ByField(),
	}
}
