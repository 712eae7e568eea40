// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package validation checks submitted forms against per-entity rule sets.

# Forms

A Form wraps the submitted url.Values and exposes typed accessors. Numeric,
integer, boolean and date fields are coerced by the accessor; a value that
cannot be coerced becomes a validation error for that field:

	f := validation.NewForm(r.PostForm)
	in, err := v.StrategicObjective(f)

# Rule Sets

Rules are declared as validate tags on the models.*Input types and checked
with go-playground/validator. Fields are checked in declaration order and
each field reports at most its first failing rule. Cross-field rules run
afterwards:

  - actualValue must not exceed targetValue (strategic objectives, projects)

Custom tags:

  - coerced: the Form accessor parsed the raw value
  - notfuture: the timestamp is not after the validator's clock

# Errors

Failures are returned as Errors, an ordered list of {path, message}.
ByField groups the messages for form rendering:

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		middleware.JSONResponse(w, http.StatusBadRequest, verrs.Response())
	}
*/
package validation
