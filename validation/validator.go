// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validation

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/me-tracker/models"
)

type invalidFieldsKey struct{}

// tagActualWithinTarget is reported by the cross-field progress refinement.
const tagActualWithinTarget = "withintarget"

// Validator checks submitted forms against the per-entity rule sets.
// Safe for concurrent use.
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

type Option func(*Validator)

// WithClock overrides the clock used by the not-in-the-future date rule.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		v.now = now
	}
}

func New(opts ...Option) *Validator {
	v := &Validator{now: time.Now}
	for _, opt := range opts {
		opt(v)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their form name so errors map straight back to inputs.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// coerced fails when the Form accessor could not parse the raw value.
	validate.RegisterValidationCtx("coerced", func(ctx context.Context, fl validator.FieldLevel) bool {
		invalid, _ := ctx.Value(invalidFieldsKey{}).(map[string]bool)
		return !invalid[fl.FieldName()]
	})

	validate.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
		t, ok := fl.Field().Interface().(time.Time)
		return ok && !t.After(v.now())
	})

	validate.RegisterStructValidationCtx(actualWithinTarget,
		models.StrategicObjectiveInput{}, models.ProjectInput{})

	v.validate = validate
	return v
}

// actualWithinTarget enforces actualValue <= targetValue once both parsed.
func actualWithinTarget(ctx context.Context, sl validator.StructLevel) {
	invalid, _ := ctx.Value(invalidFieldsKey{}).(map[string]bool)
	if invalid["targetValue"] || invalid["actualValue"] {
		return
	}

	var target, actual float64
	switch in := sl.Current().Interface().(type) {
	case models.StrategicObjectiveInput:
		target, actual = in.TargetValue, in.ActualValue
	case models.ProjectInput:
		target, actual = in.TargetValue, in.ActualValue
	default:
		return
	}

	if actual > target {
		sl.ReportError(actual, "actualValue", "ActualValue", tagActualWithinTarget, "targetValue")
	}
}

// check validates in and converts failures into ordered field errors.
func (v *Validator) check(f *Form, in any, messages map[string]string) error {
	ctx := context.WithValue(context.Background(), invalidFieldsKey{}, f.invalid)

	err := v.validate.StructCtx(ctx, in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate %T: %w", in, err)
	}

	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, models.FieldError{
			Path:    []string{fe.Field()},
			Message: message(messages, fe),
		})
	}
	return out
}

func message(messages map[string]string, fe validator.FieldError) string {
	if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}

	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "coerced":
		return fe.Field() + " is not a valid value"
	case "max":
		return fmt.Sprintf("%s must be %s characters or less", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "notfuture":
		return fe.Field() + " cannot be in the future"
	}
	return fe.Field() + " is invalid"
}
