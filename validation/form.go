// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validation

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/me-tracker/models"
)

// Accepted date layouts, most specific first. Layouts without a zone parse as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Labels the forms post for age groups, mapped to enum values.
var ageGroupLabels = map[string]string{
	"18-29": models.AgeGroup18To29,
	"30-44": models.AgeGroup30To44,
	"45-54": models.AgeGroup45To54,
	"55-64": models.AgeGroup55To64,
	"65+":   models.AgeGroup65AndUp,
}

// Form is a submitted set of fields with typed accessors. Accessors that
// fail to coerce a value return the zero value and remember the field, so
// the validator reports it under that field's name.
type Form struct {
	values  url.Values
	invalid map[string]bool
}

func NewForm(values url.Values) *Form {
	if values == nil {
		values = url.Values{}
	}
	return &Form{values: values, invalid: make(map[string]bool)}
}

// String returns the raw value as submitted.
func (f *Form) String(name string) string {
	return f.values.Get(name)
}

// Float parses a finite number.
func (f *Form) Float(name string) float64 {
	return f.float(name, math.NaN())
}

// FloatOr parses a finite number, returning def when the field is empty.
func (f *Form) FloatOr(name string, def float64) float64 {
	return f.float(name, def)
}

func (f *Form) float(name string, def float64) float64 {
	raw := strings.TrimSpace(f.values.Get(name))
	if raw == "" && !math.IsNaN(def) {
		return def
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		f.invalid[name] = true
		return 0
	}
	return n
}

// Int parses an integer from the first non-empty field among names.
// Failures are reported under names[0].
func (f *Form) Int(names ...string) int64 {
	if len(names) == 0 {
		return 0
	}
	var raw string
	for _, name := range names {
		if raw = strings.TrimSpace(f.values.Get(name)); raw != "" {
			break
		}
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		f.invalid[names[0]] = true
		return 0
	}
	return n
}

// Bool treats "true", "on" and "1" as true; anything else is false.
func (f *Form) Bool(name string) bool {
	switch strings.ToLower(strings.TrimSpace(f.values.Get(name))) {
	case "true", "on", "1":
		return true
	}
	return false
}

// Time parses a timestamp or calendar date.
func (f *Form) Time(name string) time.Time {
	raw := strings.TrimSpace(f.values.Get(name))
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	f.invalid[name] = true
	return time.Time{}
}

// AgeGroup accepts either an enum value or one of the display labels.
func (f *Form) AgeGroup(name string) string {
	raw := f.values.Get(name)
	if v, ok := ageGroupLabels[strings.TrimSpace(raw)]; ok {
		return v
	}
	return raw
}

// Invalid reports whether a typed accessor failed for name.
func (f *Form) Invalid(name string) bool {
	return f.invalid[name]
}
