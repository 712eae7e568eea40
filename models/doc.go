// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines input, domain, and response types for the M&E tracker.

# Input Types

Typed records produced by the validation package from submitted forms.
Struct tags carry the form field name (form) and the rule set (validate):

  - TeamInput: name
  - StrategicObjectiveInput: name, outcome, kpi, targetValue, actualValue,
    status, teamId, lastUpdated
  - ProjectInput: name, objective, strategicObjective, outcome, activity,
    kpi, targetValue, actualValue, status, responsibleTeam, timeline,
    lastUpdated
  - LivelihoodInput: projectId, participantName, location, disaggregatedSex,
    disability, ageGroup, grantAmountReceived, purpose, progress1, progress2,
    outcome, subsequentGrantAmount
  - WorkshopInput: projectId, numParticipants, disaggregation fields and the
    partnership evaluation text fields

# Domain Types

Records as loaded from the store, with joined references:

  - Staff: authenticated user (password hash never serialized)
  - Team
  - StrategicObjective (ResponsibleTeam joined)
  - Project (StrategicObjective and ResponsibleTeam joined)
  - Livelihood (Project joined)
  - Workshop (Project joined)

ProgressPercentage is derived on read with ProgressPercentage(actual, target)
and is never stored.

# Constants

Roles:

	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"

Status values:

	StatusOnTrack   = "ON_TRACK"
	StatusAtRisk    = "AT_RISK"
	StatusDelayed   = "DELAYED"
	StatusCompleted = "COMPLETED"

Disaggregation:

	SexMale, SexFemale, SexOther
	AgeGroup18To29 ... AgeGroup65AndUp
*/
package models
