// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validation

import (
	"github.com/danielhkuo/me-tracker/models"
)

const statusMessage = "Status must be one of ON_TRACK, AT_RISK, DELAYED, COMPLETED"
const actualAboveTargetMessage = "Actual value cannot be greater than target value"

var teamMessages = map[string]string{
	"name.required": "Team name is required",
	"name.max":      "Team name must be 100 characters or less",
}

var strategicObjectiveMessages = map[string]string{
	"name.required":                        "Strategic objective name is required",
	"name.max":                             "Name must be 100 characters or less",
	"outcome.required":                     "Outcome is required",
	"kpi.required":                         "KPI is required",
	"targetValue.coerced":                  "Target value must be a number",
	"targetValue.gt":                       "Target value must be a positive number",
	"actualValue.coerced":                  "Actual value must be a number",
	"actualValue.gte":                      "Actual value cannot be negative",
	"actualValue." + tagActualWithinTarget: actualAboveTargetMessage,
	"status.required":                      "Status is required",
	"status.oneof":                         statusMessage,
	"teamId.coerced":                       "Team is required",
	"teamId.gt":                            "Team ID must be a positive integer",
	"lastUpdated.coerced":                  "Last updated must be a valid date",
	"lastUpdated.notfuture":                "Last updated date cannot be in the future",
}

var projectMessages = map[string]string{
	"name.required":                        "Project name is required",
	"name.max":                             "Name must be 100 characters or less",
	"objective.required":                   "Objective is required",
	"strategicObjective.coerced":           "Strategic objective is required",
	"strategicObjective.gt":                "Strategic objective ID must be a positive integer",
	"outcome.required":                     "Outcome is required",
	"activity.required":                    "Activity is required",
	"kpi.required":                         "KPI is required",
	"targetValue.coerced":                  "Target value must be a number",
	"targetValue.gt":                       "Target value must be a positive number",
	"actualValue.coerced":                  "Actual value must be a number",
	"actualValue.gte":                      "Actual value cannot be negative",
	"actualValue." + tagActualWithinTarget: actualAboveTargetMessage,
	"status.required":                      "Status is required",
	"status.oneof":                         statusMessage,
	"responsibleTeam.coerced":              "Responsible team is required",
	"responsibleTeam.gt":                   "Responsible team ID must be a positive integer",
	"timeline.required":                    "Timeline is required",
	"lastUpdated.coerced":                  "Last updated must be a valid date",
	"lastUpdated.notfuture":                "Last updated date cannot be in the future",
}

var livelihoodMessages = map[string]string{
	"projectId.coerced":             "Project ID must be a positive integer",
	"projectId.gt":                  "Project ID must be a positive integer",
	"participantName.required":      "Participant name is required",
	"location.required":             "Location is required",
	"disaggregatedSex.required":     "Sex is required",
	"disaggregatedSex.oneof":        "Sex must be one of MALE, FEMALE, OTHER",
	"ageGroup.required":             "Age group is required",
	"ageGroup.oneof":                "Age group is not a recognised bracket",
	"grantAmountReceived.coerced":   "Grant amount must be a number",
	"grantAmountReceived.gt":        "Grant amount must be positive",
	"purpose.required":              "Grant purpose is required",
	"progress1.required":            "Progress 1 is required",
	"progress2.required":            "Progress 2 is required",
	"outcome.required":              "Outcome is required",
	"subsequentGrantAmount.coerced": "Subsequent grant amount must be a number",
	"subsequentGrantAmount.gte":     "Subsequent grant amount must be non-negative",
}

var workshopMessages = map[string]string{
	"projectId.coerced":                   "Project ID must be a positive integer",
	"projectId.gt":                        "Project ID must be a positive integer",
	"numParticipants.coerced":             "Number of participants must be a whole number",
	"numParticipants.gte":                 "Number of participants must be non-negative",
	"disaggregatedSex.required":           "Sex is required",
	"disaggregatedSex.oneof":              "Sex must be one of MALE, FEMALE, OTHER",
	"ageGroup.required":                   "Age group is required",
	"ageGroup.oneof":                      "Age group is not a recognised bracket",
	"preEvaluation.required":              "Pre-evaluation is required",
	"postEvaluation.required":             "Post-evaluation is required",
	"localPartner.required":               "Local partner is required",
	"localPartnerResponsibility.required": "Local partner responsibility is required",
	"successOfPartnership.required":       "Success of partnership is required",
	"challenges.required":                 "Challenges are required",
	"strengths.required":                  "Strengths are required",
	"outcomes.required":                   "Outcomes are required",
	"recommendations.required":            "Recommendations are required",
}

// Team validates a team submission.
func (v *Validator) Team(f *Form) (models.TeamInput, error) {
	in := models.TeamInput{
		Name: f.String("name"),
	}
	if err := v.check(f, in, teamMessages); err != nil {
		return models.TeamInput{}, err
	}
	return in, nil
}

// StrategicObjective validates a strategic objective submission. The team
// may be posted as teamId or, from older forms, as responsibleTeam.
func (v *Validator) StrategicObjective(f *Form) (models.StrategicObjectiveInput, error) {
	in := models.StrategicObjectiveInput{
		Name:        f.String("name"),
		Outcome:     f.String("outcome"),
		KPI:         f.String("kpi"),
		TargetValue: f.Float("targetValue"),
		ActualValue: f.Float("actualValue"),
		Status:      f.String("status"),
		TeamID:      f.Int("teamId", "responsibleTeam"),
		LastUpdated: f.Time("lastUpdated"),
	}
	if err := v.check(f, in, strategicObjectiveMessages); err != nil {
		return models.StrategicObjectiveInput{}, err
	}
	return in, nil
}

// Project validates a project submission.
func (v *Validator) Project(f *Form) (models.ProjectInput, error) {
	in := models.ProjectInput{
		Name:                 f.String("name"),
		Objective:            f.String("objective"),
		StrategicObjectiveID: f.Int("strategicObjective"),
		Outcome:              f.String("outcome"),
		Activity:             f.String("activity"),
		KPI:                  f.String("kpi"),
		TargetValue:          f.Float("targetValue"),
		ActualValue:          f.Float("actualValue"),
		Status:               f.String("status"),
		ResponsibleTeamID:    f.Int("responsibleTeam"),
		Timeline:             f.String("timeline"),
		LastUpdated:          f.Time("lastUpdated"),
	}
	if err := v.check(f, in, projectMessages); err != nil {
		return models.ProjectInput{}, err
	}
	return in, nil
}

// Livelihood validates a livelihood grant submission. An empty
// subsequentGrantAmount means no follow-up grant.
func (v *Validator) Livelihood(f *Form) (models.LivelihoodInput, error) {
	in := models.LivelihoodInput{
		ProjectID:             f.Int("projectId"),
		ParticipantName:       f.String("participantName"),
		Location:              f.String("location"),
		DisaggregatedSex:      f.String("disaggregatedSex"),
		Disability:            f.Bool("disability"),
		AgeGroup:              f.AgeGroup("ageGroup"),
		GrantAmountReceived:   f.Float("grantAmountReceived"),
		Purpose:               f.String("purpose"),
		Progress1:             f.String("progress1"),
		Progress2:             f.String("progress2"),
		Outcome:               f.String("outcome"),
		SubsequentGrantAmount: f.FloatOr("subsequentGrantAmount", 0),
	}
	if err := v.check(f, in, livelihoodMessages); err != nil {
		return models.LivelihoodInput{}, err
	}
	return in, nil
}

// Workshop validates a workshop submission.
func (v *Validator) Workshop(f *Form) (models.WorkshopInput, error) {
	in := models.WorkshopInput{
		ProjectID:                  f.Int("projectId"),
		NumParticipants:            f.Int("numParticipants"),
		DisaggregatedSex:           f.String("disaggregatedSex"),
		Disability:                 f.Bool("disability"),
		AgeGroup:                   f.AgeGroup("ageGroup"),
		PreEvaluation:              f.String("preEvaluation"),
		PostEvaluation:             f.String("postEvaluation"),
		LocalPartner:               f.String("localPartner"),
		LocalPartnerResponsibility: f.String("localPartnerResponsibility"),
		SuccessOfPartnership:       f.String("successOfPartnership"),
		Challenges:                 f.String("challenges"),
		Strengths:                  f.String("strengths"),
		Outcomes:                   f.String("outcomes"),
		Recommendations:            f.String("recommendations"),
	}
	if err := v.check(f, in, workshopMessages); err != nil {
		return models.WorkshopInput{}, err
	}
	return in, nil
}
