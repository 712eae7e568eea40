package models

import "time"

// Staff roles
const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
)

// Progress status values shared by strategic objectives and projects
const (
	StatusOnTrack   = "ON_TRACK"
	StatusAtRisk    = "AT_RISK"
	StatusDelayed   = "DELAYED"
	StatusCompleted = "COMPLETED"
)

// Disaggregation values
const (
	SexMale   = "MALE"
	SexFemale = "FEMALE"
	SexOther  = "OTHER"
)

// Age buckets
const (
	AgeGroup18To29  = "GROUP_18_29"
	AgeGroup30To44  = "GROUP_30_44"
	AgeGroup45To54  = "GROUP_45_54"
	AgeGroup55To64  = "GROUP_55_64"
	AgeGroup65AndUp = "GROUP_65_PLUS"
)

// Input types. Values are filled by the validation.Form accessors; the form
// tag names the field in validation errors and validate holds the rules.

type TeamInput struct {
	Name string `json:"name" form:"name" validate:"required,max=100"`
}

type StrategicObjectiveInput struct {
	Name        string    `json:"name" form:"name" validate:"required,max=100"`
	Outcome     string    `json:"outcome" form:"outcome" validate:"required"`
	KPI         string    `json:"kpi" form:"kpi" validate:"required"`
	TargetValue float64   `json:"targetValue" form:"targetValue" validate:"coerced,gt=0"`
	ActualValue float64   `json:"actualValue" form:"actualValue" validate:"coerced,gte=0"`
	Status      string    `json:"status" form:"status" validate:"required,oneof=ON_TRACK AT_RISK DELAYED COMPLETED"`
	TeamID      int64     `json:"teamId" form:"teamId" validate:"coerced,gt=0"`
	LastUpdated time.Time `json:"lastUpdated" form:"lastUpdated" validate:"coerced,notfuture"`
}

type ProjectInput struct {
	Name                 string    `json:"name" form:"name" validate:"required,max=100"`
	Objective            string    `json:"objective" form:"objective" validate:"required"`
	StrategicObjectiveID int64     `json:"strategicObjective" form:"strategicObjective" validate:"coerced,gt=0"`
	Outcome              string    `json:"outcome" form:"outcome" validate:"required"`
	Activity             string    `json:"activity" form:"activity" validate:"required"`
	KPI                  string    `json:"kpi" form:"kpi" validate:"required"`
	TargetValue          float64   `json:"targetValue" form:"targetValue" validate:"coerced,gt=0"`
	ActualValue          float64   `json:"actualValue" form:"actualValue" validate:"coerced,gte=0"`
	Status               string    `json:"status" form:"status" validate:"required,oneof=ON_TRACK AT_RISK DELAYED COMPLETED"`
	ResponsibleTeamID    int64     `json:"responsibleTeam" form:"responsibleTeam" validate:"coerced,gt=0"`
	Timeline             string    `json:"timeline" form:"timeline" validate:"required"`
	LastUpdated          time.Time `json:"lastUpdated" form:"lastUpdated" validate:"coerced,notfuture"`
}

type LivelihoodInput struct {
	ProjectID             int64   `json:"projectId" form:"projectId" validate:"coerced,gt=0"`
	ParticipantName       string  `json:"participantName" form:"participantName" validate:"required"`
	Location              string  `json:"location" form:"location" validate:"required"`
	DisaggregatedSex      string  `json:"disaggregatedSex" form:"disaggregatedSex" validate:"required,oneof=MALE FEMALE OTHER"`
	Disability            bool    `json:"disability" form:"disability"`
	AgeGroup              string  `json:"ageGroup" form:"ageGroup" validate:"required,oneof=GROUP_18_29 GROUP_30_44 GROUP_45_54 GROUP_55_64 GROUP_65_PLUS"`
	GrantAmountReceived   float64 `json:"grantAmountReceived" form:"grantAmountReceived" validate:"coerced,gt=0"`
	Purpose               string  `json:"purpose" form:"purpose" validate:"required"`
	Progress1             string  `json:"progress1" form:"progress1" validate:"required"`
	Progress2             string  `json:"progress2" form:"progress2" validate:"required"`
	Outcome               string  `json:"outcome" form:"outcome" validate:"required"`
	SubsequentGrantAmount float64 `json:"subsequentGrantAmount" form:"subsequentGrantAmount" validate:"coerced,gte=0"`
}

type WorkshopInput struct {
	ProjectID                  int64  `json:"projectId" form:"projectId" validate:"coerced,gt=0"`
	NumParticipants            int64  `json:"numParticipants" form:"numParticipants" validate:"coerced,gte=0"`
	DisaggregatedSex           string `json:"disaggregatedSex" form:"disaggregatedSex" validate:"required,oneof=MALE FEMALE OTHER"`
	Disability                 bool   `json:"disability" form:"disability"`
	AgeGroup                   string `json:"ageGroup" form:"ageGroup" validate:"required,oneof=GROUP_18_29 GROUP_30_44 GROUP_45_54 GROUP_55_64 GROUP_65_PLUS"`
	PreEvaluation              string `json:"preEvaluation" form:"preEvaluation" validate:"required"`
	PostEvaluation             string `json:"postEvaluation" form:"postEvaluation" validate:"required"`
	LocalPartner               string `json:"localPartner" form:"localPartner" validate:"required"`
	LocalPartnerResponsibility string `json:"localPartnerResponsibility" form:"localPartnerResponsibility" validate:"required"`
	SuccessOfPartnership       string `json:"successOfPartnership" form:"successOfPartnership" validate:"required"`
	Challenges                 string `json:"challenges" form:"challenges" validate:"required"`
	Strengths                  string `json:"strengths" form:"strengths" validate:"required"`
	Outcomes                   string `json:"outcomes" form:"outcomes" validate:"required"`
	Recommendations            string `json:"recommendations" form:"recommendations" validate:"required"`
}

// Domain types

type Staff struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // Never expose in JSON
	Role         string `json:"role"`
}

type Team struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type StrategicObjective struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Outcome            string    `json:"outcome"`
	KPI                string    `json:"kpi"`
	TargetValue        float64   `json:"targetValue"`
	ActualValue        float64   `json:"actualValue"`
	ProgressPercentage float64   `json:"progressPercentage"`
	Status             string    `json:"status"`
	TeamID             int64     `json:"teamId"`
	ResponsibleTeam    *Team     `json:"responsibleTeam"`
	LastUpdated        time.Time `json:"lastUpdated"`
}

type StrategicObjectiveRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Project struct {
	ID                   int64                  `json:"id"`
	Name                 string                 `json:"name"`
	Objective            string                 `json:"objective"`
	StrategicObjectiveID int64                  `json:"strategicObjectiveId"`
	StrategicObjective   *StrategicObjectiveRef `json:"strategicObjective"`
	Outcome              string                 `json:"outcome"`
	Activity             string                 `json:"activity"`
	KPI                  string                 `json:"kpi"`
	TargetValue          float64                `json:"targetValue"`
	ActualValue          float64                `json:"actualValue"`
	ProgressPercentage   float64                `json:"progressPercentage"`
	Status               string                 `json:"status"`
	ResponsibleTeamID    int64                  `json:"responsibleTeamId"`
	ResponsibleTeam      *Team                  `json:"responsibleTeam"`
	Timeline             string                 `json:"timeline"`
	LastUpdated          time.Time              `json:"lastUpdated"`
}

type ProjectRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Livelihood struct {
	ID                    int64       `json:"id"`
	ProjectID             int64       `json:"projectId"`
	Project               *ProjectRef `json:"project"`
	ParticipantName       string      `json:"participantName"`
	Location              string      `json:"location"`
	DisaggregatedSex      string      `json:"disaggregatedSex"`
	Disability            bool        `json:"disability"`
	AgeGroup              string      `json:"ageGroup"`
	GrantAmountReceived   float64     `json:"grantAmountReceived"`
	GrantAmountDisplay    string      `json:"grantAmountDisplay"`
	Purpose               string      `json:"purpose"`
	Progress1             string      `json:"progress1"`
	Progress2             string      `json:"progress2"`
	Outcome               string      `json:"outcome"`
	SubsequentGrantAmount float64     `json:"subsequentGrantAmount"`
}

type Workshop struct {
	ID                         int64       `json:"id"`
	ProjectID                  int64       `json:"projectId"`
	Project                    *ProjectRef `json:"project"`
	NumParticipants            int64       `json:"numParticipants"`
	DisaggregatedSex           string      `json:"disaggregatedSex"`
	Disability                 bool        `json:"disability"`
	AgeGroup                   string      `json:"ageGroup"`
	PreEvaluation              string      `json:"preEvaluation"`
	PostEvaluation             string      `json:"postEvaluation"`
	LocalPartner               string      `json:"localPartner"`
	LocalPartnerResponsibility string      `json:"localPartnerResponsibility"`
	SuccessOfPartnership       string      `json:"successOfPartnership"`
	Challenges                 string      `json:"challenges"`
	Strengths                  string      `json:"strengths"`
	Outcomes                   string      `json:"outcomes"`
	Recommendations            string      `json:"recommendations"`
}

// ProgressPercentage derives actual/target*100. Zero targets yield 0.
// Computed on read only; never persisted.
func ProgressPercentage(actual, target float64) float64 {
	if target == 0 {
		return 0
	}
	return actual / target * 100
}

// Response types

type TeamListResponse struct {
	Teams []Team `json:"teams"`
	User  *Staff `json:"user"`
}

type StrategyListResponse struct {
	StrategicObjectives []StrategicObjective `json:"strategicObjectives"`
	Teams               []Team               `json:"teams"`
	User                *Staff               `json:"user"`
}

type ProjectListResponse struct {
	Projects            []Project            `json:"projects"`
	StrategicObjectives []StrategicObjective `json:"strategicObjectives"`
	Teams               []Team               `json:"teams"`
	User                *Staff               `json:"user"`
}

type LivelihoodListResponse struct {
	Livelihoods []Livelihood `json:"livelihoods"`
	Projects    []Project    `json:"projects"`
	User        *Staff       `json:"user"`
}

type WorkshopListResponse struct {
	Workshops []Workshop `json:"workshops"`
	Projects  []Project  `json:"projects"`
	User      *Staff     `json:"user"`
}

type HomeResponse struct {
	User *Staff `json:"user"`
}

type LoginPageResponse struct {
	RedirectTo string `json:"redirectTo"`
}

// Error responses

type ErrorResponse struct {
	Error string `json:"error"`
}

// FieldError addresses a single validation failure to its form field.
type FieldError struct {
	Path    []string `json:"path"`
	Message string   `json:"message"`
}

type ValidationErrorResponse struct {
	Errors      []FieldError        `json:"errors"`
	FieldErrors map[string][]string `json:"fieldErrors"`
}
