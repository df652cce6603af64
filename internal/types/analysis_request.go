package types

import (
	"github.com/go-playground/validator/v10"
)

// Supported salary currencies
const (
	CurrencyINR = "INR"
	CurrencyUSD = "USD"
)

// AnalysisRequest is the input to a gap analysis run.
// Every field except UserSkills entries' names is optional; the analyzer has defaults for all of them.
type AnalysisRequest struct {
	RoleName        string      `json:"roleName"`
	UserSkills      []UserSkill `json:"userSkills" validate:"dive"`
	ExperienceLevel string      `json:"experienceLevel,omitempty"`
	TargetSalary    string      `json:"targetSalary,omitempty"`
	SalaryCurrency  string      `json:"salaryCurrency,omitempty" validate:"omitempty,oneof=INR USD"`

	// CandidateID keys saved analyses; Save asks the API to persist the result.
	CandidateID string `json:"candidateId,omitempty" validate:"omitempty,max=255"`
	Save        bool   `json:"save,omitempty"`
}

// Validate validates the AnalysisRequest using the validator.
func (r *AnalysisRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
