package domain

import (
	"fmt"
	"time"
)

// SurveyRequest is the flat record of all user-supplied survey-design
// parameters for a single generation run. It is created per invocation
// and discarded once the prompt text has been produced.
type SurveyRequest struct {
	ID string

	Objective          string
	TargetAudience     string
	PopulationSize     int
	InterviewLengthMin int

	Methodology   string
	DeviceContext string
	Tone          string

	AnalysisMethods        []string
	AllowedQuestionTypes   []string
	ComplianceRequirements []string

	Market string

	CreatedAt time.Time
}

// Validate applies the basic presence and type constraints: population size
// and interview length must be positive integers. All other fields accept
// arbitrary text, including empty; empty optional fields are substituted
// with a placeholder at render time rather than rejected.
func (r *SurveyRequest) Validate() error {
	if r.PopulationSize <= 0 {
		return fmt.Errorf("%w: population size must be a positive integer (got %d)", ErrInvalidInput, r.PopulationSize)
	}
	if r.InterviewLengthMin <= 0 {
		return fmt.Errorf("%w: interview length must be a positive number of minutes (got %d)", ErrInvalidInput, r.InterviewLengthMin)
	}
	return nil
}

// DisplayID returns a short identifier suitable for filenames and logs.
func (r *SurveyRequest) DisplayID() string {
	if len(r.ID) >= 8 {
		return r.ID[:8]
	}
	return r.ID
}
