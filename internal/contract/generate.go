// Package contract defines the request/response shapes crossing the service
// boundary.
package contract

import (
	"github.com/alexanderramin/surveyforge/internal/domain"
	"github.com/alexanderramin/surveyforge/internal/estimator"
)

// GenerateRequest carries one survey request through the generation
// pipeline. Detailed selects the full professional prompt with toolkit
// guidance over the base specification prompt.
type GenerateRequest struct {
	Survey   domain.SurveyRequest
	Detailed bool
}

// GenerateResult is the outcome of a generation run.
type GenerateResult struct {
	Prompt             string
	EstimatedQuestions int
	Distribution       estimator.Distribution
	SuggestedFilename  string
}
