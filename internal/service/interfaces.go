package service

import (
	"context"

	"github.com/alexanderramin/surveyforge/internal/contract"
	"github.com/alexanderramin/surveyforge/internal/domain"
	"github.com/alexanderramin/surveyforge/internal/estimator"
)

type GenerateService interface {
	Generate(ctx context.Context, req contract.GenerateRequest) (*contract.GenerateResult, error)
}

type ExportService interface {
	// ExportPrompt writes prompt text to the output directory under the
	// suggested name and returns the path written.
	ExportPrompt(ctx context.Context, name, content string) (string, error)

	// ExportWorkbook parses questionnaire text and writes the structured
	// analysis workbook to path.
	ExportWorkbook(ctx context.Context, path string, req *domain.SurveyRequest, questionnaireText string) error

	// ExportDocument writes the questionnaire as a Word document to path.
	ExportDocument(ctx context.Context, path string, req *domain.SurveyRequest, dist estimator.Distribution, questionnaireText string) error
}
