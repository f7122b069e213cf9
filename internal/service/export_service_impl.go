package service

import (
	"context"

	"github.com/alexanderramin/surveyforge/internal/domain"
	"github.com/alexanderramin/surveyforge/internal/estimator"
	"github.com/alexanderramin/surveyforge/internal/export"
	"github.com/alexanderramin/surveyforge/internal/questionnaire"
)

type exportService struct {
	outputDir string
}

// NewExportService creates an ExportService writing under outputDir.
func NewExportService(outputDir string) ExportService {
	return &exportService{outputDir: outputDir}
}

func (s *exportService) ExportPrompt(ctx context.Context, name, content string) (string, error) {
	return export.WriteText(s.outputDir, name, content)
}

func (s *exportService) ExportWorkbook(ctx context.Context, path string, req *domain.SurveyRequest, questionnaireText string) error {
	questions := questionnaire.Parse(questionnaireText)
	return export.WriteWorkbook(path, req, questions)
}

func (s *exportService) ExportDocument(ctx context.Context, path string, req *domain.SurveyRequest, dist estimator.Distribution, questionnaireText string) error {
	return export.WriteDocument(path, req, dist, questionnaireText)
}
