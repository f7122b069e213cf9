package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/surveyforge/internal/domain"
	"github.com/alexanderramin/surveyforge/internal/estimator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportPrompt(t *testing.T) {
	dir := t.TempDir()
	svc := NewExportService(dir)

	path, err := svc.ExportPrompt(context.Background(), "prompt.txt", "generated prompt text")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "prompt.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "generated prompt text", string(data))
}

func TestExportWorkbook_ParsesQuestionnaire(t *testing.T) {
	dir := t.TempDir()
	svc := NewExportService(dir)
	req := &domain.SurveyRequest{PopulationSize: 500, InterviewLengthMin: 15}

	text := "Q1: What is your age group?\n- 18-24\n- 25-34\nQ2: Rate the brand\nStatistical Methods: Driver Analysis\n"
	path := filepath.Join(dir, "analysis.xlsx")
	require.NoError(t, svc.ExportWorkbook(context.Background(), path, req, text))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	q2, err := f.GetCellValue("Questions_Analysis", "A3")
	require.NoError(t, err)
	assert.Equal(t, "Q2", q2)
}

func TestExportDocument(t *testing.T) {
	dir := t.TempDir()
	svc := NewExportService(dir)
	req := &domain.SurveyRequest{Objective: "Brand tracking", PopulationSize: 500, InterviewLengthMin: 15}
	dist := estimator.Distribution{Screener: 5, CoreResearch: 23, Demographics: 5, Total: 33}

	path := filepath.Join(dir, "questionnaire.docx")
	require.NoError(t, svc.ExportDocument(context.Background(), path, req, dist, "Q1: Which brands do you know?\n"))

	assert.FileExists(t, path)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
