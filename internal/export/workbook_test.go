package export

import (
	"path/filepath"
	"testing"

	"github.com/alexanderramin/surveyforge/internal/domain"
	"github.com/alexanderramin/surveyforge/internal/questionnaire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteWorkbook_AllSheets(t *testing.T) {
	req := &domain.SurveyRequest{
		ID:                 "test-id",
		Objective:          "EV purchase intent",
		PopulationSize:     1000,
		InterviewLengthMin: 20,
		AnalysisMethods:    []string{"Regression", "MaxDiff"},
	}
	questions := []questionnaire.Question{
		{Number: "Q1", Text: "What is your age group?", ResponseOptions: []string{"- 18-24", "- 25-34"}},
		{Number: "Q2", Text: "Rate the brand", StatisticalMethods: "Driver Analysis"},
	}

	path := filepath.Join(t.TempDir(), "analysis.xlsx")
	require.NoError(t, WriteWorkbook(path, req, questions))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, sheetOrder, f.GetSheetList())

	objective, err := f.GetCellValue("Survey_Details", "B3")
	require.NoError(t, err)
	assert.Equal(t, "EV purchase intent", objective)

	q1, err := f.GetCellValue("Questions_Analysis", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Q1", q1)

	category, err := f.GetCellValue("Survey_Question_Metadata", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Screener", category)
}

func TestWriteWorkbook_NoQuestions(t *testing.T) {
	req := &domain.SurveyRequest{PopulationSize: 1, InterviewLengthMin: 1}
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, WriteWorkbook(path, req, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Questions_Analysis", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Question_Number", header)
}
