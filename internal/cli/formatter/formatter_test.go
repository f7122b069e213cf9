package formatter

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/surveyforge/internal/contract"
	"github.com/alexanderramin/surveyforge/internal/domain"
	"github.com/alexanderramin/surveyforge/internal/estimator"
	"github.com/alexanderramin/surveyforge/internal/toolkit"
)

func TestFormatEstimate(t *testing.T) {
	dist := estimator.Distribution{Screener: 6, CoreResearch: 30, Demographics: 5, Total: 41}

	out := FormatEstimate(20, 16, dist)

	assert.Contains(t, out, "QUESTION ESTIMATE")
	assert.Contains(t, out, "20 min")
	assert.Contains(t, out, "16")
	assert.Contains(t, out, "SECTION BREAKDOWN")
	assert.Contains(t, out, "30 questions")
	assert.Contains(t, out, "41 questions")
}

func TestFormatGenerateSummary(t *testing.T) {
	req := &domain.SurveyRequest{
		Objective:          "Understand EV purchase drivers",
		InterviewLengthMin: 15,
	}
	res := &contract.GenerateResult{
		Prompt:             "prompt body",
		EstimatedQuestions: 12,
		Distribution:       estimator.Distribution{Screener: 5, CoreResearch: 23, Demographics: 5, Total: 33},
	}

	out := FormatGenerateSummary(req, res, "/tmp/survey_prompt_20260830_120000.txt")

	assert.Contains(t, out, "SURVEY PROMPT GENERATED")
	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "Understand EV purchase drivers")
	assert.Contains(t, out, "15 min")
	assert.Contains(t, out, "5 screener + 23 core + 5 demographics = 33 total")
	assert.Contains(t, out, "survey_prompt_20260830_120000.txt")
}

func TestFormatGenerateSummaryTruncatesObjective(t *testing.T) {
	long := "A very long research objective that keeps going well past the point where a summary row should cut it off"
	req := &domain.SurveyRequest{Objective: long, InterviewLengthMin: 10}
	res := &contract.GenerateResult{}

	out := FormatGenerateSummary(req, res, "out.txt")

	assert.NotContains(t, out, long)
	assert.Contains(t, out, "…")
}

func TestFormatGenerateSummaryTruncatesOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("é", 70)
	req := &domain.SurveyRequest{Objective: long, InterviewLengthMin: 10}
	res := &contract.GenerateResult{}

	out := FormatGenerateSummary(req, res, "out.txt")

	assert.True(t, utf8.ValidString(out))
	assert.Contains(t, out, strings.Repeat("é", 59)+"…")
}

func TestFormatQuestionTypes(t *testing.T) {
	out := FormatQuestionTypes(toolkit.QuestionTypes())

	assert.Contains(t, out, "QUESTION TYPES & SCALES")
	assert.Contains(t, out, "Likert_5_Point")
	assert.Contains(t, out, "Strongly Disagree")
	assert.Contains(t, out, "Regression")
}

func TestFormatGuidelines(t *testing.T) {
	out := FormatGuidelines("Fraud Detection", toolkit.FraudChecks())

	assert.Contains(t, out, "FRAUD DETECTION")
	for _, g := range toolkit.FraudChecks() {
		assert.Contains(t, out, g.Name)
	}
}

func TestFormatMetadata(t *testing.T) {
	out := FormatMetadata(toolkit.Metadata())

	assert.Contains(t, out, "SCREENER QUESTIONS")
	assert.Contains(t, out, "CORE RESEARCH QUESTIONS")
	assert.Contains(t, out, "PURCHASE JOURNEY QUESTIONS")
	assert.Contains(t, out, "age_screening")
	assert.Contains(t, out, "Categorical")
}

func TestRenderBox(t *testing.T) {
	out := RenderBox("Preview", "hello world")

	assert.Contains(t, out, "PREVIEW")
	assert.Contains(t, out, "hello world")
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"short line untouched", "hello world", 40, "hello world"},
		{"wraps on word boundary", "one two three four", 9, "one two\nthree\nfour"},
		{"zero width untouched", "hello world", 0, "hello world"},
		{"empty string", "", 10, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrapText(tt.text, tt.width))
		})
	}
}
