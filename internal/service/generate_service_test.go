package service

import (
	"context"
	"strings"
	"testing"

	"github.com/alexanderramin/surveyforge/internal/config"
	"github.com/alexanderramin/surveyforge/internal/contract"
	"github.com/alexanderramin/surveyforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordObserver captures generate events for assertions.
type recordObserver struct {
	events []GenerateEvent
}

func (o *recordObserver) OnGenerate(e GenerateEvent) {
	o.events = append(o.events, e)
}

func testSurvey() domain.SurveyRequest {
	return domain.SurveyRequest{
		Objective:          "Understand electric vehicle purchase intentions",
		TargetAudience:     "Urban car buyers aged 25-45",
		PopulationSize:     1000,
		InterviewLengthMin: 20,
		Methodology:        "Online",
		Market:             "India",
	}
}

func TestGenerate_Basic(t *testing.T) {
	svc := NewGenerateService(config.Default(), nil)

	res, err := svc.Generate(context.Background(), contract.GenerateRequest{Survey: testSurvey()})
	require.NoError(t, err)

	assert.Equal(t, 16, res.EstimatedQuestions) // round(20 * 0.8)
	assert.Equal(t, 41, res.Distribution.Total)
	assert.Contains(t, res.Prompt, "Interview Length: 20 minutes (approx. 16 questions)")
	assert.True(t, strings.HasPrefix(res.SuggestedFilename, "survey_prompt_"))
	assert.True(t, strings.HasSuffix(res.SuggestedFilename, ".txt"))
	// Base prompt carries no toolkit guidance.
	assert.NotContains(t, res.Prompt, "FRAUD DETECTION")
}

func TestGenerate_Detailed(t *testing.T) {
	svc := NewGenerateService(config.Default(), nil)

	res, err := svc.Generate(context.Background(), contract.GenerateRequest{Survey: testSurvey(), Detailed: true})
	require.NoError(t, err)
	assert.Contains(t, res.Prompt, "=== FRAUD DETECTION REQUIREMENTS ===")
	assert.Contains(t, res.Prompt, "Screener Questions: 6 questions")
}

func TestGenerate_ConfiguredRate(t *testing.T) {
	cfg := config.Default()
	cfg.Estimator.QuestionsPerMinute = 1.0

	svc := NewGenerateService(cfg, nil)
	res, err := svc.Generate(context.Background(), contract.GenerateRequest{Survey: testSurvey()})
	require.NoError(t, err)
	assert.Equal(t, 20, res.EstimatedQuestions)
}

func TestGenerate_InvalidInput(t *testing.T) {
	obs := &recordObserver{}
	svc := NewGenerateService(config.Default(), obs)

	survey := testSurvey()
	survey.PopulationSize = 0

	res, err := svc.Generate(context.Background(), contract.GenerateRequest{Survey: survey})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, res)

	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
	assert.NotEmpty(t, obs.events[0].ErrorMsg)
}

func TestGenerate_ObserverReceivesEvent(t *testing.T) {
	obs := &recordObserver{}
	svc := NewGenerateService(config.Default(), obs)

	_, err := svc.Generate(context.Background(), contract.GenerateRequest{Survey: testSurvey(), Detailed: true})
	require.NoError(t, err)

	require.Len(t, obs.events, 1)
	e := obs.events[0]
	assert.True(t, e.Success)
	assert.True(t, e.Detailed)
	assert.Equal(t, 20, e.LOIMinutes)
	assert.Equal(t, 16, e.EstimatedQuestions)
	assert.NotEmpty(t, e.RequestID)
}

func TestGenerate_AssignsRequestID(t *testing.T) {
	svc := NewGenerateService(config.Default(), nil)

	// Two runs of the same survey get distinct IDs but identical prompts:
	// the ID never leaks into the assembled text.
	a, err := svc.Generate(context.Background(), contract.GenerateRequest{Survey: testSurvey()})
	require.NoError(t, err)
	b, err := svc.Generate(context.Background(), contract.GenerateRequest{Survey: testSurvey()})
	require.NoError(t, err)
	assert.Equal(t, a.Prompt, b.Prompt)
}
