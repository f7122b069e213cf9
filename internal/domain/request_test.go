package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() *SurveyRequest {
	return &SurveyRequest{
		Objective:          "Understand EV purchase intent",
		TargetAudience:     "Urban car buyers aged 25-45",
		PopulationSize:     1000,
		InterviewLengthMin: 20,
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, validRequest().Validate())
}

func TestValidate_ZeroPopulation(t *testing.T) {
	r := validRequest()
	r.PopulationSize = 0
	err := r.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidate_NegativeInterviewLength(t *testing.T) {
	r := validRequest()
	r.InterviewLengthMin = -5
	err := r.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidate_EmptyOptionalFieldsAccepted(t *testing.T) {
	// Only population size and interview length carry constraints.
	r := &SurveyRequest{PopulationSize: 1, InterviewLengthMin: 1}
	assert.NoError(t, r.Validate())
}

func TestDisplayID(t *testing.T) {
	r := &SurveyRequest{ID: "0c7a9b84-8a34-4cf3-9d2e-000000000000"}
	assert.Equal(t, "0c7a9b84", r.DisplayID())

	short := &SurveyRequest{ID: "abc"}
	assert.Equal(t, "abc", short.DisplayID())
}
