package prompt

import (
	"testing"

	"github.com/alexanderramin/surveyforge/internal/domain"
	"github.com/alexanderramin/surveyforge/internal/estimator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleDetailed_GuidanceBlocks(t *testing.T) {
	req := fullRequest()
	dist, err := estimator.EstimateDistribution(req.InterviewLengthMin)
	require.NoError(t, err)

	out, err := AssembleDetailed(req, 16, dist)
	require.NoError(t, err)

	// All specification sections are still present.
	for _, label := range SectionLabels {
		assert.Contains(t, out, label+": ")
	}

	assert.Contains(t, out, "=== COMPREHENSIVE BRAND LIST TO USE ===")
	assert.Contains(t, out, "=== QUESTION COUNT REQUIREMENTS ===")
	assert.Contains(t, out, "Screener Questions: 6 questions")
	assert.Contains(t, out, "Core Research Questions: 30 questions")
	assert.Contains(t, out, "Total Questions: 41 questions")
	assert.Contains(t, out, "=== MANDATORY SCALE DESCRIPTIONS ===")
	assert.Contains(t, out, "1=Strongly Disagree")
	assert.Contains(t, out, "SCREENER QUESTIONS METADATA:")
	assert.Contains(t, out, "\"age_screening\"")
	assert.Contains(t, out, "=== FRAUD DETECTION REQUIREMENTS ===")
	assert.Contains(t, out, "straight_lining")
}

func TestAssembleDetailed_BrandListFromObjective(t *testing.T) {
	req := fullRequest() // automotive objective, India market
	dist, err := estimator.EstimateDistribution(req.InterviewLengthMin)
	require.NoError(t, err)

	out, err := AssembleDetailed(req, 16, dist)
	require.NoError(t, err)
	assert.Contains(t, out, "Maruti Suzuki")
}

func TestAssembleDetailed_FallbackBrands(t *testing.T) {
	req := fullRequest()
	req.Objective = "Streaming service churn drivers"
	req.TargetAudience = "Subscribers aged 18-34"
	req.Market = "Germany"

	dist, err := estimator.EstimateDistribution(req.InterviewLengthMin)
	require.NoError(t, err)

	out, err := AssembleDetailed(req, 16, dist)
	require.NoError(t, err)
	assert.Contains(t, out, "Brand A, Brand B")
}

func TestAssembleDetailed_Idempotent(t *testing.T) {
	req := fullRequest()
	dist, err := estimator.EstimateDistribution(req.InterviewLengthMin)
	require.NoError(t, err)

	a, err := AssembleDetailed(req, 16, dist)
	require.NoError(t, err)
	b, err := AssembleDetailed(req, 16, dist)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestAssembleDetailed_InvalidInput(t *testing.T) {
	req := fullRequest()
	req.InterviewLengthMin = 0

	out, err := AssembleDetailed(req, 16, estimator.Distribution{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, out)
}
