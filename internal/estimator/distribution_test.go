package estimator

import (
	"testing"

	"github.com/alexanderramin/surveyforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateDistribution_TwentyMinutes(t *testing.T) {
	// screener = round(20*0.3) = 6, core = round(20*1.5) = 30,
	// demographics = round(20*0.25) = 5
	d, err := EstimateDistribution(20)
	require.NoError(t, err)
	assert.Equal(t, 6, d.Screener)
	assert.Equal(t, 30, d.CoreResearch)
	assert.Equal(t, 5, d.Demographics)
	assert.Equal(t, 41, d.Total)
}

func TestEstimateDistribution_ShortInterviewFloors(t *testing.T) {
	// Five-minute interview: screener and demographics hit their minimums.
	d, err := EstimateDistribution(5)
	require.NoError(t, err)
	assert.Equal(t, 5, d.Screener)
	assert.Equal(t, 5, d.Demographics)
	assert.Equal(t, 8, d.CoreResearch) // round(5*1.5)
	assert.Equal(t, d.Screener+d.CoreResearch+d.Demographics, d.Total)
}

func TestEstimateDistribution_Invalid(t *testing.T) {
	_, err := EstimateDistribution(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEstimateDistributionWithPolicy_ZeroPolicyFallsBack(t *testing.T) {
	want, err := EstimateDistribution(20)
	require.NoError(t, err)

	got, err := EstimateDistributionWithPolicy(20, DistributionPolicy{})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEstimateDistributionWithPolicy_CustomMultipliers(t *testing.T) {
	policy := DistributionPolicy{
		ScreenerPerMinute:     0.5,
		CorePerMinute:         2,
		DemographicsPerMinute: 0.5,
		MinScreener:           1,
		MinDemographics:       1,
	}
	d, err := EstimateDistributionWithPolicy(10, policy)
	require.NoError(t, err)
	assert.Equal(t, 5, d.Screener)
	assert.Equal(t, 20, d.CoreResearch)
	assert.Equal(t, 5, d.Demographics)
	assert.Equal(t, 30, d.Total)
}
