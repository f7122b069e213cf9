package estimator

import (
	"fmt"
	"math"

	"github.com/alexanderramin/surveyforge/internal/domain"
)

// DistributionPolicy holds the per-section multipliers applied to interview
// length when splitting the questionnaire into sections. Core research runs
// at 1.5 questions per minute; screener and demographics get a fixed share
// with a floor so short interviews still screen properly.
type DistributionPolicy struct {
	ScreenerPerMinute     float64
	CorePerMinute         float64
	DemographicsPerMinute float64
	MinScreener           int
	MinDemographics       int
}

// DefaultDistributionPolicy returns the standard section multipliers.
func DefaultDistributionPolicy() DistributionPolicy {
	return DistributionPolicy{
		ScreenerPerMinute:     0.3,
		CorePerMinute:         1.5,
		DemographicsPerMinute: 0.25,
		MinScreener:           5,
		MinDemographics:       5,
	}
}

// Distribution is the per-section question count breakdown for a survey.
type Distribution struct {
	Screener     int
	CoreResearch int
	Demographics int
	Total        int
}

// EstimateDistribution computes the section breakdown for the given
// interview length using the default policy.
func EstimateDistribution(loiMinutes int) (Distribution, error) {
	return EstimateDistributionWithPolicy(loiMinutes, DefaultDistributionPolicy())
}

// EstimateDistributionWithPolicy computes the section breakdown using an
// explicit policy. Non-positive policy values fall back to the defaults.
func EstimateDistributionWithPolicy(loiMinutes int, policy DistributionPolicy) (Distribution, error) {
	if loiMinutes <= 0 {
		return Distribution{}, fmt.Errorf("%w: interview length must be a positive number of minutes (got %d)", domain.ErrInvalidInput, loiMinutes)
	}

	def := DefaultDistributionPolicy()
	if policy.ScreenerPerMinute <= 0 {
		policy.ScreenerPerMinute = def.ScreenerPerMinute
	}
	if policy.CorePerMinute <= 0 {
		policy.CorePerMinute = def.CorePerMinute
	}
	if policy.DemographicsPerMinute <= 0 {
		policy.DemographicsPerMinute = def.DemographicsPerMinute
	}
	if policy.MinScreener <= 0 {
		policy.MinScreener = def.MinScreener
	}
	if policy.MinDemographics <= 0 {
		policy.MinDemographics = def.MinDemographics
	}

	loi := float64(loiMinutes)
	d := Distribution{
		Screener:     int(math.Round(loi * policy.ScreenerPerMinute)),
		CoreResearch: int(math.Round(loi * policy.CorePerMinute)),
		Demographics: int(math.Round(loi * policy.DemographicsPerMinute)),
	}
	if d.Screener < policy.MinScreener {
		d.Screener = policy.MinScreener
	}
	if d.CoreResearch < 1 {
		d.CoreResearch = 1
	}
	if d.Demographics < policy.MinDemographics {
		d.Demographics = policy.MinDemographics
	}
	d.Total = d.Screener + d.CoreResearch + d.Demographics
	return d, nil
}
