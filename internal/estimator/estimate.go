package estimator

import (
	"fmt"
	"math"

	"github.com/alexanderramin/surveyforge/internal/domain"
)

// DefaultQuestionsPerMinute is the rate used to estimate question count from
// interview length: roughly one question per 1-1.5 minutes of interview time.
// It is a policy constant, overridable via configuration.
const DefaultQuestionsPerMinute = 0.8

// Estimate maps a requested interview length in minutes to an estimated
// number of survey questions using the default rate. The result is rounded
// to the nearest whole number and never drops below 1.
func Estimate(loiMinutes int) (int, error) {
	return EstimateWithRate(loiMinutes, DefaultQuestionsPerMinute)
}

// EstimateWithRate is Estimate with an explicit questions-per-minute rate.
// A non-positive rate falls back to the default. A non-positive interview
// length is rejected with domain.ErrInvalidInput.
func EstimateWithRate(loiMinutes int, perMinute float64) (int, error) {
	if loiMinutes <= 0 {
		return 0, fmt.Errorf("%w: interview length must be a positive number of minutes (got %d)", domain.ErrInvalidInput, loiMinutes)
	}
	if perMinute <= 0 {
		perMinute = DefaultQuestionsPerMinute
	}

	n := int(math.Round(float64(loiMinutes) * perMinute))
	if n < 1 {
		n = 1
	}
	return n, nil
}
