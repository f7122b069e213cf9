// Package toolkit carries the built-in survey-design reference data:
// question type scales, per-question metadata, fraud-detection and
// termination guidelines, and timing rules. The data is static; the
// external reference spreadsheet it mirrors is maintained by hand.
package toolkit

// QuestionType describes a rating question family: its full 5-point scale
// labels and the analysis methods it supports.
type QuestionType struct {
	Name     string
	Scale    []string
	Analysis []string
}

// QuestionTypes returns the canonical question type families in fixed order.
func QuestionTypes() []QuestionType {
	return []QuestionType{
		{
			Name:     "Likert_5_Point",
			Scale:    []string{"Strongly Disagree", "Disagree", "Neither Agree nor Disagree", "Agree", "Strongly Agree"},
			Analysis: []string{"Descriptive Statistics", "Factor Analysis", "Regression Analysis", "Correlation Analysis"},
		},
		{
			Name:     "Rating_5_Point",
			Scale:    []string{"Very Poor", "Poor", "Fair", "Good", "Excellent"},
			Analysis: []string{"Descriptive Statistics", "Gap Analysis", "Driver Analysis", "Satisfaction Modeling"},
		},
		{
			Name:     "Importance_5_Point",
			Scale:    []string{"Not at all Important", "Slightly Important", "Moderately Important", "Very Important", "Extremely Important"},
			Analysis: []string{"Importance-Performance Analysis", "Driver Analysis", "MaxDiff Analysis", "Key Driver Analysis"},
		},
		{
			Name:     "Likelihood_5_Point",
			Scale:    []string{"Very Unlikely", "Unlikely", "Neither Likely nor Unlikely", "Likely", "Very Likely"},
			Analysis: []string{"Purchase Intent Modeling", "Predictive Analytics", "Logistic Regression", "Conversion Analysis"},
		},
		{
			Name:     "Association_5_Point",
			Scale:    []string{"Not at all Associated", "Slightly Associated", "Moderately Associated", "Strongly Associated", "Extremely Associated"},
			Analysis: []string{"Brand Mapping", "Correspondence Analysis", "Perceptual Mapping", "Brand Equity Analysis"},
		},
		{
			Name:     "Frequency_5_Point",
			Scale:    []string{"Never", "Rarely", "Sometimes", "Often", "Always"},
			Analysis: []string{"Usage & Attitude Analysis", "Behavioral Segmentation", "Frequency Distribution", "Usage Patterns"},
		},
	}
}

// Guideline is a named rule used in the fraud, termination, and timing
// reference tables.
type Guideline struct {
	Name string
	Rule string
}

// FraudChecks returns the fraud-detection guidelines in fixed order.
func FraudChecks() []Guideline {
	return []Guideline{
		{Name: "attention_check", Rule: "Please select 'Agree' for this question to confirm you are reading carefully."},
		{Name: "time_validation", Rule: "Minimum time per question: 3-5 seconds, Maximum: 120 seconds"},
		{Name: "straight_lining", Rule: "Flag responses with same rating across 5+ consecutive questions"},
		{Name: "open_end_quality", Rule: "Check for meaningful responses, minimum 10 characters for detailed questions"},
		{Name: "geographic_validation", Rule: "Validate IP location matches declared location"},
		{Name: "duplicate_detection", Rule: "Check for duplicate responses using device fingerprinting"},
	}
}

// TerminationCriteria returns the screening termination rules in fixed order.
func TerminationCriteria() []Guideline {
	return []Guideline{
		{Name: "age_out", Rule: "Respondents outside target age range"},
		{Name: "income_screening", Rule: "Below minimum income threshold for target segment"},
		{Name: "geographic_screening", Rule: "Outside specified geographic boundaries"},
		{Name: "category_usage", Rule: "Non-users of category if users-only study"},
		{Name: "quota_full", Rule: "Target demographic quota reached"},
		{Name: "quality_screening", Rule: "Failed fraud/attention checks"},
	}
}

// LOIGuidelines returns the per-question timing rules used to sanity-check
// interview length against question mix.
func LOIGuidelines() []Guideline {
	return []Guideline{
		{Name: "simple_questions", Rule: "15-20 seconds each"},
		{Name: "matrix_questions", Rule: "45-90 seconds each"},
		{Name: "ranking_questions", Rule: "60-120 seconds each"},
		{Name: "open_ended", Rule: "90-180 seconds each"},
		{Name: "demographics", Rule: "10-15 seconds each"},
	}
}
