package questionnaire

import "strings"

// Question is one parsed questionnaire entry with whatever metadata lines
// the generated text carried for it.
type Question struct {
	Number string
	Text   string

	StatisticalMethods  string
	FraudCheck          string
	SkipLogic           string
	Purpose             string
	DataType            string
	ValidationRule      string
	RequiredForAnalysis string
	QualityChecks       string
	EstimatedTime       string
	TerminationLogic    string
	ScaleDescription    string

	ResponseOptions []string
}

// scaleMarkers identify full scale-description lines by their first label.
var scaleMarkers = []string{"Strongly Disagree", "Very Poor", "Not at all"}

// Parse extracts per-question records from generated questionnaire text.
// A question starts at a line like "Q3: ..." and collects metadata lines
// until the next question begins. Unrecognized lines are ignored.
func Parse(text string) []Question {
	var questions []Question
	var current *Question

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		line = strings.TrimPrefix(line, "→")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if isQuestionLine(line) && strings.Contains(line, ":") {
			if current != nil {
				questions = append(questions, *current)
			}
			number, qText, _ := strings.Cut(line, ":")
			current = &Question{
				Number: strings.TrimSpace(number),
				Text:   strings.TrimSpace(qText),
			}
			continue
		}
		if current == nil {
			continue
		}

		switch {
		case strings.Contains(line, "Statistical Methods"):
			current.StatisticalMethods = trimField(line, "Statistical Methods:")
		case strings.Contains(line, "Fraud Detection"):
			current.FraudCheck = trimField(line, "Fraud Detection:")
		case strings.Contains(line, "Skip Logic"):
			current.SkipLogic = trimField(line, "Skip Logic:")
		case strings.Contains(line, "Purpose:"):
			current.Purpose = trimField(line, "Purpose:")
		case strings.Contains(line, "Data Type:"):
			current.DataType = trimField(line, "Data Type:")
		case strings.Contains(line, "Validation Rule:"):
			current.ValidationRule = trimField(line, "Validation Rule:")
		case strings.Contains(line, "Required For Analysis:"):
			current.RequiredForAnalysis = trimField(line, "Required For Analysis:")
		case strings.Contains(line, "Quality Checks:"):
			current.QualityChecks = trimField(line, "Quality Checks:")
		case strings.Contains(line, "Estimated Time:"):
			current.EstimatedTime = trimField(line, "Estimated Time:")
		case strings.Contains(line, "Termination Logic:"):
			current.TerminationLogic = trimField(line, "Termination Logic:")
		case hasScaleMarker(line):
			current.ScaleDescription = line
		case strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•"):
			current.ResponseOptions = append(current.ResponseOptions, line)
		}
	}

	if current != nil {
		questions = append(questions, *current)
	}
	return questions
}

// trimField strips the field prefix and surrounding brackets from a
// metadata line, tolerating the "[Purpose: ...]" form the prompt requests.
func trimField(line, prefix string) string {
	s := strings.Trim(line, "[]")
	if idx := strings.Index(s, prefix); idx >= 0 {
		s = s[idx+len(prefix):]
	}
	return strings.TrimSpace(s)
}

func hasScaleMarker(line string) bool {
	for _, marker := range scaleMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}
