// Package questionnaire formats and parses the questionnaire text returned
// by the external AI tool. surveyforge never calls that tool itself; the
// user pastes the prompt out and the questionnaire back in.
package questionnaire

import "strings"

var logicKeywords = []string{
	"Statistical Methods:",
	"Fraud Detection:",
	"Skip Logic:",
	"Termination:",
}

// Format restructures raw questionnaire text for readability: section
// banners, dashed separators before each question, arrow-prefixed logic
// lines, and indented response options.
func Format(text string) string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			out = append(out, "")
			continue
		}

		switch {
		case strings.Contains(strings.ToUpper(trimmed), "SECTION") || strings.HasPrefix(trimmed, "==="):
			out = append(out, "", strings.Repeat("=", 80), strings.ToUpper(trimmed), strings.Repeat("=", 80), "")
		case isQuestionLine(trimmed):
			out = append(out, "", strings.Repeat("-", 50), trimmed)
		case hasLogicKeyword(trimmed):
			out = append(out, "    → "+trimmed)
		case strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "•"):
			out = append(out, "    "+trimmed)
		default:
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// isQuestionLine reports whether the line opens a numbered question
// ("Q12: ..." or "Q12. ...").
func isQuestionLine(line string) bool {
	if !strings.HasPrefix(line, "Q") || len(line) < 2 {
		return false
	}
	if line[1] < '0' || line[1] > '9' {
		return false
	}
	return strings.ContainsAny(line, ":.")
}

func hasLogicKeyword(line string) bool {
	for _, kw := range logicKeywords {
		if strings.Contains(line, kw) {
			return true
		}
	}
	return false
}
