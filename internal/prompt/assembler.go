// Package prompt assembles survey-design parameters into the text prompt
// handed to an external AI questionnaire generator. Assembly is a pure
// transformation: identical input always yields byte-identical output.
package prompt

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/surveyforge/internal/domain"
)

// NotSpecified is rendered in place of empty optional fields so the section
// structure stays stable regardless of what the user filled in.
const NotSpecified = "Not specified"

// SectionLabels is the fixed set of labeled sections, in the fixed order
// they appear in every assembled prompt.
var SectionLabels = []string{
	"Objective",
	"Target Audience",
	"Population Size",
	"Interview Length",
	"Methodology",
	"Device Context",
	"Tone",
	"Analysis Methods",
	"Allowed Question Types",
	"Compliance Requirements",
	"Market",
}

// Assemble produces the base prompt: a short role preamble followed by the
// eleven labeled specification sections. Validation errors surface before
// any output is generated.
func Assemble(req *domain.SurveyRequest, estimatedQuestions int) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("You are an expert survey methodologist and statistician. ")
	b.WriteString("Create a professional survey questionnaire that meets the specifications below.\n\n")
	writeSpecifications(&b, req, estimatedQuestions)
	return b.String(), nil
}

// writeSpecifications renders the fixed specification block shared by the
// base and detailed prompts.
func writeSpecifications(b *strings.Builder, req *domain.SurveyRequest, estimatedQuestions int) {
	b.WriteString("=== SURVEY SPECIFICATIONS ===\n")
	writeSection(b, "Objective", orPlaceholder(req.Objective))
	writeSection(b, "Target Audience", orPlaceholder(req.TargetAudience))
	writeSection(b, "Population Size", groupDigits(req.PopulationSize))
	writeSection(b, "Interview Length",
		fmt.Sprintf("%d minutes (approx. %d questions)", req.InterviewLengthMin, estimatedQuestions))
	writeSection(b, "Methodology", orPlaceholder(req.Methodology))
	writeSection(b, "Device Context", orPlaceholder(req.DeviceContext))
	writeSection(b, "Tone", orPlaceholder(req.Tone))
	writeSection(b, "Analysis Methods", joinOrPlaceholder(req.AnalysisMethods))
	writeSection(b, "Allowed Question Types", joinOrPlaceholder(req.AllowedQuestionTypes))
	writeSection(b, "Compliance Requirements", joinOrPlaceholder(req.ComplianceRequirements))
	writeSection(b, "Market", orPlaceholder(req.Market))
}

func writeSection(b *strings.Builder, label, value string) {
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\n")
}

// orPlaceholder substitutes the placeholder for empty or whitespace-only text.
func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return NotSpecified
	}
	return s
}

// joinOrPlaceholder renders a label set verbatim, comma-joined, skipping
// blank entries; an effectively empty set gets the placeholder.
func joinOrPlaceholder(items []string) string {
	var kept []string
	for _, it := range items {
		if strings.TrimSpace(it) != "" {
			kept = append(kept, it)
		}
	}
	if len(kept) == 0 {
		return NotSpecified
	}
	return strings.Join(kept, ", ")
}

// groupDigits formats a positive integer with thousands separators.
func groupDigits(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, ",")
}
