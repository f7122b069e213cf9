package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/surveyforge/internal/toolkit"
)

// FormatQuestionTypes renders the question type families with their scales
// and analysis methods.
func FormatQuestionTypes(types []toolkit.QuestionType) string {
	var b strings.Builder
	b.WriteString(Header("Question Types & Scales"))
	b.WriteString("\n\n")
	for _, qt := range types {
		b.WriteString(Bold(qt.Name))
		b.WriteString("\n")
		b.WriteString(LabeledRow("Scale", strings.Join(qt.Scale, " | ")))
		b.WriteString("\n")
		b.WriteString(LabeledRow("Analysis", strings.Join(qt.Analysis, ", ")))
		b.WriteString("\n\n")
	}
	return b.String()
}

// FormatGuidelines renders a named guideline table under a section header.
func FormatGuidelines(title string, guidelines []toolkit.Guideline) string {
	var b strings.Builder
	b.WriteString(Header(title))
	b.WriteString("\n\n")
	for _, g := range guidelines {
		b.WriteString(LabeledRow(g.Name, g.Rule))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatMetadata renders question metadata entries grouped by category.
func FormatMetadata(entries []toolkit.QuestionMetadata) string {
	var b strings.Builder
	var lastCategory string
	for _, m := range entries {
		if m.Category != lastCategory {
			if lastCategory != "" {
				b.WriteString("\n")
			}
			b.WriteString(Header(m.Category + " Questions"))
			b.WriteString("\n\n")
			lastCategory = m.Category
		}
		b.WriteString(Bold(m.Key))
		b.WriteString("\n")
		b.WriteString(LabeledRow("Purpose", m.Purpose))
		b.WriteString("\n")
		b.WriteString(LabeledRow("Data Type", m.DataType))
		b.WriteString("\n")
		b.WriteString(LabeledRow("Validation", m.ValidationRule))
		b.WriteString("\n")
		b.WriteString(LabeledRow("Termination", m.TerminationLogic))
		b.WriteString("\n")
		b.WriteString(LabeledRow("Statistics", strings.Join(m.StatisticalApplications, ", ")))
		b.WriteString("\n")
		b.WriteString(LabeledRow("Quality Checks", strings.Join(m.QualityChecks, ", ")))
		b.WriteString("\n")
		b.WriteString(LabeledRow("Estimated Time", fmt.Sprintf("%ds", m.EstimatedSeconds)))
		b.WriteString("\n\n")
	}
	return b.String()
}
