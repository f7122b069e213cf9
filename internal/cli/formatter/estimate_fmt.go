package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/surveyforge/internal/estimator"
)

// FormatEstimate renders the question-count estimate and section breakdown
// for a given interview length.
func FormatEstimate(loiMinutes, estimated int, dist estimator.Distribution) string {
	var b strings.Builder

	b.WriteString(Header("Question Estimate"))
	b.WriteString("\n\n")
	b.WriteString(LabeledRow("Interview Length", fmt.Sprintf("%d min", loiMinutes)))
	b.WriteString("\n")
	b.WriteString(LabeledRow("Estimated Questions", StyleGreen.Render(fmt.Sprintf("%d", estimated))))
	b.WriteString("\n\n")

	b.WriteString(Header("Section Breakdown"))
	b.WriteString("\n\n")
	b.WriteString(LabeledRow("Screener", fmt.Sprintf("%d questions", dist.Screener)))
	b.WriteString("\n")
	b.WriteString(LabeledRow("Core Research", fmt.Sprintf("%d questions", dist.CoreResearch)))
	b.WriteString("\n")
	b.WriteString(LabeledRow("Demographics", fmt.Sprintf("%d questions", dist.Demographics)))
	b.WriteString("\n")
	b.WriteString(LabeledRow("Total", StyleBold.Render(fmt.Sprintf("%d questions", dist.Total))))
	b.WriteString("\n")

	return b.String()
}
