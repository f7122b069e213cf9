package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/surveyforge/internal/contract"
	"github.com/alexanderramin/surveyforge/internal/domain"
)

// FormatGenerateSummary renders the post-generation summary: what was
// estimated and where the prompt file landed.
func FormatGenerateSummary(req *domain.SurveyRequest, res *contract.GenerateResult, path string) string {
	var rows strings.Builder
	rows.WriteString(LabeledRow("Objective", truncate(req.Objective, 60)))
	rows.WriteString("\n")
	rows.WriteString(LabeledRow("Interview Length", fmt.Sprintf("%d min", req.InterviewLengthMin)))
	rows.WriteString("\n")
	rows.WriteString(LabeledRow("Estimated Questions", StyleGreen.Render(fmt.Sprintf("%d", res.EstimatedQuestions))))
	rows.WriteString("\n")
	rows.WriteString(LabeledRow("Section Split", fmt.Sprintf("%d screener + %d core + %d demographics = %d total",
		res.Distribution.Screener, res.Distribution.CoreResearch, res.Distribution.Demographics, res.Distribution.Total)))
	rows.WriteString("\n")
	rows.WriteString(LabeledRow("Prompt Size", fmt.Sprintf("%d characters", len(res.Prompt))))
	rows.WriteString("\n")
	rows.WriteString(LabeledRow("Written To", StyleBlue.Render(path)))

	var b strings.Builder
	b.WriteString(RenderBox("Survey Prompt Generated", rows.String()))
	b.WriteString("\n")
	b.WriteString(Dim(wrapText("Paste the prompt into your AI tool of choice to generate the questionnaire.", 72)))
	b.WriteString("\n")

	return b.String()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
