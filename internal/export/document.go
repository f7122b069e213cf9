package export

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fumiama/go-docx"

	"github.com/alexanderramin/surveyforge/internal/domain"
	"github.com/alexanderramin/surveyforge/internal/estimator"
)

// DocumentFilename returns the timestamped download name for the Word
// questionnaire document.
func DocumentFilename(now time.Time) string {
	return fmt.Sprintf("survey_questionnaire_%s.docx", now.Format(filenameStamp))
}

// WriteDocument writes the questionnaire as a Word document: the survey
// specification table, the question distribution summary, and the full
// questionnaire body.
func WriteDocument(path string, req *domain.SurveyRequest, dist estimator.Distribution, questionnaireText string) error {
	w := docx.New().WithDefaultTheme()

	w.AddParagraph().AddText("Professional Survey Questionnaire").Bold()
	w.AddParagraph()

	w.AddParagraph().AddText("Survey Specifications").Bold()
	rows := detailRows(req)
	tbl := w.AddTable(len(rows), 2, 8000, nil)
	for i, row := range rows {
		for j, v := range row {
			tbl.TableRows[i].TableCells[j].AddParagraph().AddText(fmt.Sprintf("%v", v))
		}
	}
	w.AddParagraph()

	if dist.Total > 0 {
		w.AddParagraph().AddText("Question Distribution").Bold()
		w.AddParagraph().AddText(fmt.Sprintf("• Screener Questions: %d", dist.Screener))
		w.AddParagraph().AddText(fmt.Sprintf("• Core Research Questions: %d", dist.CoreResearch))
		w.AddParagraph().AddText(fmt.Sprintf("• Demographics Questions: %d", dist.Demographics))
		w.AddParagraph().AddText(fmt.Sprintf("• Total Questions: %d", dist.Total))
		w.AddParagraph()
	}

	w.AddParagraph().AddText("Complete Questionnaire").Bold()
	for _, line := range strings.Split(questionnaireText, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			w.AddParagraph()
			continue
		}
		w.AddParagraph().AddText(trimmed)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating document %s: %w", path, err)
	}
	defer f.Close()
	if _, err := w.WriteTo(f); err != nil {
		return fmt.Errorf("saving document %s: %w", path, err)
	}
	return nil
}
