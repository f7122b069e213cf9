package export

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/surveyforge/internal/domain"
	"github.com/alexanderramin/surveyforge/internal/questionnaire"
	"github.com/alexanderramin/surveyforge/internal/toolkit"
	"github.com/xuri/excelize/v2"
)

// Workbook sheet names, in the order they appear in the file.
var sheetOrder = []string{
	"Survey_Details",
	"Questions_Analysis",
	"Survey_Question_Metadata",
	"Survey_Toolkit",
	"Fraud_Guidelines",
	"Termination_Criteria",
	"LOI_Guidelines",
}

// WriteWorkbook writes the structured analysis workbook: the survey
// parameters, the parsed question breakdown, and the toolkit reference
// tables, one sheet each.
func WriteWorkbook(path string, req *domain.SurveyRequest, questions []questionnaire.Question) error {
	f := excelize.NewFile()
	defer f.Close()

	sheets := map[string][][]any{
		"Survey_Details":           detailRows(req),
		"Questions_Analysis":       questionRows(questions),
		"Survey_Question_Metadata": metadataRows(),
		"Survey_Toolkit":           toolkitRows(),
		"Fraud_Guidelines":         guidelineRows(toolkit.FraudChecks()),
		"Termination_Criteria":     guidelineRows(toolkit.TerminationCriteria()),
		"LOI_Guidelines":           guidelineRows(toolkit.LOIGuidelines()),
	}

	for _, name := range sheetOrder {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("creating sheet %s: %w", name, err)
		}
		for i, row := range sheets[name] {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				return err
			}
			row := row
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				return fmt.Errorf("writing sheet %s row %d: %w", name, i+1, err)
			}
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}

func detailRows(req *domain.SurveyRequest) [][]any {
	return [][]any{
		{"Field", "Value"},
		{"Request_ID", req.ID},
		{"Objective", req.Objective},
		{"Target_Audience", req.TargetAudience},
		{"Population_Size", req.PopulationSize},
		{"Interview_Length_Minutes", req.InterviewLengthMin},
		{"Methodology", req.Methodology},
		{"Device_Context", req.DeviceContext},
		{"Tone", req.Tone},
		{"Analysis_Methods", strings.Join(req.AnalysisMethods, " | ")},
		{"Allowed_Question_Types", strings.Join(req.AllowedQuestionTypes, " | ")},
		{"Compliance_Requirements", strings.Join(req.ComplianceRequirements, " | ")},
		{"Market", req.Market},
	}
}

func questionRows(questions []questionnaire.Question) [][]any {
	rows := [][]any{{
		"Question_Number", "Question_Text", "Response_Options",
		"Statistical_Methods", "Fraud_Check", "Skip_Logic",
		"Scale_Description", "Purpose", "Data_Type", "Validation_Rule",
		"Required_For_Analysis", "Quality_Checks", "Estimated_Time",
		"Termination_Logic",
	}}
	for _, q := range questions {
		rows = append(rows, []any{
			q.Number, q.Text, strings.Join(q.ResponseOptions, "\n"),
			q.StatisticalMethods, q.FraudCheck, q.SkipLogic,
			q.ScaleDescription, q.Purpose, q.DataType, q.ValidationRule,
			q.RequiredForAnalysis, q.QualityChecks, q.EstimatedTime,
			q.TerminationLogic,
		})
	}
	return rows
}

func metadataRows() [][]any {
	rows := [][]any{{
		"Question_Category", "Question_Type", "Purpose", "Data_Type",
		"Validation_Rule", "Termination_Logic", "Statistical_Applications",
		"Required_For_Analysis", "Quality_Checks", "Estimated_Time_Seconds",
		"Mobile_Optimization", "Accessibility_Notes",
	}}
	for _, m := range toolkit.Metadata() {
		rows = append(rows, []any{
			m.Category, m.Key, m.Purpose, m.DataType,
			m.ValidationRule, m.TerminationLogic,
			strings.Join(m.StatisticalApplications, " | "),
			strings.Join(m.RequiredForAnalysis, " | "),
			strings.Join(m.QualityChecks, " | "),
			m.EstimatedSeconds, m.MobileOptimization, m.AccessibilityNotes,
		})
	}
	return rows
}

func toolkitRows() [][]any {
	rows := [][]any{{"Question_Type", "Scale_Options", "Analysis_Methods"}}
	for _, qt := range toolkit.QuestionTypes() {
		rows = append(rows, []any{
			qt.Name,
			strings.Join(qt.Scale, " | "),
			strings.Join(qt.Analysis, " | "),
		})
	}
	return rows
}

func guidelineRows(guidelines []toolkit.Guideline) [][]any {
	rows := [][]any{{"Name", "Rule"}}
	for _, g := range guidelines {
		rows = append(rows, []any{g.Name, g.Rule})
	}
	return rows
}
