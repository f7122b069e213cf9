package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexanderramin/surveyforge/internal/domain"
	"github.com/alexanderramin/surveyforge/internal/estimator"
	"github.com/alexanderramin/surveyforge/internal/toolkit"
)

// AssembleDetailed produces the full professional prompt: the base
// specification sections plus brand list, question-count requirements per
// section, mandatory scale descriptions, question metadata, survey structure,
// skip-logic, and fraud-detection guidance. All guidance blocks are fixed and
// always present; only textual substitution varies.
func AssembleDetailed(req *domain.SurveyRequest, estimatedQuestions int, dist estimator.Distribution) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	category := toolkit.DetectCategory(req.Objective, req.TargetAudience)
	brands := toolkit.BrandList(category, req.Market)

	var b strings.Builder
	b.WriteString("You are an expert survey methodologist and statistician. ")
	b.WriteString("Create a comprehensive, professional survey questionnaire that meets the highest ")
	b.WriteString("industry standards and incorporates detailed question metadata.\n\n")

	writeSpecifications(&b, req, estimatedQuestions)
	b.WriteString("\n")

	b.WriteString("=== COMPREHENSIVE BRAND LIST TO USE ===\n")
	b.WriteString(strings.Join(brands, ", "))
	b.WriteString("\n\n")

	b.WriteString("=== QUESTION COUNT REQUIREMENTS ===\n")
	fmt.Fprintf(&b, "- Screener Questions: %d questions\n", dist.Screener)
	fmt.Fprintf(&b, "- Core Research Questions: %d questions (MANDATORY - 1.5x interview length)\n", dist.CoreResearch)
	fmt.Fprintf(&b, "- Demographics: %d questions\n", dist.Demographics)
	fmt.Fprintf(&b, "- Total Questions: %d questions\n\n", dist.Total)

	b.WriteString("=== MANDATORY SCALE DESCRIPTIONS ===\n")
	b.WriteString("For ALL rating questions, provide the complete 5-point scale with ALL options:\n\n")
	for _, qt := range toolkit.QuestionTypes() {
		var scale []string
		for i, label := range qt.Scale {
			scale = append(scale, fmt.Sprintf("%d=%s", i+1, label))
		}
		fmt.Fprintf(&b, "%s: %s\n", qt.Name, strings.Join(scale, ", "))
	}
	b.WriteString("\n")

	b.WriteString("=== SURVEY QUESTION METADATA INTEGRATION ===\n")
	b.WriteString("Each question must include metadata based on these professional standards:\n\n")
	writeMetadataBlock(&b, "SCREENER QUESTIONS METADATA", toolkit.CategoryScreener)
	writeMetadataBlock(&b, "CORE RESEARCH QUESTIONS METADATA", toolkit.CategoryCoreResearch)
	writeMetadataBlock(&b, "PURCHASE JOURNEY QUESTIONS METADATA", toolkit.CategoryPurchaseJourney)

	b.WriteString("=== ENHANCED QUESTION FORMAT WITH METADATA ===\n")
	b.WriteString(questionFormatGuidance)
	b.WriteString("\n")

	b.WriteString("=== SURVEY STRUCTURE REQUIREMENTS ===\n")
	fmt.Fprintf(&b, structureGuidance, dist.Screener, dist.CoreResearch, dist.Demographics)
	b.WriteString("\n")

	b.WriteString("=== INTELLIGENT SURVEY LOGIC ===\n")
	b.WriteString(skipLogicGuidance)
	b.WriteString("\n")

	b.WriteString("=== FRAUD DETECTION REQUIREMENTS ===\n")
	for i, check := range toolkit.FraudChecks() {
		fmt.Fprintf(&b, "%d. %s: %s\n", i+1, check.Name, check.Rule)
	}
	b.WriteString("\n")

	b.WriteString("Generate a complete, professional questionnaire where EVERY question includes ")
	b.WriteString("comprehensive metadata as specified above.\n")

	return b.String(), nil
}

// writeMetadataBlock renders one metadata category as indented JSON.
// encoding/json keeps struct field order, so output stays deterministic.
func writeMetadataBlock(b *strings.Builder, title, category string) {
	b.WriteString(title)
	b.WriteString(":\n")
	data, err := json.MarshalIndent(toolkit.MetadataByCategory(category), "", "  ")
	if err != nil {
		// Static data marshals without error; keep structure if it ever fails.
		b.WriteString("[]")
	} else {
		b.Write(data)
	}
	b.WriteString("\n\n")
}

const questionFormatGuidance = `QUESTION FORMAT:
Q[Number]. [Question Text]
[Complete response options with "Others (specify)" where applicable]

QUESTION METADATA:
[Purpose: Explain the research objective of this question]
[Data Type: Specify the data type and measurement level]
[Validation Rule: Define data validation requirements]
[Statistical Methods: List specific methods applicable to this question]
[Required For Analysis: Specify which analyses need this data]
[Quality Checks: Define fraud detection and validation checks]
[Estimated Time: Time in seconds for completion]
[Skip Logic: Specify routing and conditions]
[Termination Logic: Specify conditions that end survey (for screener questions)]
`

const structureGuidance = `SECTION 1: SCREENER & TERMINATION CRITERIA (%d questions)
Include comprehensive screening with metadata for age, income, geography,
category usage, and attention/quality checks.

SECTION 2: CORE RESEARCH (%d questions)
Must include brand awareness (unaided and aided), usage and ownership
patterns, attribute importance ratings, brand association matrices, purchase
consideration, and satisfaction ratings, each with full metadata.

SECTION 3: PURCHASE JOURNEY (included in core research count)
Include information sources, decision-making process, influencer mapping,
purchase factors, and budget/price sensitivity with metadata.

SECTION 4: DEMOGRAPHICS (%d questions)
Include age, gender, income, geographic location, and household composition
with validation metadata.
`

const skipLogicGuidance = `Build comprehensive skip logic with metadata tracking:
- If respondent does not own the category product, skip ownership details (Route: Q[X] to Q[Y])
- If not considering purchase, skip purchase journey (Route: Q[X] to Q[Z])
- If unaware of brands, skip brand-specific questions (Route: Q[X] to Q[A])
- Route based on demographics and usage patterns with validation
`
