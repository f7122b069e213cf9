package toolkit

// Question categories used in metadata and the workbook export.
const (
	CategoryScreener        = "Screener"
	CategoryCoreResearch    = "Core Research"
	CategoryPurchaseJourney = "Purchase Journey"
)

// QuestionMetadata describes the professional standard a generated question
// of a given type must meet: its research purpose, data typing, validation,
// routing, and quality checks.
type QuestionMetadata struct {
	Key      string `json:"key"`
	Category string `json:"category"`

	Purpose          string `json:"purpose"`
	DataType         string `json:"data_type"`
	ValidationRule   string `json:"validation_rule"`
	TerminationLogic string `json:"termination_logic"`

	StatisticalApplications []string `json:"statistical_applications"`
	RequiredForAnalysis     []string `json:"required_for_analysis"`
	QualityChecks           []string `json:"quality_checks"`

	EstimatedSeconds   int    `json:"estimated_time_seconds"`
	MobileOptimization string `json:"mobile_optimization"`
	AccessibilityNotes string `json:"accessibility_notes"`
}

// Metadata returns all question metadata entries grouped by category:
// screener first, then core research, then purchase journey.
func Metadata() []QuestionMetadata {
	return []QuestionMetadata{
		{
			Key:                     "age_screening",
			Category:                CategoryScreener,
			Purpose:                 "Validate target demographic age range",
			DataType:                "Categorical",
			ValidationRule:          "Must be within specified age range for target audience",
			TerminationLogic:        "Terminate if outside 18-65 or specific target range",
			StatisticalApplications: []string{"Demographic Profiling", "Cross-tabulation Base", "Quota Management"},
			RequiredForAnalysis:     []string{"All demographic analyses", "Age-based segmentation"},
			QualityChecks:           []string{"Range validation", "Logical consistency"},
			EstimatedSeconds:        10,
			MobileOptimization:      "Dropdown with age ranges",
			AccessibilityNotes:      "Screen reader compatible",
		},
		{
			Key:                     "income_screening",
			Category:                CategoryScreener,
			Purpose:                 "Qualify respondents based on income level for target segment",
			DataType:                "Categorical_Ordinal",
			ValidationRule:          "Must meet minimum income threshold",
			TerminationLogic:        "Terminate if below specified income level",
			StatisticalApplications: []string{"Income-based Segmentation", "Purchasing Power Analysis", "Price Sensitivity Modeling"},
			RequiredForAnalysis:     []string{"Economic demographic profiling", "Price elasticity studies"},
			QualityChecks:           []string{"Income range validation", "Consistency with lifestyle indicators"},
			EstimatedSeconds:        15,
			MobileOptimization:      "Clear income ranges with local currency",
			AccessibilityNotes:      "High contrast for readability",
		},
		{
			Key:                     "geographic_screening",
			Category:                CategoryScreener,
			Purpose:                 "Ensure respondents are from target geographic area",
			DataType:                "Categorical",
			ValidationRule:          "Must match specified geographic criteria",
			TerminationLogic:        "Terminate if outside target geography",
			StatisticalApplications: []string{"Geographic Analysis", "Regional Comparisons", "Location-based Insights"},
			RequiredForAnalysis:     []string{"Regional market analysis", "Geographic segmentation"},
			QualityChecks:           []string{"GPS validation", "IP address verification", "Postal code validation"},
			EstimatedSeconds:        12,
			MobileOptimization:      "Auto-detect location with manual override",
			AccessibilityNotes:      "Location services permission handling",
		},
		{
			Key:                     "brand_awareness_unaided",
			Category:                CategoryCoreResearch,
			Purpose:                 "Measure spontaneous brand recall without prompting",
			DataType:                "Text_Multiple_Response",
			ValidationRule:          "Minimum 1 character, maximum 200 characters per brand",
			TerminationLogic:        "No termination",
			StatisticalApplications: []string{"Top-of-Mind Awareness Analysis", "Brand Salience Measurement", "Competitive Analysis"},
			RequiredForAnalysis:     []string{"Brand equity studies", "Market share correlation", "Brand health tracking"},
			QualityChecks:           []string{"Text quality validation", "Brand name standardization", "Spelling correction"},
			EstimatedSeconds:        60,
			MobileOptimization:      "Auto-complete with brand suggestions",
			AccessibilityNotes:      "Voice input support",
		},
		{
			Key:                     "brand_awareness_aided",
			Category:                CategoryCoreResearch,
			Purpose:                 "Measure brand recognition when prompted with brand list",
			DataType:                "Multiple_Choice_Multiple_Response",
			ValidationRule:          "At least one brand must be selected or \"None\" option",
			TerminationLogic:        "No termination",
			StatisticalApplications: []string{"Aided Awareness Analysis", "Brand Recognition Tracking", "Competitive Landscape Mapping"},
			RequiredForAnalysis:     []string{"Brand performance benchmarking", "Market penetration analysis"},
			QualityChecks:           []string{"Consistency with unaided awareness", "Logical brand combinations"},
			EstimatedSeconds:        45,
			MobileOptimization:      "Grid layout with brand logos",
			AccessibilityNotes:      "Alt-text for brand logos",
		},
		{
			Key:                     "brand_usage_current",
			Category:                CategoryCoreResearch,
			Purpose:                 "Identify current brand usage patterns and frequency",
			DataType:                "Multiple_Choice_Single_Response",
			ValidationRule:          "Must select one option per brand",
			TerminationLogic:        "Route non-users to different question path",
			StatisticalApplications: []string{"Usage & Attitude Analysis", "Customer Journey Mapping", "Brand Loyalty Assessment"},
			RequiredForAnalysis:     []string{"Current customer profiling", "Usage frequency analysis", "Brand switching behavior"},
			QualityChecks:           []string{"Usage consistency validation", "Frequency logic checks"},
			EstimatedSeconds:        30,
			MobileOptimization:      "Swipe-friendly interface",
			AccessibilityNotes:      "Clear usage frequency labels",
		},
		{
			Key:                     "attribute_importance_ratings",
			Category:                CategoryCoreResearch,
			Purpose:                 "Measure importance of product/service attributes in decision making",
			DataType:                "Rating_Scale_5_Point",
			ValidationRule:          "All attributes must be rated on 1-5 scale",
			TerminationLogic:        "No termination",
			StatisticalApplications: []string{"Importance-Performance Analysis", "Key Driver Analysis", "Factor Analysis", "Conjoint Analysis"},
			RequiredForAnalysis:     []string{"Product development priorities", "Marketing message optimization", "Feature prioritization"},
			QualityChecks:           []string{"Straight-lining detection", "Response time validation", "Logical consistency"},
			EstimatedSeconds:        90,
			MobileOptimization:      "Slider interface with haptic feedback",
			AccessibilityNotes:      "Voice guidance for ratings",
		},
		{
			Key:                     "brand_association_matrix",
			Category:                CategoryCoreResearch,
			Purpose:                 "Measure strength of association between brands and attributes",
			DataType:                "Matrix_5_Point_Scale",
			ValidationRule:          "All brand-attribute combinations must be rated",
			TerminationLogic:        "No termination",
			StatisticalApplications: []string{"Correspondence Analysis", "Perceptual Mapping", "Brand Positioning Analysis", "Competitive Analysis"},
			RequiredForAnalysis:     []string{"Brand positioning studies", "Competitive intelligence", "Brand differentiation"},
			QualityChecks:           []string{"Matrix completion validation", "Attention check integration", "Response pattern analysis"},
			EstimatedSeconds:        120,
			MobileOptimization:      "Scrollable matrix with fixed headers",
			AccessibilityNotes:      "Row and column reading support",
		},
		{
			Key:                     "information_sources",
			Category:                CategoryPurchaseJourney,
			Purpose:                 "Identify key information sources used in purchase research",
			DataType:                "Multiple_Choice_Multiple_Response",
			ValidationRule:          "At least one source must be selected",
			TerminationLogic:        "No termination",
			StatisticalApplications: []string{"Media Mix Analysis", "Customer Journey Mapping", "Touchpoint Analysis"},
			RequiredForAnalysis:     []string{"Marketing channel effectiveness", "Media planning optimization"},
			QualityChecks:           []string{"Logical source combinations", "Consistency with demographics"},
			EstimatedSeconds:        45,
			MobileOptimization:      "Icon-based selection with descriptions",
			AccessibilityNotes:      "Audio descriptions for icons",
		},
		{
			Key:                     "purchase_decision_factors",
			Category:                CategoryPurchaseJourney,
			Purpose:                 "Understand factors that influence final purchase decision",
			DataType:                "Rating_Scale_5_Point",
			ValidationRule:          "All factors must be rated for influence level",
			TerminationLogic:        "No termination",
			StatisticalApplications: []string{"Decision Factor Analysis", "Purchase Driver Modeling", "Choice Modeling"},
			RequiredForAnalysis:     []string{"Sales strategy optimization", "Product positioning"},
			QualityChecks:           []string{"Rating consistency", "Factor importance logic"},
			EstimatedSeconds:        75,
			MobileOptimization:      "Progressive disclosure of factors",
			AccessibilityNotes:      "Factor explanations available",
		},
		{
			Key:                     "purchase_timeline",
			Category:                CategoryPurchaseJourney,
			Purpose:                 "Map the timeline from consideration to purchase",
			DataType:                "Categorical_Single_Response",
			ValidationRule:          "Must select one timeline option",
			TerminationLogic:        "Route based on timeline for follow-up questions",
			StatisticalApplications: []string{"Purchase Cycle Analysis", "Sales Forecasting", "Conversion Timeline Modeling"},
			RequiredForAnalysis:     []string{"Sales cycle optimization", "Marketing timing strategies"},
			QualityChecks:           []string{"Timeline logic validation", "Consistency with urgency indicators"},
			EstimatedSeconds:        20,
			MobileOptimization:      "Timeline visual selector",
			AccessibilityNotes:      "Timeline read-aloud support",
		},
	}
}

// MetadataByCategory returns the metadata entries for one category,
// preserving the fixed order.
func MetadataByCategory(category string) []QuestionMetadata {
	var out []QuestionMetadata
	for _, m := range Metadata() {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out
}
