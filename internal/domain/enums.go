package domain

type Methodology string

const (
	MethodologyOnline     Methodology = "online"
	MethodologyPhone      Methodology = "phone"
	MethodologyFaceToFace Methodology = "face_to_face"
	MethodologyMobileApp  Methodology = "mobile_app"
)

type DeviceContext string

const (
	DeviceDesktop DeviceContext = "desktop"
	DeviceMobile  DeviceContext = "mobile"
	DeviceMixed   DeviceContext = "mixed"
)

type Tone string

const (
	ToneFormal         Tone = "formal"
	ToneConversational Tone = "conversational"
	TonePlayful        Tone = "playful"
	ToneNeutral        Tone = "neutral"
)

// ValidMethodologies is the canonical set of accepted methodology strings.
// Free text is accepted everywhere; these sets only drive form options.
var ValidMethodologies = map[string]bool{
	"online": true, "phone": true, "face_to_face": true, "mobile_app": true,
}

// ValidDeviceContexts is the canonical set of accepted device context strings.
var ValidDeviceContexts = map[string]bool{
	"desktop": true, "mobile": true, "mixed": true,
}

// ValidTones is the canonical set of accepted tone strings.
var ValidTones = map[string]bool{
	"formal": true, "conversational": true, "playful": true, "neutral": true,
}

// KnownAnalysisMethods lists the analysis methods offered in the form.
// Arbitrary labels are accepted beyond this list.
var KnownAnalysisMethods = []string{
	"Regression",
	"Conjoint",
	"Cluster Analysis",
	"MaxDiff",
	"Factor Analysis",
	"TURF Analysis",
	"Discriminant Analysis",
	"Correspondence Analysis",
	"Latent Class Analysis",
	"SEM",
	"CHAID",
}

// KnownQuestionTypes lists the question types offered in the form.
var KnownQuestionTypes = []string{
	"Likert",
	"Open-End",
	"Rating Scale",
	"Matrix/Grid",
	"Dichotomous",
	"Ranking",
	"Slider",
}

// KnownComplianceStandards lists the compliance regimes offered in the form.
var KnownComplianceStandards = []string{
	"GDPR",
	"CCPA",
	"HIPAA",
	"Other",
}
