package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/surveyforge/internal/cli/formatter"
	"github.com/alexanderramin/surveyforge/internal/domain"
)

// surveyHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func surveyHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// surveyFormValues holds the raw string state bound to the interactive form.
type surveyFormValues struct {
	Objective      string
	TargetAudience string
	Population     string
	Length         string
	Methodology    string
	Device         string
	Tone           string
	Market         string

	Analysis      []string
	QuestionTypes []string
	Compliance    []string

	Detailed bool
}

// surveyForm builds the interactive survey design form over vals.
func surveyForm(vals *surveyFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Research Objective").
				Placeholder("Understand EV purchase drivers among urban buyers").
				Value(&vals.Objective).
				Validate(validateRequired("research objective")),
			huh.NewInput().
				Title("Target Audience").
				Placeholder("Car owners aged 25-45 in metro cities").
				Value(&vals.TargetAudience),
			huh.NewInput().
				Title("Population Size").
				Placeholder("500").
				Value(&vals.Population).
				Validate(validateRequiredPositiveInt),
			huh.NewInput().
				Title("Interview Length (minutes)").
				Placeholder("15").
				Value(&vals.Length).
				Validate(validateRequiredPositiveInt),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Methodology").
				Options(
					huh.NewOption("Online", string(domain.MethodologyOnline)),
					huh.NewOption("Phone", string(domain.MethodologyPhone)),
					huh.NewOption("Face to Face", string(domain.MethodologyFaceToFace)),
					huh.NewOption("Mobile App", string(domain.MethodologyMobileApp)),
				).
				Value(&vals.Methodology),
			huh.NewSelect[string]().
				Title("Device Context").
				Options(
					huh.NewOption("Mixed", string(domain.DeviceMixed)),
					huh.NewOption("Desktop", string(domain.DeviceDesktop)),
					huh.NewOption("Mobile", string(domain.DeviceMobile)),
				).
				Value(&vals.Device),
			huh.NewSelect[string]().
				Title("Tone").
				Options(
					huh.NewOption("Neutral", string(domain.ToneNeutral)),
					huh.NewOption("Formal", string(domain.ToneFormal)),
					huh.NewOption("Conversational", string(domain.ToneConversational)),
					huh.NewOption("Playful", string(domain.TonePlayful)),
				).
				Value(&vals.Tone),
			huh.NewInput().
				Title("Market").
				Placeholder("India").
				Value(&vals.Market),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Analysis Methods").
				Options(stringOptions(domain.KnownAnalysisMethods)...).
				Value(&vals.Analysis),
			huh.NewMultiSelect[string]().
				Title("Allowed Question Types").
				Options(stringOptions(domain.KnownQuestionTypes)...).
				Value(&vals.QuestionTypes),
			huh.NewMultiSelect[string]().
				Title("Compliance Requirements").
				Options(stringOptions(domain.KnownComplianceStandards)...).
				Value(&vals.Compliance),
			huh.NewConfirm().
				Title("Include professional toolkit guidance?").
				Affirmative("Detailed").
				Negative("Basic").
				Value(&vals.Detailed),
		),
	).WithTheme(surveyHuhTheme()).WithShowHelp(false)
}

// toRequest converts validated form values into a survey request.
func (v *surveyFormValues) toRequest() (domain.SurveyRequest, error) {
	population, err := strconv.Atoi(strings.TrimSpace(v.Population))
	if err != nil {
		return domain.SurveyRequest{}, fmt.Errorf("parsing population size: %w", err)
	}
	length, err := strconv.Atoi(strings.TrimSpace(v.Length))
	if err != nil {
		return domain.SurveyRequest{}, fmt.Errorf("parsing interview length: %w", err)
	}

	return domain.SurveyRequest{
		Objective:              strings.TrimSpace(v.Objective),
		TargetAudience:         strings.TrimSpace(v.TargetAudience),
		PopulationSize:         population,
		InterviewLengthMin:     length,
		Methodology:            v.Methodology,
		DeviceContext:          v.Device,
		Tone:                   v.Tone,
		AnalysisMethods:        v.Analysis,
		AllowedQuestionTypes:   v.QuestionTypes,
		ComplianceRequirements: v.Compliance,
		Market:                 strings.TrimSpace(v.Market),
	}, nil
}

func stringOptions(values []string) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(values))
	for _, v := range values {
		options = append(options, huh.NewOption(v, v))
	}
	return options
}

// validateRequired rejects blank input for a named field.
func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("enter a %s", field)
		}
		return nil
	}
}

// validateRequiredPositiveInt accepts only a positive integer.
func validateRequiredPositiveInt(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}
