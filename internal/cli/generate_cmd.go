package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/surveyforge/internal/cli/formatter"
	"github.com/alexanderramin/surveyforge/internal/contract"
	"github.com/alexanderramin/surveyforge/internal/domain"
)

func newGenerateCmd(app *App) *cobra.Command {
	var (
		objective, audience, methodology, device, tone, market string
		population, length                                     int
		analysis, questionTypes, compliance                    []string
		detailed, preview, toStdout                            bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a survey design prompt",
		Long: "Collects survey design parameters, estimates the question count from\n" +
			"the interview length, assembles the prompt, and writes it as a text\n" +
			"file. With no flags on a terminal, an interactive form is shown.",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := domain.SurveyRequest{
				Objective:              objective,
				TargetAudience:         audience,
				PopulationSize:         population,
				InterviewLengthMin:     length,
				Methodology:            methodology,
				DeviceContext:          device,
				Tone:                   tone,
				AnalysisMethods:        analysis,
				AllowedQuestionTypes:   questionTypes,
				ComplianceRequirements: compliance,
				Market:                 market,
			}

			// With no sizing flags on a terminal, collect everything
			// through the interactive form instead.
			if population == 0 && length == 0 && app.interactive() {
				vals := &surveyFormValues{Detailed: detailed}
				if err := surveyForm(vals).Run(); err != nil {
					return err
				}
				formReq, err := vals.toRequest()
				if err != nil {
					return err
				}
				req = formReq
				detailed = vals.Detailed
			}

			res, err := app.Generate.Generate(context.Background(), contract.GenerateRequest{
				Survey:   req,
				Detailed: detailed,
			})
			if err != nil {
				return err
			}

			if toStdout {
				fmt.Fprint(cmd.OutOrStdout(), res.Prompt)
				return nil
			}

			path, err := app.Export.ExportPrompt(context.Background(), res.SuggestedFilename, res.Prompt)
			if err != nil {
				return fmt.Errorf("writing prompt file: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGenerateSummary(&req, res, path))

			if preview && app.interactive() {
				return runPreview("Survey Prompt", res.Prompt)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&objective, "objective", "", "Research objective")
	cmd.Flags().StringVar(&audience, "audience", "", "Target audience description")
	cmd.Flags().IntVar(&population, "population", 0, "Target population size")
	cmd.Flags().IntVar(&length, "length", 0, "Interview length in minutes")
	cmd.Flags().StringVar(&methodology, "methodology", "", "Survey methodology (online, phone, face_to_face, mobile_app)")
	cmd.Flags().StringVar(&device, "device", "", "Device context (desktop, mobile, mixed)")
	cmd.Flags().StringVar(&tone, "tone", "", "Questionnaire tone (formal, conversational, playful, neutral)")
	cmd.Flags().StringSliceVar(&analysis, "analysis", nil, "Planned analysis methods")
	cmd.Flags().StringSliceVar(&questionTypes, "question-types", nil, "Allowed question types")
	cmd.Flags().StringSliceVar(&compliance, "compliance", nil, "Compliance requirements")
	cmd.Flags().StringVar(&market, "market", "", "Target market")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "Include professional toolkit guidance in the prompt")
	cmd.Flags().BoolVar(&preview, "preview", false, "Open the generated prompt in a pager")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Print the prompt to stdout instead of writing a file")

	return cmd
}
