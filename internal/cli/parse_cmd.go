package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/surveyforge/internal/cli/formatter"
	"github.com/alexanderramin/surveyforge/internal/domain"
	"github.com/alexanderramin/surveyforge/internal/estimator"
	"github.com/alexanderramin/surveyforge/internal/export"
	"github.com/alexanderramin/surveyforge/internal/questionnaire"
)

func newParseCmd(app *App) *cobra.Command {
	var (
		workbookPath        string
		documentPath        string
		printFormatted      bool
		objective, market   string
		population, length  int
		methodology, device string
	)

	cmd := &cobra.Command{
		Use:   "parse <questionnaire-file>",
		Short: "Parse AI questionnaire output into an analysis workbook",
		Long: "Reads the questionnaire text produced by the AI tool, extracts the\n" +
			"structured questions, and writes the multi-sheet analysis workbook.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading questionnaire: %w", err)
			}
			text := string(data)

			if printFormatted {
				fmt.Fprintln(cmd.OutOrStdout(), questionnaire.Format(text))
				return nil
			}

			questions := questionnaire.Parse(text)
			if len(questions) == 0 {
				return fmt.Errorf("no questions found in %s", args[0])
			}

			req := &domain.SurveyRequest{
				Objective:          objective,
				PopulationSize:     population,
				InterviewLengthMin: length,
				Methodology:        methodology,
				DeviceContext:      device,
				Market:             market,
			}

			if workbookPath == "" {
				workbookPath = filepath.Join(app.Config.Output.Dir, export.WorkbookFilename(time.Now()))
			}
			if err := app.Export.ExportWorkbook(context.Background(), workbookPath, req, text); err != nil {
				return fmt.Errorf("writing workbook: %w", err)
			}

			if documentPath != "" {
				var dist estimator.Distribution
				if length > 0 {
					dist, err = estimator.EstimateDistributionWithPolicy(length, app.Config.DistributionPolicy())
					if err != nil {
						return err
					}
				}
				if err := app.Export.ExportDocument(context.Background(), documentPath, req, dist, text); err != nil {
					return fmt.Errorf("writing document: %w", err)
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.Header("Questionnaire Exported"))
			fmt.Fprint(cmd.OutOrStdout(), "\n\n")
			fmt.Fprint(cmd.OutOrStdout(), formatter.LabeledRow("Questions Parsed", fmt.Sprintf("%d", len(questions))))
			fmt.Fprint(cmd.OutOrStdout(), "\n")
			fmt.Fprint(cmd.OutOrStdout(), formatter.LabeledRow("Workbook", workbookPath))
			fmt.Fprint(cmd.OutOrStdout(), "\n")
			if documentPath != "" {
				fmt.Fprint(cmd.OutOrStdout(), formatter.LabeledRow("Document", documentPath))
				fmt.Fprint(cmd.OutOrStdout(), "\n")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&workbookPath, "workbook", "", "Workbook output path (default: timestamped file in the output directory)")
	cmd.Flags().StringVar(&documentPath, "document", "", "Also write a Word document of the questionnaire to this path")
	cmd.Flags().BoolVar(&printFormatted, "formatted", false, "Print the banner-formatted questionnaire instead of writing a workbook")
	cmd.Flags().StringVar(&objective, "objective", "", "Research objective recorded in the workbook")
	cmd.Flags().IntVar(&population, "population", 0, "Population size recorded in the workbook")
	cmd.Flags().IntVar(&length, "length", 0, "Interview length recorded in the workbook")
	cmd.Flags().StringVar(&methodology, "methodology", "", "Methodology recorded in the workbook")
	cmd.Flags().StringVar(&device, "device", "", "Device context recorded in the workbook")
	cmd.Flags().StringVar(&market, "market", "", "Market recorded in the workbook")

	return cmd
}
