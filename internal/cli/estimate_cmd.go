package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/surveyforge/internal/cli/formatter"
	"github.com/alexanderramin/surveyforge/internal/estimator"
)

func newEstimateCmd(app *App) *cobra.Command {
	var length int

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate question counts for an interview length",
		RunE: func(cmd *cobra.Command, args []string) error {
			rate := app.Config.Estimator.QuestionsPerMinute
			estimated, err := estimator.EstimateWithRate(length, rate)
			if err != nil {
				return err
			}
			dist, err := estimator.EstimateDistributionWithPolicy(length, app.Config.DistributionPolicy())
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEstimate(length, estimated, dist))
			return nil
		},
	}

	cmd.Flags().IntVar(&length, "length", 0, "Interview length in minutes")
	_ = cmd.MarkFlagRequired("length")

	return cmd
}
