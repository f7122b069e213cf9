package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/surveyforge/internal/cli/formatter"
	"github.com/alexanderramin/surveyforge/internal/toolkit"
)

func newToolkitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toolkit",
		Short: "Browse the professional survey toolkit",
	}

	cmd.AddCommand(
		newToolkitTypesCmd(),
		newToolkitMetadataCmd(),
		newToolkitFraudCmd(),
		newToolkitTerminationCmd(),
		newToolkitLOICmd(),
	)

	return cmd
}

func newToolkitTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "Show question types, scales, and analysis methods",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatQuestionTypes(toolkit.QuestionTypes()))
			return nil
		},
	}
}

func newToolkitMetadataCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "metadata",
		Short: "Show professional question metadata standards",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := toolkit.Metadata()
			if category != "" {
				entries = toolkit.MetadataByCategory(category)
				if len(entries) == 0 {
					return fmt.Errorf("unknown category %q", category)
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMetadata(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category (Screener, Core Research, Purchase Journey)")

	return cmd
}

func newToolkitFraudCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fraud",
		Short: "Show fraud detection requirements",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGuidelines("Fraud Detection", toolkit.FraudChecks()))
			return nil
		},
	}
}

func newToolkitTerminationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "termination",
		Short: "Show termination criteria",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGuidelines("Termination Criteria", toolkit.TerminationCriteria()))
			return nil
		},
	}
}

func newToolkitLOICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "loi",
		Short: "Show interview length guidelines",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGuidelines("Interview Length Guidelines", toolkit.LOIGuidelines()))
			return nil
		},
	}
}
