package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/surveyforge/internal/config"
	"github.com/alexanderramin/surveyforge/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Generate service.GenerateService
	Export   service.ExportService
	Config   config.Config

	// IsInteractive reports whether stdin is attached to a terminal.
	// Commands fall back to flag-only operation when it returns false.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "surveyforge" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "surveyforge",
		Short: "Generate AI-ready survey design prompts",
		Long: "Surveyforge collects survey design parameters, estimates question counts\n" +
			"from the interview length, and assembles a structured prompt for an\n" +
			"external AI tool to generate the questionnaire.",
	}

	root.AddCommand(
		newGenerateCmd(app),
		newEstimateCmd(app),
		newToolkitCmd(app),
		newParseCmd(app),
	)

	return root
}
