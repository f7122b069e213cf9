package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/surveyforge/internal/cli"
	"github.com/alexanderramin/surveyforge/internal/config"
	"github.com/alexanderramin/surveyforge/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	var observer service.Observer = service.NoopObserver{}
	if cfg.LogCalls {
		observer = service.NewLogObserver(os.Stderr)
	}

	app := &cli.App{
		Generate: service.NewGenerateService(cfg, observer),
		Export:   service.NewExportService(cfg.Output.Dir),
		Config:   cfg,
	}

	// Detect interactive terminal for the form entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
