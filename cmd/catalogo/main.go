package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/folhita/catalogo/internal/artifact"
	"github.com/folhita/catalogo/internal/cli"
	"github.com/folhita/catalogo/internal/registry"
	"github.com/folhita/catalogo/internal/render"
	"github.com/folhita/catalogo/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Output directory: env var or current working directory.
	outputDir := os.Getenv("CATALOGO_OUTPUT_DIR")
	if outputDir == "" {
		outputDir = "."
	}

	// Wire the registry lookup client.
	registryCfg := registry.LoadConfig()
	var registryObserver registry.Observer = registry.NoopObserver{}
	if registryCfg.LogCalls {
		registryObserver = registry.NewLogObserver(os.Stderr)
	}
	lookupClient := registry.NewClient(registryCfg, registryObserver)

	// Wire the generation pipeline. The store owns preview files and
	// cleans them up on exit.
	store := artifact.NewStore()
	defer store.Close()

	var proposalObserver service.Observer = service.NoopObserver{}
	if registryCfg.LogCalls {
		proposalObserver = service.LogObserver{Logger: log.New(os.Stderr, "", log.LstdFlags)}
	}

	year := time.Now().Year()
	renderer := render.NewRenderer(year)

	app := &cli.App{
		Lookup:    service.NewLookupService(lookupClient),
		Proposals: service.NewProposalService(renderer, store, proposalObserver),
		Year:      year,
		OutputDir: outputDir,
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
