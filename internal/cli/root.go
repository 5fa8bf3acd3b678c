package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/folhita/catalogo/internal/service"
)

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Lookup    service.LookupService
	Proposals service.ProposalService

	// Year stamped on the proposal cover.
	Year int

	// OutputDir is where generated proposals are saved. Empty means the
	// current working directory.
	OutputDir string

	// IsInteractive reports whether stdin is an interactive terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "catalogo" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "catalogo",
		Short: "Gerador de propostas comerciais Folhita",
	}

	// Accept the English spelling as an alias for the output flag.
	root.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "output" {
			name = "saida"
		}
		return pflag.NormalizedName(name)
	})

	root.AddCommand(
		newGerarCmd(app),
		newClienteCmd(app),
	)

	return root
}
