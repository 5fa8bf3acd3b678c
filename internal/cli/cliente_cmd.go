package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/folhita/catalogo/internal/cli/formatter"
	"github.com/folhita/catalogo/internal/registry"
)

func newClienteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cliente <cnpj>",
		Short: "Consulta os dados cadastrais de um CNPJ",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := func() {}
			if app.IsInteractive == nil || app.IsInteractive() {
				stop = formatter.StartSpinner("Consultando CNPJ...")
			}
			rec, err := app.Lookup.Lookup(cmd.Context(), args[0])
			stop()

			if err != nil {
				if errors.Is(err, registry.ErrInvalidCNPJ) {
					return fmt.Errorf("CNPJ inválido: informe 14 dígitos")
				}
				return fmt.Errorf("consultando CNPJ: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatClientRecord(rec))
			return nil
		},
	}
}
