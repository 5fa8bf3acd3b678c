package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/folhita/catalogo/internal/cli/formatter"
)

func newGerarCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gerar",
		Short: "Monta e gera uma proposta comercial interativamente",
		Long: `Abre o editor interativo de propostas: planos, mês de validade e
cliente opcional por CNPJ. A proposta é gerada em PDF no diretório
de saída.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return errors.New("o modo interativo requer um terminal")
			}
			if dir, _ := cmd.Flags().GetString("saida"); dir != "" {
				app.OutputDir = dir
			}
			p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
			final, err := p.Run()
			if err != nil {
				return err
			}

			// Print a summary of the last generated proposal after the
			// alt screen is torn down.
			if m, ok := final.(appModel); ok && m.state.LastSubmission != nil {
				fmt.Fprintln(cmd.OutOrStdout(),
					formatter.FormatSubmissionSummary(m.state.LastSubmission, m.state.LastSavedPath))
			}
			return nil
		},
	}

	cmd.Flags().String("saida", "", "diretório onde salvar a proposta gerada")
	return cmd
}
