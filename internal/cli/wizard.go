package cli

import (
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/folhita/catalogo/internal/cli/formatter"
	"github.com/folhita/catalogo/internal/domain"
	"github.com/folhita/catalogo/internal/registry"
)

// folhitaHuhTheme returns a custom huh theme using the proposal palette.
func folhitaHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: green accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// stringOptions converts a slice of values into huh options with the value
// itself as the label.
func stringOptions(values []string) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(values))
	for _, v := range values {
		options = append(options, huh.NewOption(v, v))
	}
	return options
}

// planEdit collects the editable fields of one plan row.
type planEdit struct {
	Duration     string
	Location     string
	ContractTime string
	Value        string
}

// wizardEditPlan creates a huh form to edit a plan row in place. The
// current values of the row seed the form.
func wizardEditPlan(plan *domain.PlanLineItem, result *planEdit) *huh.Form {
	result.Duration = plan.Duration
	result.Location = plan.Location
	result.ContractTime = plan.ContractTime
	result.Value = plan.Value

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Plano").
				Options(stringOptions(domain.Durations)...).
				Value(&result.Duration),
			huh.NewSelect[string]().
				Title("Local").
				Options(stringOptions(domain.Locations)...).
				Value(&result.Location),
			huh.NewSelect[string]().
				Title("Tempo de contrato").
				Options(stringOptions(domain.ContractTimes)...).
				Value(&result.ContractTime),
			huh.NewInput().
				Title("Valor").
				Placeholder("1.250,00").
				Value(&result.Value),
		),
	).WithTheme(folhitaHuhTheme()).WithShowHelp(false)
}

// wizardSelectMonth creates a huh form to pick the validity month.
func wizardSelectMonth(current string, result *string) *huh.Form {
	*result = current
	if *result == "" {
		*result = domain.Months[0]
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Válido até o fim de").
				Options(stringOptions(domain.Months)...).
				Value(result),
		),
	).WithTheme(folhitaHuhTheme()).WithShowHelp(false)
}

// wizardInputCNPJ creates a huh form to enter the client CNPJ.
func wizardInputCNPJ(result *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("CNPJ do cliente").
				Placeholder("00.000.000/0000-00").
				Value(result).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					if len(registry.CleanCNPJ(s)) != 14 {
						return errors.New("informe um CNPJ com 14 dígitos")
					}
					return nil
				}),
		),
	).WithTheme(folhitaHuhTheme()).WithShowHelp(false)
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Sim").
				Negative("Não").
				Value(result),
		),
	).WithTheme(folhitaHuhTheme()).WithShowHelp(false)
}
