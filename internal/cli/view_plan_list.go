package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/folhita/catalogo/internal/cli/formatter"
	"github.com/folhita/catalogo/internal/domain"
	"github.com/folhita/catalogo/internal/registry"
	"github.com/folhita/catalogo/internal/service"
)

// lookupResultMsg carries the outcome of a CNPJ lookup.
type lookupResultMsg struct {
	rec *domain.ClientRecord
	err error
}

// generateResultMsg carries the outcome of a proposal generation.
type generateResultMsg struct {
	sub  *domain.Submission
	path string
	err  error
}

// planListView is the home view: the editable list of plan rows plus the
// validity month and client context.
type planListView struct {
	state      *SharedState
	cursor     int
	lookingUp  bool
	generating bool
}

func newPlanListView(state *SharedState) *planListView {
	return &planListView{state: state}
}

func (v *planListView) ID() ViewID    { return ViewPlanList }
func (v *planListView) Title() string { return "Planos" }

func (v *planListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "editar")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "adicionar")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remover")),
		key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mês de validade")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cliente (CNPJ)")),
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "gerar proposta")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "sair")),
	}
}

func (v *planListView) Init() tea.Cmd { return nil }

func (v *planListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case lookupResultMsg:
		v.lookingUp = false
		if msg.err != nil {
			return v, notice(formatter.Fail(lookupErrorText(msg.err)))
		}
		v.state.Form.SetClient(msg.rec)
		return v, notice(formatter.Success("Cliente: " + msg.rec.DisplayName()))

	case generateResultMsg:
		v.generating = false
		if msg.err != nil {
			return v, notice(formatter.Fail(msg.err.Error()))
		}
		v.state.LastSavedPath = msg.path
		v.state.LastSubmission = msg.sub
		return v, notice(formatter.Success(
			fmt.Sprintf("Proposta %s salva em %s", msg.sub.ProposalCode, msg.path)))

	case tea.KeyMsg:
		plans := v.state.Form.Plans()
		if v.cursor >= len(plans) {
			v.cursor = len(plans) - 1
		}

		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(plans)-1 {
				v.cursor++
			}
		case "enter":
			return v, v.editPlan(plans[v.cursor])
		case "a":
			v.state.Form.AddPlan()
			v.cursor = len(plans)
			return v, nil
		case "x":
			return v, v.removePlan(plans[v.cursor])
		case "m":
			return v, v.selectMonth()
		case "c":
			if v.lookingUp {
				return v, notice(formatter.Warn("Consulta em andamento."))
			}
			return v, v.inputCNPJ()
		case "g":
			if v.generating {
				return v, notice(formatter.Warn("Geração em andamento."))
			}
			return v, v.generate()
		}
	}
	return v, nil
}

func (v *planListView) editPlan(plan *domain.PlanLineItem) tea.Cmd {
	edit := &planEdit{}
	form := wizardEditPlan(plan, edit)
	return startWizardCmd(v.state, "Editar plano", form, func() tea.Cmd {
		updates := []struct {
			field domain.PlanField
			value string
		}{
			{domain.FieldDuration, edit.Duration},
			{domain.FieldLocation, edit.Location},
			{domain.FieldContractTime, edit.ContractTime},
			{domain.FieldValue, edit.Value},
		}
		for _, u := range updates {
			if err := v.state.Form.UpdateField(plan.ID, u.field, u.value); err != nil {
				return notice(formatter.Fail(err.Error()))
			}
		}
		return nil
	})
}

func (v *planListView) removePlan(plan *domain.PlanLineItem) tea.Cmd {
	if v.state.Form.PlanCount() == 1 {
		return notice(formatter.Warn(domain.ErrLastPlan.Error()))
	}

	// Rows still at their defaults are removed directly; rows the user
	// filled in ask for confirmation first.
	if plan.Location == "" && plan.Value == "" {
		return v.doRemovePlan(plan.ID)
	}

	confirmed := true
	form := wizardConfirm(fmt.Sprintf("Remover o plano %s?", plan.Duration), &confirmed)
	return startWizardCmd(v.state, "Remover", form, func() tea.Cmd {
		if !confirmed {
			return nil
		}
		return v.doRemovePlan(plan.ID)
	})
}

func (v *planListView) doRemovePlan(id string) tea.Cmd {
	if err := v.state.Form.RemovePlan(id); err != nil {
		if errors.Is(err, domain.ErrLastPlan) {
			return notice(formatter.Warn(err.Error()))
		}
		return notice(formatter.Fail(err.Error()))
	}
	if v.cursor > 0 {
		v.cursor--
	}
	return nil
}

func (v *planListView) selectMonth() tea.Cmd {
	var month string
	form := wizardSelectMonth(v.state.Form.ValidUntil(), &month)
	return startWizardCmd(v.state, "Validade", form, func() tea.Cmd {
		if err := v.state.Form.SetValidUntil(month); err != nil {
			return notice(formatter.Fail(err.Error()))
		}
		return nil
	})
}

func (v *planListView) inputCNPJ() tea.Cmd {
	var raw string
	form := wizardInputCNPJ(&raw)
	return startWizardCmd(v.state, "Cliente", form, func() tea.Cmd {
		if raw == "" {
			v.state.Form.SetClient(nil)
			return notice(formatter.Dim("Cliente removido."))
		}
		v.lookingUp = true
		app := v.state.App
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			rec, err := app.Lookup.Lookup(ctx, raw)
			return lookupResultMsg{rec: rec, err: err}
		}
	})
}

func (v *planListView) generate() tea.Cmd {
	// Submit runs here in the update loop; the async command only sees
	// the immutable submission, never the live form.
	sub, err := v.state.Form.Submit(time.Now())
	if err != nil {
		return notice(formatter.Fail(err.Error()))
	}

	v.generating = true
	app := v.state.App
	return func() tea.Msg {
		doc, err := app.Proposals.Generate(context.Background(), sub)
		if err != nil {
			return generateResultMsg{err: err}
		}
		path, err := doc.SaveTo(app.OutputDir)
		if err != nil {
			return generateResultMsg{err: err}
		}
		return generateResultMsg{sub: sub, path: path}
	}
}

func (v *planListView) View() string {
	var b strings.Builder
	b.WriteString("\n")

	month := v.state.Form.ValidUntil()
	if month == "" {
		b.WriteString("  " + formatter.Dim("Validade: (selecione com m)") + "\n")
	} else {
		b.WriteString("  " + formatter.Dim("Validade: ") + formatter.StyleFg.Render(month) + "\n")
	}

	if client := v.state.Form.Client(); client != nil {
		b.WriteString("  " + formatter.Dim("Cliente:  ") +
			formatter.StyleCyan.Render(client.DisplayName()) + " " +
			formatter.Dim(client.CNPJ) + "\n")
	} else {
		b.WriteString("  " + formatter.Dim("Cliente:  (opcional, consulte com c)") + "\n")
	}
	b.WriteString("\n")

	for i, plan := range v.state.Form.Plans() {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		location := formatter.Dim("(sem local)")
		if plan.Location != "" {
			location = formatter.StyleFg.Render(plan.Location)
		}
		value := formatter.Dim("(sem valor)")
		if plan.Value != "" {
			value = formatter.StyleGreen.Render(plan.Value)
		}
		b.WriteString(fmt.Sprintf("%s%s %s  %s  %s  %s\n",
			cursor,
			formatter.Dim(fmt.Sprintf("%d.", i+1)),
			formatter.Bold(plan.Duration),
			location,
			formatter.Dim(plan.ContractTime),
			value,
		))
	}

	if v.lookingUp {
		b.WriteString("\n  " + formatter.Dim("Consultando CNPJ..."))
	}
	if v.generating {
		b.WriteString("\n  " + formatter.Dim("Gerando proposta..."))
	}

	return b.String()
}

// lookupErrorText maps registry errors to user-facing pt-BR messages.
func lookupErrorText(err error) string {
	switch {
	case errors.Is(err, registry.ErrInvalidCNPJ):
		return "CNPJ inválido: informe 14 dígitos."
	case errors.Is(err, service.ErrBusy):
		return "Consulta em andamento."
	case errors.Is(err, registry.ErrLookupFailed):
		return "Não foi possível consultar o CNPJ."
	default:
		return err.Error()
	}
}
