package formatter

import (
	"fmt"
	"strings"

	"github.com/folhita/catalogo/internal/domain"
)

// FormatSubmissionSummary renders a generated proposal as a short report
// for non-TUI output.
func FormatSubmissionSummary(sub *domain.Submission, savedPath string) string {
	var b strings.Builder

	b.WriteString(Header("Proposta " + sub.ProposalCode))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Validade:"), StyleFg.Render(sub.ValidUntil)))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Local:"), StyleFg.Render(sub.Location)))
	if sub.Client != nil {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Cliente:"), StyleFg.Render(sub.Client.DisplayName())))
	}
	b.WriteString("\n")

	for i, plan := range sub.Plans {
		b.WriteString(fmt.Sprintf("  %s %s  %s  %s  %s\n",
			Dim(fmt.Sprintf("%d.", i+1)),
			StyleBold.Render(plan.Duration),
			plan.Location,
			Dim(plan.ContractTime),
			StyleGreen.Render(plan.Value),
		))
	}

	if savedPath != "" {
		b.WriteString("\n  " + Success("Salvo em "+savedPath))
	}

	return strings.TrimRight(b.String(), "\n")
}
