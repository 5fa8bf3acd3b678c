package formatter

import (
	"fmt"
	"strings"

	"github.com/folhita/catalogo/internal/domain"
)

// FormatClientRecord renders a CNPJ lookup result as a labeled block.
func FormatClientRecord(rec *domain.ClientRecord) string {
	var b strings.Builder

	b.WriteString(Header(rec.DisplayName()))
	b.WriteString("\n\n")

	writeField := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim(label+":"), StyleFg.Render(value)))
	}

	writeField("CNPJ", rec.CNPJ)
	writeField("Razão social", rec.LegalName)
	if rec.TradeName != "" && rec.TradeName != rec.LegalName {
		writeField("Nome fantasia", rec.TradeName)
	}
	writeField("E-mail", rec.Email)
	writeField("Telefone", rec.Phone)
	writeField("Endereço", FormatAddress(rec))

	return strings.TrimRight(b.String(), "\n")
}

// FormatAddress joins the address fields that are present.
func FormatAddress(rec *domain.ClientRecord) string {
	var parts []string
	street := rec.Street
	if street != "" && rec.Number != "" {
		street += ", " + rec.Number
	}
	if street != "" {
		parts = append(parts, street)
	}
	if rec.District != "" {
		parts = append(parts, rec.District)
	}
	city := rec.City
	if city != "" && rec.State != "" {
		city += " - " + rec.State
	}
	if city != "" {
		parts = append(parts, city)
	}
	if rec.PostalCode != "" {
		parts = append(parts, "CEP "+rec.PostalCode)
	}
	return strings.Join(parts, ", ")
}
