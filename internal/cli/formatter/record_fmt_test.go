package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/folhita/catalogo/internal/domain"
)

func sampleRecord() *domain.ClientRecord {
	return &domain.ClientRecord{
		CNPJ:       "19.131.243/0001-97",
		LegalName:  "FOLHITA COMUNICACAO LTDA",
		TradeName:  "FOLHITA",
		Email:      "contato@folhita.com.br",
		Phone:      "73999827391",
		Street:     "PRAÇA CASTELO BRANCO",
		Number:     "10",
		District:   "CENTRO",
		City:       "Itamarajú",
		State:      "BA",
		PostalCode: "45836-000",
	}
}

func TestFormatClientRecord(t *testing.T) {
	out := FormatClientRecord(sampleRecord())

	assert.Contains(t, out, "FOLHITA")
	assert.Contains(t, out, "19.131.243/0001-97")
	assert.Contains(t, out, "FOLHITA COMUNICACAO LTDA")
	assert.Contains(t, out, "contato@folhita.com.br")
	assert.Contains(t, out, "PRAÇA CASTELO BRANCO, 10")
}

func TestFormatClientRecord_OmitsEmptyFields(t *testing.T) {
	rec := &domain.ClientRecord{
		CNPJ:      "19.131.243/0001-97",
		LegalName: "FOLHITA COMUNICACAO LTDA",
	}
	out := FormatClientRecord(rec)

	assert.NotContains(t, out, "E-mail")
	assert.NotContains(t, out, "Endereço")
	assert.NotContains(t, out, "Nome fantasia")
}

func TestFormatAddress(t *testing.T) {
	assert.Equal(t,
		"PRAÇA CASTELO BRANCO, 10, CENTRO, Itamarajú - BA, CEP 45836-000",
		FormatAddress(sampleRecord()))
}

func TestFormatAddress_Partial(t *testing.T) {
	rec := &domain.ClientRecord{City: "Eunápolis", State: "BA"}
	assert.Equal(t, "Eunápolis - BA", FormatAddress(rec))

	assert.Equal(t, "", FormatAddress(&domain.ClientRecord{}))
}

func TestFormatSubmissionSummary(t *testing.T) {
	sub := &domain.Submission{
		ValidUntil:   "Julho",
		Location:     "Eunápolis - BA",
		ProposalCode: "FCV260709143052",
		Plans: []domain.PlanLineItem{
			{Duration: "15 SEG", Location: "EUNÁPOLIS/BA - BR101", ContractTime: "12 meses", Value: "R$ 1200"},
		},
	}

	out := FormatSubmissionSummary(sub, "/tmp/proposta.pdf")

	assert.Contains(t, out, "FCV260709143052")
	assert.Contains(t, out, "Julho")
	assert.Contains(t, out, "15 SEG")
	assert.Contains(t, out, "R$ 1200")
	assert.Contains(t, out, "/tmp/proposta.pdf")
}
