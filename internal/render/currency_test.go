package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency_PlainNumbers(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1200", "R$ 1.200,00"},
		{"R$ 1200", "R$ 1.200,00"},
		{"800", "R$ 800,00"},
		{"1500000", "R$ 1.500.000,00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatCurrency(tc.in), "input=%q", tc.in)
	}
}

func TestFormatCurrency_BrazilianLocaleInput(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1.650,00", "R$ 1.650,00"},
		{"R$1.650,00", "R$ 1.650,00"},
		{"R$ 1.250,00", "R$ 1.250,00"},
		{"1.234.567,89", "R$ 1.234.567,89"},
		{"950,5", "R$ 950,50"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatCurrency(tc.in), "input=%q", tc.in)
	}
}

func TestFormatCurrency_Idempotent(t *testing.T) {
	once := FormatCurrency("R$ 1.250,00")
	assert.Equal(t, "R$ 1.250,00", once)
	assert.Equal(t, once, FormatCurrency(once))
}

func TestFormatCurrency_UnparseableFallsBackToInput(t *testing.T) {
	for _, in := range []string{"a combinar", "R$ 1200 /por mês", "1.200,00 mensal"} {
		assert.Equal(t, in, FormatCurrency(in), "unparseable input must come back unchanged")
	}
}
