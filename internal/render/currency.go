package render

import (
	"strconv"
	"strings"
	"unicode"
)

// FormatCurrency rewrites a price text as "R$ 1.234,56" (pt-BR grouping,
// two decimals). The text is first stripped of currency markers and
// whitespace; if no numeric interpretation survives, the original text is
// returned unchanged. Idempotent on already-well-formed output.
func FormatCurrency(value string) string {
	clean := stripCurrencyMarkers(value)

	if strings.ContainsAny(clean, ",.") {
		numStr := strings.ReplaceAll(clean, ".", "")
		numStr = strings.ReplaceAll(numStr, ",", ".")
		if num, err := strconv.ParseFloat(numStr, 64); err == nil {
			return "R$ " + formatBR(num)
		}
	}

	if num, err := strconv.ParseFloat(clean, 64); err == nil {
		return "R$ " + formatBR(num)
	}

	return value
}

// stripCurrencyMarkers removes the characters 'R', '$' and all whitespace,
// mirroring how user-typed prices like "R$ 1.200,00 /por mês" are cleaned
// before parsing.
func stripCurrencyMarkers(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == 'R' || r == '$' || unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// formatBR renders num with '.' thousands separators and ',' decimal comma,
// always with exactly two decimal places.
func formatBR(num float64) string {
	s := strconv.FormatFloat(num, 'f', 2, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}
