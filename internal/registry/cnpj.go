package registry

import "strings"

// cnpjDigits is the length of a complete CNPJ identifier.
const cnpjDigits = 14

// CleanCNPJ strips every non-digit character from raw.
func CleanCNPJ(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCNPJ applies the XX.XXX.XXX/XXXX-XX display mask to a 14-digit
// string. Inputs of any other length are returned unmodified, which makes
// it safe to call on every keystroke while the user types.
func FormatCNPJ(s string) string {
	if len(s) != cnpjDigits {
		return s
	}
	return s[0:2] + "." + s[2:5] + "." + s[5:8] + "/" + s[8:12] + "-" + s[12:14]
}
