package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCNPJ(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"11.222.333/0001-81", "11222333000181"},
		{"11222333000181", "11222333000181"},
		{"11 222 333 / 0001 - 81", "11222333000181"},
		{"abc", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CleanCNPJ(tc.in), "input=%q", tc.in)
	}
}

func TestFormatCNPJ_MasksFourteenDigits(t *testing.T) {
	assert.Equal(t, "11.222.333/0001-81", FormatCNPJ("11222333000181"))
}

func TestFormatCNPJ_PassthroughOtherLengths(t *testing.T) {
	for _, in := range []string{"", "123", "112223330001812", "11.222.333/0001-81"} {
		assert.Equal(t, in, FormatCNPJ(in), "non-14-digit input must pass through")
	}
}
