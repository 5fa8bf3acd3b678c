package render

import (
	"fmt"
	"time"

	"github.com/folhita/catalogo/internal/domain"
)

// monthIndex maps pt-BR month names to their 1-based calendar position.
var monthIndex = func() map[string]int {
	m := make(map[string]int, len(domain.Months))
	for i, name := range domain.Months {
		m[name] = i + 1
	}
	return m
}()

// ValidityDate returns the human-readable validity line for the proposal:
// the last calendar day of the named month in year, e.g. "30 de Abril de
// 2026". Unknown month names are returned unchanged.
func ValidityDate(month string, year int) string {
	idx, ok := monthIndex[month]
	if !ok {
		return month
	}
	// Day zero of the following month is the last day of this one.
	lastDay := time.Date(year, time.Month(idx)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	return fmt.Sprintf("%d de %s de %d", lastDay, month, year)
}
