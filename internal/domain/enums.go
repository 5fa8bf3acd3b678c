package domain

// PlanField names an editable field of a PlanLineItem.
type PlanField string

const (
	FieldDuration     PlanField = "duration"
	FieldLocation     PlanField = "location"
	FieldContractTime PlanField = "contract_time"
	FieldValue        PlanField = "value"
)

// Durations is the ordered set of selectable video durations.
var Durations = []string{"10 SEG", "15 SEG", "20 SEG", "30 SEG"}

// ContractTimes is the ordered set of selectable contract terms.
var ContractTimes = []string{"30 dias", "6 meses", "12 meses"}

// Locations is the ordered set of canonical LED panel sites.
var Locations = []string{
	"ITAMARAJÚ/BA - PRAÇA CASTELO BRANCO",
	"EUNÁPOLIS/BA - BR101",
	"EUNÁPOLIS/BA - BR367",
}

// Months is the ordered set of pt-BR month names used for proposal validity.
var Months = []string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// displayLocations maps each canonical site to the short form printed as
// the proposal's "directed to" line.
var displayLocations = map[string]string{
	"ITAMARAJÚ/BA - PRAÇA CASTELO BRANCO": "Itamarajú - BA",
	"EUNÁPOLIS/BA - BR101":                "Eunápolis - BA",
	"EUNÁPOLIS/BA - BR367":                "Eunápolis - BA",
}

// DefaultDisplayLocation is used when the first plan's site is not one of
// the known canonical names.
const DefaultDisplayLocation = "Itamarajú - BA"

// DisplayLocation returns the short display form for a canonical site name,
// falling back to DefaultDisplayLocation for unrecognized input.
func DisplayLocation(site string) string {
	if short, ok := displayLocations[site]; ok {
		return short
	}
	return DefaultDisplayLocation
}

// ValidMonth reports whether name is one of the pt-BR month names.
func ValidMonth(name string) bool {
	for _, m := range Months {
		if m == name {
			return true
		}
	}
	return false
}
