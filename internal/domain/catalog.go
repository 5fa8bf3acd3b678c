package domain

import (
	"fmt"
	"strings"
	"time"
)

// CatalogForm is the mutable state of one proposal being edited. It owns its
// plan collection: rows are added, edited and removed only through its
// methods, which is what keeps the at-least-one-plan invariant intact.
type CatalogForm struct {
	validUntil string
	plans      []*PlanLineItem
	client     *ClientRecord
}

// NewCatalogForm returns a form initialized with exactly one default plan row.
func NewCatalogForm() *CatalogForm {
	return &CatalogForm{
		plans: []*PlanLineItem{NewPlanLineItem()},
	}
}

// ValidUntil returns the selected validity month, or "" when unset.
func (f *CatalogForm) ValidUntil() string { return f.validUntil }

// SetValidUntil selects the validity month. Unknown month names are rejected.
func (f *CatalogForm) SetValidUntil(month string) error {
	if !ValidMonth(month) {
		return fmt.Errorf("mês inválido: %q", month)
	}
	f.validUntil = month
	return nil
}

// Client returns the current client record, or nil when no lookup succeeded yet.
func (f *CatalogForm) Client() *ClientRecord { return f.client }

// SetClient replaces the client record wholesale.
func (f *CatalogForm) SetClient(c *ClientRecord) { f.client = c }

// Plans returns the plan rows in insertion order. The slice is a copy but
// the rows are shared; callers mutate rows via UpdateField only.
func (f *CatalogForm) Plans() []*PlanLineItem {
	out := make([]*PlanLineItem, len(f.plans))
	copy(out, f.plans)
	return out
}

// PlanCount returns the number of plan rows.
func (f *CatalogForm) PlanCount() int { return len(f.plans) }

// AddPlan appends a new default plan row and returns it.
func (f *CatalogForm) AddPlan() *PlanLineItem {
	p := NewPlanLineItem()
	f.plans = append(f.plans, p)
	return p
}

// RemovePlan removes the row with the given ID. Removing the only remaining
// row fails with ErrLastPlan and leaves the form untouched.
func (f *CatalogForm) RemovePlan(id string) error {
	if len(f.plans) <= 1 {
		return ErrLastPlan
	}
	for i, p := range f.plans {
		if p.ID == id {
			f.plans = append(f.plans[:i], f.plans[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownPlan, id)
}

// UpdateField replaces one field of the row with the given ID. Values are
// not validated here; validation happens at submission.
func (f *CatalogForm) UpdateField(id string, field PlanField, value string) error {
	p := f.planByID(id)
	if p == nil {
		return fmt.Errorf("%w: %s", ErrUnknownPlan, id)
	}
	switch field {
	case FieldDuration:
		p.Duration = value
	case FieldLocation:
		p.Location = value
	case FieldContractTime:
		p.ContractTime = value
	case FieldValue:
		p.Value = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

func (f *CatalogForm) planByID(id string) *PlanLineItem {
	for _, p := range f.plans {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Submission is the immutable result of a successful Submit. It is the sole
// input to the PDF renderer; a fresh value is produced per submission.
type Submission struct {
	ValidUntil   string
	Location     string
	ProposalCode string
	Plans        []PlanLineItem
	Client       *ClientRecord
}

// Submit validates the form and derives a Submission using now as the
// submission instant. On any validation failure no partial submission is
// produced and the form state is left exactly as it was.
func (f *CatalogForm) Submit(now time.Time) (*Submission, error) {
	if f.validUntil == "" {
		return nil, ErrMissingValidity
	}
	for _, p := range f.plans {
		if !p.Complete() {
			return nil, ErrIncompletePlan
		}
	}

	plans := make([]PlanLineItem, len(f.plans))
	for i, p := range f.plans {
		plans[i] = *p
		plans[i].Value = NormalizeValue(p.Value)
	}

	var client *ClientRecord
	if f.client != nil {
		c := *f.client
		client = &c
	}

	return &Submission{
		ValidUntil:   f.validUntil,
		Location:     DisplayLocation(f.plans[0].Location),
		ProposalCode: ProposalCode(now),
		Plans:        plans,
		Client:       client,
	}, nil
}

// ProposalCode composes the code printed on the document: the literal FCV
// prefix followed by the local timestamp as yymmddhhmmss.
func ProposalCode(now time.Time) string {
	return "FCV" + now.Format("060102150405")
}

// NormalizeValue ensures the price text carries the currency marker. Text
// already starting with R$ passes through unchanged; anything else gets the
// "R$ " prefix. This is a prefix decision only, never a numeric parse.
func NormalizeValue(value string) string {
	if strings.HasPrefix(strings.TrimSpace(value), "R$") {
		return value
	}
	return "R$ " + value
}
