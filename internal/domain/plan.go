package domain

import "github.com/google/uuid"

// PlanLineItem is one row of the proposal's pricing table. Value holds the
// raw price text exactly as typed; it is only normalized at submission.
type PlanLineItem struct {
	ID           string
	Duration     string
	Location     string
	ContractTime string
	Value        string
}

// NewPlanLineItem returns a plan row with the default duration and contract
// term and a fresh unique ID. Location and value start empty and must be
// filled before submission.
func NewPlanLineItem() *PlanLineItem {
	return &PlanLineItem{
		ID:           uuid.New().String(),
		Duration:     Durations[0],
		ContractTime: ContractTimes[0],
	}
}

// Complete reports whether the row has everything submission requires.
func (p *PlanLineItem) Complete() bool {
	return p.Location != "" && p.Value != ""
}
