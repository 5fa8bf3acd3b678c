package domain

import "errors"

var (
	// ErrMissingValidity indicates no validity month was selected before
	// submission.
	ErrMissingValidity = errors.New("selecione o mês de validade")

	// ErrIncompletePlan indicates at least one plan is missing its
	// location or value.
	ErrIncompletePlan = errors.New("preencha todos os campos dos planos")

	// ErrLastPlan indicates an attempt to remove the only remaining plan.
	// The form must always hold at least one plan row.
	ErrLastPlan = errors.New("você deve ter pelo menos um plano")

	// ErrUnknownPlan indicates the given plan ID is not in the form.
	ErrUnknownPlan = errors.New("plano não encontrado")

	// ErrUnknownField indicates an update against a field that does not exist.
	ErrUnknownField = errors.New("campo desconhecido")
)
