package registry

import "errors"

var (
	// ErrInvalidCNPJ indicates the input does not clean to exactly 14
	// digits. Raised before any network call.
	ErrInvalidCNPJ = errors.New("cnpj inválido: informe 14 dígitos")

	// ErrLookupFailed indicates the registry call failed or returned
	// not-found. No partial record accompanies it.
	ErrLookupFailed = errors.New("consulta ao cnpj falhou")
)
