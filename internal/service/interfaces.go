package service

import (
	"context"
	"errors"

	"github.com/folhita/catalogo/internal/artifact"
	"github.com/folhita/catalogo/internal/domain"
)

// ErrBusy indicates the operation is already in flight. The session runs
// one lookup and one generation at a time; there is no queue and no
// cancellation, the caller simply tries again after completion.
var ErrBusy = errors.New("operação em andamento")

// LookupService resolves client records by CNPJ, one lookup at a time.
type LookupService interface {
	Lookup(ctx context.Context, raw string) (*domain.ClientRecord, error)
}

// ProposalService turns submissions into rendered documents.
type ProposalService interface {
	// Generate renders the submission and stores the resulting document,
	// releasing the previous preview. Callers derive the submission from
	// the form before handing it off, so in-flight generation never
	// observes later form edits.
	Generate(ctx context.Context, sub *domain.Submission) (*artifact.Document, error)

	// Current returns the most recently generated document, or nil.
	Current() *artifact.Document
}
