package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/folhita/catalogo/internal/artifact"
	"github.com/folhita/catalogo/internal/domain"
)

// DocumentRenderer produces the proposal PDF bytes for a submission.
type DocumentRenderer interface {
	Render(sub *domain.Submission) ([]byte, error)
}

type proposalService struct {
	renderer DocumentRenderer
	store    *artifact.Store
	observer Observer
	now      func() time.Time
	busy     atomic.Bool
}

// NewProposalService builds the render-store pipeline. A nil observer
// disables event reporting.
func NewProposalService(renderer DocumentRenderer, store *artifact.Store, observer Observer) ProposalService {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &proposalService{
		renderer: renderer,
		store:    store,
		observer: observer,
		now:      time.Now,
	}
}

func (s *proposalService) Generate(ctx context.Context, sub *domain.Submission) (*artifact.Document, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer s.busy.Store(false)

	start := s.now()

	data, err := s.renderer.Render(sub)
	if err != nil {
		s.observer.GenerateEvent(ctx, GenerateEvent{ProposalCode: sub.ProposalCode, Err: err})
		return nil, err
	}

	doc, err := s.store.Replace(data)
	if err != nil {
		s.observer.GenerateEvent(ctx, GenerateEvent{ProposalCode: sub.ProposalCode, Err: err})
		return nil, err
	}

	s.observer.GenerateEvent(ctx, GenerateEvent{
		ProposalCode: sub.ProposalCode,
		Bytes:        len(data),
		Plans:        len(sub.Plans),
		LatencyMs:    s.now().Sub(start).Milliseconds(),
	})
	return doc, nil
}

func (s *proposalService) Current() *artifact.Document {
	return s.store.Current()
}
