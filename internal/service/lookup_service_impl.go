package service

import (
	"context"
	"sync/atomic"

	"github.com/folhita/catalogo/internal/domain"
	"github.com/folhita/catalogo/internal/registry"
)

type lookupService struct {
	client registry.LookupClient
	busy   atomic.Bool
}

// NewLookupService wraps a registry client with single-flight semantics.
func NewLookupService(client registry.LookupClient) LookupService {
	return &lookupService{client: client}
}

func (s *lookupService) Lookup(ctx context.Context, raw string) (*domain.ClientRecord, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer s.busy.Store(false)

	return s.client.Lookup(ctx, raw)
}
