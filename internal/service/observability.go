package service

import (
	"context"
	"log"
)

// GenerateEvent describes one generation attempt.
type GenerateEvent struct {
	ProposalCode string
	Bytes        int
	Plans        int
	LatencyMs    int64
	Err          error
}

// Observer receives generation events. Implementations must be safe for
// concurrent use.
type Observer interface {
	GenerateEvent(ctx context.Context, ev GenerateEvent)
}

// LogObserver writes events to a standard logger.
type LogObserver struct {
	Logger *log.Logger
}

func (o LogObserver) GenerateEvent(_ context.Context, ev GenerateEvent) {
	if o.Logger == nil {
		return
	}
	if ev.Err != nil {
		o.Logger.Printf("generate code=%s err=%v", ev.ProposalCode, ev.Err)
		return
	}
	o.Logger.Printf("generate code=%s plans=%d bytes=%d latency_ms=%d",
		ev.ProposalCode, ev.Plans, ev.Bytes, ev.LatencyMs)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) GenerateEvent(context.Context, GenerateEvent) {}
