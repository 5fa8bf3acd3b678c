package registry

import (
	"fmt"
	"io"
	"time"
)

// LookupEvent records metadata about a single registry call.
type LookupEvent struct {
	CNPJSuffix string // last 4 digits only, enough to correlate without logging the full identifier
	LatencyMs  int64
	Success    bool
	ErrorCode  string
}

// Observer receives events about registry calls for logging.
type Observer interface {
	OnLookupComplete(event LookupEvent)
}

// LogObserver writes lookup events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnLookupComplete(event LookupEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] cnpj_lookup suffix=%s latency_ms=%d status=%s\n",
		ts, event.CNPJSuffix, event.LatencyMs, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnLookupComplete(LookupEvent) {}
