package docsource

import (
	"fmt"
	"io"
	"os"
	"time"
)

// FetchEvent records metadata about a single document fetch.
type FetchEvent struct {
	DocumentID string
	LatencyMs  int64
	Cached     bool
	Success    bool
	ErrorCode  string
}

// Observer receives events about document fetches for logging.
type Observer interface {
	OnFetchComplete(event FetchEvent)
}

// LogObserver writes fetch events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnFetchComplete(event FetchEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] doc_fetch id=%s latency_ms=%d cached=%t status=%s\n",
		ts, event.DocumentID, event.LatencyMs, event.Cached, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnFetchComplete(FetchEvent) {}

// ObserverFromEnv returns a stderr LogObserver when DAYFLOW_LOG_FETCHES
// is set, NoopObserver otherwise.
func ObserverFromEnv() Observer {
	if os.Getenv("DAYFLOW_LOG_FETCHES") != "" {
		return NewLogObserver(os.Stderr)
	}
	return NoopObserver{}
}
