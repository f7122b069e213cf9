package service

import (
	"fmt"
	"io"
	"time"
)

// GenerateEvent records metadata about a single generation run.
type GenerateEvent struct {
	RequestID          string
	LOIMinutes         int
	EstimatedQuestions int
	Detailed           bool
	DurationMs         int64
	Success            bool
	ErrorMsg           string
}

// Observer receives events about generation runs for logging.
type Observer interface {
	OnGenerate(event GenerateEvent)
}

// LogObserver writes generation events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnGenerate(event GenerateEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorMsg
	}
	fmt.Fprintf(o.w, "[%s] generate request=%s loi_min=%d questions=%d detailed=%t duration_ms=%d status=%s\n",
		ts, event.RequestID, event.LOIMinutes, event.EstimatedQuestions, event.Detailed, event.DurationMs, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnGenerate(GenerateEvent) {}
