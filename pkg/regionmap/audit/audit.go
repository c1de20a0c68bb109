// Package audit records every WattTime API call of a run.
package audit

import (
	"context"
	"time"
)

// MaxBodyLength caps the stored response body
const MaxBodyLength = 100_000

// CallRecord describes a single HTTP call to WattTime
type CallRecord struct {
	RunID      string
	Endpoint   string // login or region-from-loc
	Method     string
	RequestURL string
	Latitude   *float64
	Longitude  *float64
	SignalType string
	Attempt    int
	StatusCode int // zero when no response was received
	Success    bool
	Duration   time.Duration
	Response   string
	Error      string
	Timestamp  time.Time
}

// Sink persists call records
type Sink interface {
	Record(ctx context.Context, rec CallRecord) error
	Close() error
}

// NopSink discards records
type NopSink struct{}

func (NopSink) Record(context.Context, CallRecord) error { return nil }
func (NopSink) Close() error                             { return nil }

// Truncate shortens s to at most max runes
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
