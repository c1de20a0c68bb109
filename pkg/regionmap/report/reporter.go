// Package report drives a region mapping run: it resolves every record in
// input order, prints a line per record and serializes the updated table.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"k8s.io/klog/v2"

	"github.com/elevated-systems/compute-gardener-regionmap/pkg/regionmap/clock"
	"github.com/elevated-systems/compute-gardener-regionmap/pkg/regionmap/metrics"
	"github.com/elevated-systems/compute-gardener-regionmap/pkg/regionmap/normalize"
	"github.com/elevated-systems/compute-gardener-regionmap/pkg/regionmap/regions"
)

// Outcome is the terminal state of a record
type Outcome string

const (
	Resolved   Outcome = metrics.OutcomeResolved
	Unresolved Outcome = metrics.OutcomeUnresolved
)

// Resolver looks up the raw region payload of a coordinate
type Resolver interface {
	RegionFromLoc(ctx context.Context, lat, lon float64, signalType string) (any, error)
}

// Result holds the updated records and the id -> code mapping of a run
type Result struct {
	Records  []regions.RegionRecord
	Mapping  *Mapping
	Outcomes []Outcome
}

// Count returns how many records ended in outcome
func (r *Result) Count(outcome Outcome) int {
	n := 0
	for _, o := range r.Outcomes {
		if o == outcome {
			n++
		}
	}
	return n
}

// Reporter resolves region records one at a time
type Reporter struct {
	resolver   Resolver
	signalType string
	sleep      time.Duration
	out        io.Writer
	clock      clock.Clock
}

// Option allows customizing the reporter
type Option func(*Reporter)

// WithClock replaces the clock used for throttling
func WithClock(clk clock.Clock) Option {
	return func(r *Reporter) {
		r.clock = clk
	}
}

// WithOutput sets where per-record lines are written
func WithOutput(w io.Writer) Option {
	return func(r *Reporter) {
		r.out = w
	}
}

// New creates a reporter. sleep is the fixed pause between records.
func New(resolver Resolver, signalType string, sleep time.Duration, opts ...Option) *Reporter {
	r := &Reporter{
		resolver:   resolver,
		signalType: signalType,
		sleep:      sleep,
		out:        io.Discard,
		clock:      clock.RealClock{},
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run resolves every record in order. A failed lookup keeps the record's
// seed value; it never stops the batch. Once ctx is cancelled the remaining
// records are carried through unresolved without network calls, so the
// result always has one record and one mapping entry per input record.
func (r *Reporter) Run(ctx context.Context, records []regions.RegionRecord) *Result {
	result := &Result{
		Records:  make([]regions.RegionRecord, 0, len(records)),
		Mapping:  NewMapping(len(records)),
		Outcomes: make([]Outcome, 0, len(records)),
	}

	for i, rec := range records {
		updated, outcome := r.resolve(ctx, rec)

		result.Records = append(result.Records, updated)
		result.Outcomes = append(result.Outcomes, outcome)
		if !result.Mapping.Add(updated.ID, updated.ResolvedCode) {
			klog.InfoS("Duplicate region id, keeping first mapping", "region", updated.ID)
		}
		metrics.RecordsTotal.WithLabelValues(rec.Provider, string(outcome)).Inc()

		if i < len(records)-1 {
			r.throttle(ctx)
		}
	}

	klog.InfoS("Region mapping finished",
		"records", len(result.Records),
		"resolved", result.Count(Resolved),
		"unresolved", result.Count(Unresolved))

	return result
}

func (r *Reporter) resolve(ctx context.Context, rec regions.RegionRecord) (regions.RegionRecord, Outcome) {
	if err := ctx.Err(); err != nil {
		fmt.Fprintf(r.out, "[WARN] %22s skipped: %v\n", rec.ID, err)
		return rec, Unresolved
	}

	raw, err := r.resolver.RegionFromLoc(ctx, rec.Latitude, rec.Longitude, r.signalType)
	if err != nil {
		klog.V(2).InfoS("Region lookup failed, keeping seed value",
			"region", rec.ID,
			"seed", rec.ResolvedCode,
			"error", err)
		fmt.Fprintf(r.out, "[WARN] %22s failed: %v\n", rec.ID, err)
		return rec, Unresolved
	}

	rec.ResolvedCode = normalize.Abbrev(raw)
	fmt.Fprintf(r.out, "[OK] %22s @ (%.4f, %.4f) -> %s\n", rec.ID, rec.Latitude, rec.Longitude, rec.ResolvedCode)
	return rec, Resolved
}

func (r *Reporter) throttle(ctx context.Context) {
	if r.sleep <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-r.clock.After(r.sleep):
	}
}

// Print writes the updated records and the mapping as indented JSON blocks
func (r *Result) Print(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	fmt.Fprintln(w, "\n=== Updated rows ===")
	if err := enc.Encode(r.Records); err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}

	fmt.Fprintf(w, "\n=== Simple mapping { %s_region: watttime_abbrev } ===\n", r.providerLabel())
	if err := enc.Encode(r.Mapping); err != nil {
		return fmt.Errorf("failed to encode mapping: %w", err)
	}
	return nil
}

// providerLabel names the common provider of the records, or "cloud" for a
// mixed or empty table.
func (r *Result) providerLabel() string {
	label := ""
	for _, rec := range r.Records {
		if label != "" && rec.Provider != label {
			return "cloud"
		}
		label = rec.Provider
	}
	if label == "" {
		return "cloud"
	}
	return strings.ToUpper(label)
}
