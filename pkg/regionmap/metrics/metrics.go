// Package metrics defines the Prometheus collectors of a region mapping run.
package metrics

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "regionmap"

var (
	// Registry holds every collector of this package
	Registry = prometheus.NewRegistry()

	// APIRequestsTotal counts HTTP calls to WattTime by endpoint and status code
	APIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Total number of WattTime API requests",
		},
		[]string{"endpoint", "code"},
	)

	// APIRequestDuration observes WattTime call latency
	APIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "Latency of WattTime API requests",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// LookupRetriesTotal counts backoff waits between lookup attempts
	LookupRetriesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookup_retries_total",
			Help:      "Total number of region lookup retries",
		},
	)

	// TokenRefreshesTotal counts logins after the initial one
	TokenRefreshesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "token_refreshes_total",
			Help:      "Total number of WattTime token refreshes",
		},
		[]string{"reason"},
	)

	// CacheLookupsTotal counts lookup cache hits and misses
	CacheLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Total number of lookup cache reads",
		},
		[]string{"result"},
	)

	// RecordsTotal counts processed region records by provider and outcome
	RecordsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_total",
			Help:      "Total number of region records processed",
		},
		[]string{"provider", "outcome"},
	)
)

// Record outcomes
const (
	OutcomeResolved   = "resolved"
	OutcomeUnresolved = "unresolved"
)

func init() {
	Registry.MustRegister(
		APIRequestsTotal,
		APIRequestDuration,
		LookupRetriesTotal,
		TokenRefreshesTotal,
		CacheLookupsTotal,
		RecordsTotal,
	)
}

// Write encodes the current state of Registry in the text exposition format
func Write(w io.Writer) error {
	families, err := Registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to encode metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// WriteFile writes the text exposition to path, replacing it atomically so a
// node-exporter textfile collector never reads a partial file.
func WriteFile(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create metrics file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to set metrics file mode: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}

// StatusCode renders an HTTP status for the code label; zero means the
// request never got a response.
func StatusCode(code int) string {
	if code == 0 {
		return "error"
	}
	return fmt.Sprintf("%d", code)
}
