package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elevated-systems/compute-gardener-regionmap/pkg/regionmap/clock"
	"github.com/elevated-systems/compute-gardener-regionmap/pkg/regionmap/metrics"
	"github.com/elevated-systems/compute-gardener-regionmap/pkg/regionmap/regions"
)

// mockResolver answers lookups from a table keyed by latitude
type mockResolver struct {
	responses map[float64]any
	failures  map[float64]error
	calls     []float64
	onCall    func()
}

func (m *mockResolver) RegionFromLoc(_ context.Context, lat, _ float64, signalType string) (any, error) {
	m.calls = append(m.calls, lat)
	if m.onCall != nil {
		m.onCall()
	}
	if signalType != "co2_moer" {
		return nil, fmt.Errorf("unexpected signal type %q", signalType)
	}
	if err, ok := m.failures[lat]; ok {
		return nil, err
	}
	return m.responses[lat], nil
}

func testRecords() []regions.RegionRecord {
	return []regions.RegionRecord{
		{Provider: "aws", ID: "us-east-1", City: "Ashburn", Latitude: 39.0438, Longitude: -77.4874},
		{Provider: "aws", ID: "us-west-1", City: "San Jose", Latitude: 37.3382, Longitude: -121.8863, ResolvedCode: "SEED"},
		{Provider: "aws", ID: "ca-central-1", City: "Montreal", Latitude: 45.5017, Longitude: -73.5673},
	}
}

func TestRun_AllResolved(t *testing.T) {
	resolver := &mockResolver{
		responses: map[float64]any{
			39.0438: "PJM_DC",
			37.3382: map[string]any{"region": "CAISO_NORTH"},
			45.5017: map[string]any{"region": map[string]any{"abbrev": "", "name": "HQ"}},
		},
	}

	var out bytes.Buffer
	clk := clock.NewMockClock(time.Now())
	before := testutil.ToFloat64(metrics.RecordsTotal.WithLabelValues("aws", metrics.OutcomeResolved))

	input := testRecords()
	result := New(resolver, "co2_moer", 250*time.Millisecond, WithOutput(&out), WithClock(clk)).
		Run(context.Background(), input)

	require.Len(t, result.Records, 3)
	assert.Equal(t, "PJM_DC", result.Records[0].ResolvedCode)
	assert.Equal(t, "CAISO_NORTH", result.Records[1].ResolvedCode)
	assert.Equal(t, "HQ", result.Records[2].ResolvedCode)
	assert.Equal(t, 3, result.Count(Resolved))
	assert.Equal(t, 0, result.Count(Unresolved))

	assert.Equal(t, 3, result.Mapping.Len())
	assert.Equal(t, []string{"us-east-1", "us-west-1", "ca-central-1"}, result.Mapping.Keys())

	// Input records are not mutated
	assert.Equal(t, "SEED", input[1].ResolvedCode)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "[OK]              us-east-1 @ (39.0438, -77.4874) -> PJM_DC", lines[0])
	assert.NotContains(t, out.String(), "[WARN]")

	// Throttle runs between records only
	assert.Equal(t, []time.Duration{250 * time.Millisecond, 250 * time.Millisecond}, clk.Waits())

	after := testutil.ToFloat64(metrics.RecordsTotal.WithLabelValues("aws", metrics.OutcomeResolved))
	assert.Equal(t, 3.0, after-before)
}

func TestRun_FailureKeepsSeed(t *testing.T) {
	resolver := &mockResolver{
		responses: map[float64]any{
			39.0438: "PJM_DC",
			45.5017: "HQ",
		},
		failures: map[float64]error{
			37.3382: errors.New("all 3 attempts failed: unexpected status code: 500"),
		},
	}

	var out bytes.Buffer
	result := New(resolver, "co2_moer", 0, WithOutput(&out)).Run(context.Background(), testRecords())

	require.Len(t, result.Records, 3)
	assert.Equal(t, "SEED", result.Records[1].ResolvedCode)
	assert.Equal(t, []Outcome{Resolved, Unresolved, Resolved}, result.Outcomes)

	code, ok := result.Mapping.Get("us-west-1")
	require.True(t, ok)
	assert.Equal(t, "SEED", code)
	assert.Equal(t, 3, result.Mapping.Len())

	assert.Equal(t, 1, strings.Count(out.String(), "[WARN]"))
	assert.Contains(t, out.String(), "[WARN]              us-west-1 failed: all 3 attempts failed")
	assert.Len(t, resolver.calls, 3, "a failure does not stop the batch")
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	resolver := &mockResolver{
		responses: map[float64]any{39.0438: "PJM_DC"},
		onCall:    cancel,
	}

	var out bytes.Buffer
	result := New(resolver, "co2_moer", time.Hour, WithOutput(&out)).Run(ctx, testRecords())

	require.Len(t, result.Records, 3)
	assert.Equal(t, 3, result.Mapping.Len())
	assert.Equal(t, []Outcome{Resolved, Unresolved, Unresolved}, result.Outcomes)
	assert.Len(t, resolver.calls, 1)
	assert.Equal(t, "SEED", result.Records[1].ResolvedCode)
	assert.Equal(t, 2, strings.Count(out.String(), "skipped"))
}

func TestRun_Empty(t *testing.T) {
	result := New(&mockResolver{}, "co2_moer", time.Second).Run(context.Background(), nil)
	assert.Empty(t, result.Records)
	assert.Equal(t, 0, result.Mapping.Len())
}

func TestPrint(t *testing.T) {
	result := &Result{
		Records: []regions.RegionRecord{
			{Provider: "gcp", ID: "northamerica-south1", City: "Querétaro", Latitude: 20.5888, Longitude: -100.3899, ResolvedCode: "MX"},
			{Provider: "gcp", ID: "us-east4", City: "Ashburn", Latitude: 39.0438, Longitude: -77.4874, ResolvedCode: "PJM_DC"},
		},
		Mapping: NewMapping(2),
	}
	result.Mapping.Add("northamerica-south1", "MX")
	result.Mapping.Add("us-east4", "PJM_DC")

	var out bytes.Buffer
	require.NoError(t, result.Print(&out))
	text := out.String()

	assert.Contains(t, text, "=== Updated rows ===")
	assert.Contains(t, text, "=== Simple mapping { GCP_region: watttime_abbrev } ===")
	assert.Contains(t, text, `"city": "Querétaro"`, "non-ASCII is not escaped")
	assert.Contains(t, text, "{\n  \"northamerica-south1\": \"MX\",\n  \"us-east4\": \"PJM_DC\"\n}")

	// Both blocks are valid JSON
	parts := strings.Split(text, "===")
	require.Len(t, parts, 5)
	var rows []regions.RegionRecord
	require.NoError(t, json.Unmarshal([]byte(parts[2]), &rows))
	assert.Equal(t, result.Records, rows)
	var mapping map[string]string
	require.NoError(t, json.Unmarshal([]byte(parts[4]), &mapping))
	assert.Equal(t, map[string]string{"northamerica-south1": "MX", "us-east4": "PJM_DC"}, mapping)
}

func TestProviderLabel(t *testing.T) {
	mixed := &Result{Records: []regions.RegionRecord{{Provider: "aws"}, {Provider: "azure"}}}
	assert.Equal(t, "cloud", mixed.providerLabel())

	empty := &Result{}
	assert.Equal(t, "cloud", empty.providerLabel())

	azure := &Result{Records: []regions.RegionRecord{{Provider: "azure"}}}
	assert.Equal(t, "AZURE", azure.providerLabel())
}
