package metrics

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	RecordsTotal.WithLabelValues("aws", OutcomeResolved).Add(2)
	APIRequestsTotal.WithLabelValues("region-from-loc", StatusCode(200)).Inc()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf))

	out := buf.String()
	assert.Contains(t, out, "# TYPE regionmap_records_total counter")
	assert.Contains(t, out, `regionmap_records_total{outcome="resolved",provider="aws"}`)
	assert.Contains(t, out, `regionmap_api_requests_total{code="200",endpoint="region-from-loc"}`)
}

func TestWriteFile(t *testing.T) {
	LookupRetriesTotal.Inc()
	before := testutil.ToFloat64(LookupRetriesTotal)

	path := filepath.Join(t.TempDir(), "regionmap.prom")
	require.NoError(t, WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "regionmap_lookup_retries_total"))
	assert.GreaterOrEqual(t, before, 1.0)

	// No temporary files are left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, "error", StatusCode(0))
	assert.Equal(t, "401", StatusCode(401))
}
