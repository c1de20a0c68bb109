package cache

import (
	"testing"
	"time"

	"github.com/elevated-systems/compute-gardener-regionmap/pkg/regionmap/clock"
)

func TestNew(t *testing.T) {
	c := New(5*time.Minute, nil)
	if c == nil {
		t.Fatal("New() returned nil")
	}
	if c.ttl != 5*time.Minute {
		t.Errorf("Expected ttl to be 5m, got %v", c.ttl)
	}

	// Zero TTL uses the default
	c = New(0, nil)
	if c.ttl != time.Hour {
		t.Errorf("Expected default ttl to be 1h, got %v", c.ttl)
	}
}

func TestKey(t *testing.T) {
	if Key(39.0438, -77.4874, "co2_moer") != Key(39.04381, -77.48739, "co2_moer") {
		t.Error("Expected coordinates equal at four decimals to share a key")
	}
	if Key(39.0438, -77.4874, "co2_moer") == Key(39.0438, -77.4874, "co2_aoer") {
		t.Error("Expected signal type to be part of the key")
	}
}

func TestSetGet(t *testing.T) {
	c := New(5*time.Minute, clock.NewMockClock(time.Now()))

	if c.Size() != 0 {
		t.Errorf("Expected empty cache, got size %d", c.Size())
	}

	data, found := c.Get("k")
	if found {
		t.Error("Get() returned true for non-existent key")
	}
	if data != nil {
		t.Errorf("Get() returned non-nil data for non-existent key: %+v", data)
	}

	c.Set("k", map[string]any{"region": "PJM_DC"})
	if c.Size() != 1 {
		t.Errorf("Expected cache size 1 after Set(), got %d", c.Size())
	}

	data, found = c.Get("k")
	if !found {
		t.Fatal("Get() returned false for existing key")
	}
	if m, ok := data.(map[string]any); !ok || m["region"] != "PJM_DC" {
		t.Errorf("Unexpected cached data: %+v", data)
	}

	hits, misses := c.GetMetrics()
	if hits != 1 {
		t.Errorf("Expected 1 hit, got %d", hits)
	}
	if misses != 1 {
		t.Errorf("Expected 1 miss, got %d", misses)
	}
}

func TestExpiry(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(start)
	c := New(time.Minute, clk)

	c.Set("a", "PJM_DC")
	clk.Set(start.Add(30 * time.Second))
	c.Set("b", "CAISO_NORTH")

	clk.Set(start.Add(61 * time.Second))
	if _, found := c.Get("a"); found {
		t.Error("Expected entry a to be expired")
	}
	if _, found := c.Get("b"); !found {
		t.Error("Expected entry b to be fresh")
	}

	if removed := c.Prune(); removed != 1 {
		t.Errorf("Expected Prune to remove 1 entry, removed %d", removed)
	}
	if c.Size() != 1 {
		t.Errorf("Expected size 1 after Prune, got %d", c.Size())
	}
}
