package regions

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
	"k8s.io/klog/v2"
)

// Table is the on-disk format of a region table file
type Table struct {
	// Provider applies to every record that does not set its own
	Provider string         `yaml:"provider"`
	Regions  []RegionRecord `yaml:"regions"`
}

// ForProvider returns a copy of the built-in table for a provider
func ForProvider(provider string) ([]RegionRecord, error) {
	var source []RegionRecord
	switch strings.ToLower(provider) {
	case ProviderAWS:
		source = AWSRegions
	case ProviderGCP:
		source = GCPRegions
	case ProviderAzure:
		source = AzureRegions
	default:
		return nil, fmt.Errorf("unknown provider %q (must be one of aws, gcp, azure)", provider)
	}

	records := make([]RegionRecord, len(source))
	copy(records, source)
	return records, nil
}

// LoadFile reads a YAML region table
func LoadFile(path string) ([]RegionRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read region table: %w", err)
	}

	records, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("region table %s: %w", path, err)
	}

	klog.V(2).InfoS("Loaded region table", "path", path, "regions", len(records))
	return records, nil
}

// Parse decodes and validates a YAML region table
func Parse(data []byte) ([]RegionRecord, error) {
	table := &Table{}
	if err := yaml.UnmarshalStrict(data, table); err != nil {
		return nil, fmt.Errorf("failed to parse region table: %w", err)
	}

	records := table.Regions
	for i := range records {
		if records[i].Provider == "" {
			records[i].Provider = table.Provider
		}
		records[i].Provider = strings.ToLower(records[i].Provider)
	}

	if err := Validate(records); err != nil {
		return nil, err
	}
	return records, nil
}

// Validate checks that ids are present and unique and that coordinates are in range
func Validate(records []RegionRecord) error {
	seen := make(map[string]int, len(records))
	for i, r := range records {
		if strings.TrimSpace(r.ID) == "" {
			return fmt.Errorf("region at index %d has no id", i)
		}
		if first, dup := seen[r.ID]; dup {
			return fmt.Errorf("duplicate region id %q at index %d (first at %d)", r.ID, i, first)
		}
		seen[r.ID] = i

		if r.Latitude < -90 || r.Latitude > 90 {
			return fmt.Errorf("region %q: latitude %f out of range", r.ID, r.Latitude)
		}
		if r.Longitude < -180 || r.Longitude > 180 {
			return fmt.Errorf("region %q: longitude %f out of range", r.ID, r.Longitude)
		}
	}
	return nil
}

// Filter keeps the records whose id is in ids, preserving table order. An
// empty ids list keeps everything. Unknown ids are returned so callers can
// report them.
func Filter(records []RegionRecord, ids []string) ([]RegionRecord, []string) {
	if len(ids) == 0 {
		return records, nil
	}

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = false
	}

	filtered := make([]RegionRecord, 0, len(ids))
	for _, r := range records {
		if _, ok := wanted[r.ID]; ok {
			filtered = append(filtered, r)
			wanted[r.ID] = true
		}
	}

	var missing []string
	for _, id := range ids {
		if !wanted[id] {
			missing = append(missing, id)
		}
	}
	return filtered, missing
}
