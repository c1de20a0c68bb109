package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Config holds all configuration for a region mapping run
type Config struct {
	API           APIConfig           `yaml:"api"`
	Run           RunConfig           `yaml:"run"`
	Cache         CacheConfig         `yaml:"cache"`
	Audit         AuditConfig         `yaml:"audit"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// APIConfig holds configuration for the WattTime API
type APIConfig struct {
	Username   string        `yaml:"username"`
	Password   string        `yaml:"password"`
	LoginURL   string        `yaml:"loginUrl"`
	RegionURL  string        `yaml:"regionUrl"`
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"maxRetries"`
	RetryDelay time.Duration `yaml:"retryDelay"` // Linear backoff base
	TokenTTL   time.Duration `yaml:"tokenTTL"`
}

// RunConfig holds configuration for the lookup loop
type RunConfig struct {
	Provider    string        `yaml:"provider"`
	RegionsFile string        `yaml:"regionsFile"`
	Regions     []string      `yaml:"regions"`
	SignalType  string        `yaml:"signalType"`
	Sleep       time.Duration `yaml:"sleep"` // Throttle between records
}

// CacheConfig controls de-duplication of identical coordinate lookups
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	TTL     time.Duration `yaml:"ttl"`
}

// AuditConfig controls the SQLite call audit
type AuditConfig struct {
	DBPath string `yaml:"dbPath"` // Empty disables auditing
}

// ObservabilityConfig holds configuration for metrics output
type ObservabilityConfig struct {
	MetricsFile string `yaml:"metricsFile"`
}

// Validate performs validation of the configuration
func (c *Config) Validate() error {
	if c.API.Username == "" || c.API.Password == "" {
		return fmt.Errorf("WattTime username and password are required")
	}

	for name, raw := range map[string]string{"login": c.API.LoginURL, "region": c.API.RegionURL} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid %s URL: %q", name, raw)
		}
	}

	if c.API.Timeout <= 0 {
		return fmt.Errorf("API timeout must be positive")
	}
	if c.API.MaxRetries < 1 {
		return fmt.Errorf("max retries must be at least 1")
	}
	if c.API.RetryDelay < 0 {
		return fmt.Errorf("retry delay must not be negative")
	}
	if c.Run.Sleep < 0 {
		return fmt.Errorf("sleep between lookups must not be negative")
	}
	if strings.TrimSpace(c.Run.SignalType) == "" {
		return fmt.Errorf("signal type is required")
	}
	if c.Run.RegionsFile == "" {
		switch strings.ToLower(c.Run.Provider) {
		case "aws", "gcp", "azure":
		default:
			return fmt.Errorf("invalid provider %q (must be aws, gcp or azure)", c.Run.Provider)
		}
	}

	return nil
}
