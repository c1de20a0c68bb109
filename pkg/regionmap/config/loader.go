package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
	"k8s.io/klog/v2"
)

const (
	DefaultLoginURL  = "https://api.watttime.org/login"
	DefaultRegionURL = "https://api.watttime.org/v3/region-from-loc"
)

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		API: APIConfig{
			LoginURL:   DefaultLoginURL,
			RegionURL:  DefaultRegionURL,
			Timeout:    20 * time.Second,
			MaxRetries: 3,
			RetryDelay: 600 * time.Millisecond,
			TokenTTL:   55 * time.Minute,
		},
		Run: RunConfig{
			Provider:   "aws",
			SignalType: "co2_moer",
			Sleep:      250 * time.Millisecond,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     time.Hour,
		},
	}
}

// LoadFromEnv loads configuration from environment variables on top of the defaults
func LoadFromEnv() *Config {
	def := Default()
	return &Config{
		API: APIConfig{
			Username:   os.Getenv("WATTTIME_USERNAME"),
			Password:   os.Getenv("WATTTIME_PASSWORD"),
			LoginURL:   getEnvOrDefault("WATTTIME_LOGIN_URL", def.API.LoginURL),
			RegionURL:  getEnvOrDefault("WATTTIME_REGION_URL", def.API.RegionURL),
			Timeout:    getDurationOrDefault("WATTTIME_TIMEOUT", def.API.Timeout),
			MaxRetries: getIntOrDefault("WATTTIME_MAX_RETRIES", def.API.MaxRetries),
			RetryDelay: getDurationOrDefault("WATTTIME_RETRY_DELAY", def.API.RetryDelay),
			TokenTTL:   getDurationOrDefault("WATTTIME_TOKEN_TTL", def.API.TokenTTL),
		},
		Run: RunConfig{
			Provider:   getEnvOrDefault("REGIONMAP_PROVIDER", def.Run.Provider),
			SignalType: getEnvOrDefault("REGIONMAP_SIGNAL_TYPE", def.Run.SignalType),
			Sleep:      getDurationOrDefault("REGIONMAP_SLEEP", def.Run.Sleep),
		},
		Cache: CacheConfig{
			Enabled: getBoolOrDefault("REGIONMAP_CACHE_ENABLED", def.Cache.Enabled),
			TTL:     getDurationOrDefault("REGIONMAP_CACHE_TTL", def.Cache.TTL),
		},
		Audit: AuditConfig{
			DBPath: os.Getenv("REGIONMAP_AUDIT_DB"),
		},
		Observability: ObservabilityConfig{
			MetricsFile: os.Getenv("REGIONMAP_METRICS_FILE"),
		},
	}
}

// Load builds the configuration from the environment, overlays the YAML file
// at path when one is given, and validates the result.
func Load(path string) (*Config, error) {
	cfg := LoadFromEnv()

	if path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	klog.V(2).InfoS("Loaded configuration",
		"provider", cfg.Run.Provider,
		"signalType", cfg.Run.SignalType,
		"regionURL", cfg.API.RegionURL,
		"maxRetries", cfg.API.MaxRetries,
		"retryDelay", cfg.API.RetryDelay,
		"cacheEnabled", cfg.Cache.Enabled,
		"auditEnabled", cfg.Audit.DBPath != "")

	return cfg, nil
}

// loadFile overlays the YAML file onto cfg. Keys missing from the file keep
// their current value.
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if strValue := os.Getenv(key); strValue != "" {
		if value, err := strconv.Atoi(strValue); err == nil {
			return value
		}
		klog.V(2).InfoS("Invalid integer value, using default",
			"key", key,
			"value", strValue,
			"default", defaultValue)
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if strValue := os.Getenv(key); strValue != "" {
		value, err := strconv.ParseBool(strValue)
		if err == nil {
			return value
		}
		klog.V(2).InfoS("Invalid boolean value, using default",
			"key", key,
			"value", strValue,
			"default", defaultValue)
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if strValue := os.Getenv(key); strValue != "" {
		if value, err := time.ParseDuration(strValue); err == nil {
			return value
		}
		klog.V(2).InfoS("Invalid duration value, using default",
			"key", key,
			"value", strValue,
			"default", defaultValue)
	}
	return defaultValue
}
