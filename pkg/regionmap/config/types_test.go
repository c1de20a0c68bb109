package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	cfg := Default()
	cfg.API.Username = "user"
	cfg.API.Password = "secret"
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid defaults",
			mutate: func(*Config) {},
		},
		{
			name:    "missing password",
			mutate:  func(c *Config) { c.API.Password = "" },
			wantErr: true,
		},
		{
			name:    "relative login URL",
			mutate:  func(c *Config) { c.API.LoginURL = "/login" },
			wantErr: true,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.API.Timeout = 0 },
			wantErr: true,
		},
		{
			name:    "zero retries",
			mutate:  func(c *Config) { c.API.MaxRetries = 0 },
			wantErr: true,
		},
		{
			name:    "negative retry delay",
			mutate:  func(c *Config) { c.API.RetryDelay = -time.Second },
			wantErr: true,
		},
		{
			name:   "zero retry delay",
			mutate: func(c *Config) { c.API.RetryDelay = 0 },
		},
		{
			name:    "negative sleep",
			mutate:  func(c *Config) { c.Run.Sleep = -time.Millisecond },
			wantErr: true,
		},
		{
			name:    "empty signal",
			mutate:  func(c *Config) { c.Run.SignalType = " " },
			wantErr: true,
		},
		{
			name:    "unknown provider",
			mutate:  func(c *Config) { c.Run.Provider = "oracle" },
			wantErr: true,
		},
		{
			name:   "provider is case insensitive",
			mutate: func(c *Config) { c.Run.Provider = "GCP" },
		},
		{
			name: "regions file makes provider optional",
			mutate: func(c *Config) {
				c.Run.Provider = ""
				c.Run.RegionsFile = "regions.yaml"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
