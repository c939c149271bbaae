package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		wantErr bool
		check   func(*Config) bool
	}{
		{
			name: "loads with all required vars",
			envVars: map[string]string{
				"PORT":         "8080",
				"ENV":          "production",
				"DATABASE_URL": "postgres://localhost/test",
				"PHOTO_DIR":    "/var/lib/centinela/photos",
			},
			wantErr: false,
			check: func(c *Config) bool {
				return c.Port == 8080 &&
					c.Environment == "production" &&
					c.DatabaseURL == "postgres://localhost/test" &&
					c.PhotoDir == "/var/lib/centinela/photos"
			},
		},
		{
			name: "uses defaults when optional vars missing",
			envVars: map[string]string{
				"DATABASE_URL": "postgres://localhost/test",
			},
			wantErr: false,
			check: func(c *Config) bool {
				return c.Port == 5000 &&
					c.Environment == "development" &&
					c.PhotoDir == "data/known_faces"
			},
		},
		{
			name:    "fails when DATABASE_URL missing",
			envVars: map[string]string{},
			wantErr: true,
			check:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear environment
			os.Clearenv()

			// Set test environment variables
			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}

			cfg, err := Load()

			if tt.wantErr {
				if err == nil {
					t.Errorf("Load() expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Errorf("Load() unexpected error: %v", err)
				return
			}

			if tt.check != nil && !tt.check(cfg) {
				t.Errorf("Load() config check failed, got: %+v", cfg)
			}
		})
	}
}

func TestLoadDashboard(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		check   func(*DashboardConfig) bool
	}{
		{
			name:    "defaults",
			envVars: map[string]string{},
			check: func(c *DashboardConfig) bool {
				return c.APIBaseURL == "http://localhost:5000/api" &&
					c.PollInterval == 30*time.Second &&
					c.FetchLimit == 10 &&
					c.ExportDir == "exports"
			},
		},
		{
			name: "overrides",
			envVars: map[string]string{
				"API_BASE_URL":  "http://10.0.0.2:5000/api",
				"POLL_INTERVAL": "5s",
				"FETCH_LIMIT":   "25",
				"METRICS_ADDR":  ":9180",
			},
			check: func(c *DashboardConfig) bool {
				return c.APIBaseURL == "http://10.0.0.2:5000/api" &&
					c.PollInterval == 5*time.Second &&
					c.FetchLimit == 25 &&
					c.MetricsAddr == ":9180"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}

			cfg, err := LoadDashboard()
			if err != nil {
				t.Errorf("LoadDashboard() unexpected error: %v", err)
				return
			}

			if !tt.check(cfg) {
				t.Errorf("LoadDashboard() config check failed, got: %+v", cfg)
			}
		})
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want bool
	}{
		{"development", "development", true},
		{"production", "production", false},
		{"staging", "staging", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{Environment: tt.env}
			if got := c.IsDevelopment(); got != tt.want {
				t.Errorf("IsDevelopment() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfig_IsProduction(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want bool
	}{
		{"production", "production", true},
		{"development", "development", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{Environment: tt.env}
			if got := c.IsProduction(); got != tt.want {
				t.Errorf("IsProduction() = %v, want %v", got, tt.want)
			}
		})
	}
}
