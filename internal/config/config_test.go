package config

import (
	"testing"

	"github.com/spf13/viper"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper() {
	viper.Reset()
}

func TestLoad_Defaults(t *testing.T) {
	resetViper()

	cfg := Load()

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"DBPath", cfg.DBPath, ".orbit/orbit.db"},
		{"TelemetryPath", cfg.TelemetryPath, ".orbit/events.jsonl"},
		{"Verbose", cfg.Verbose, false},
		{"Color", cfg.Color, true},
		{"FirstWeekday", cfg.FirstWeekday, "monday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	resetViper()

	viper.SetEnvPrefix("ORBIT")
	viper.AutomaticEnv()
	t.Setenv("ORBIT_DB_PATH", "/tmp/elsewhere.db")
	t.Setenv("ORBIT_VERBOSE", "true")

	cfg := Load()
	if cfg.DBPath != "/tmp/elsewhere.db" {
		t.Errorf("DBPath = %q, want env override", cfg.DBPath)
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want env override true")
	}
}

func TestLoad_ExplicitSettingsWin(t *testing.T) {
	resetViper()

	viper.Set("db_path", "custom/orbit.db")
	viper.Set("color", false)

	cfg := Load()
	if cfg.DBPath != "custom/orbit.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "custom/orbit.db")
	}
	if cfg.Color {
		t.Error("Color = true, want explicit false")
	}
}
