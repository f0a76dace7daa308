package config

import "github.com/spf13/viper"

// Config holds all runtime configuration for an orbit session. Values
// are populated from .orbit.yaml, ORBIT_* env vars, and CLI flags.
type Config struct {
	DBPath        string `mapstructure:"db_path"`
	TelemetryPath string `mapstructure:"telemetry_path"`
	Verbose       bool   `mapstructure:"verbose"`
	Color         bool   `mapstructure:"color"`
	FirstWeekday  string `mapstructure:"first_weekday"`
}

// Load reads configuration from viper, applying built-in defaults for
// any values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("db_path", ".orbit/orbit.db")
	viper.SetDefault("telemetry_path", ".orbit/events.jsonl")
	viper.SetDefault("verbose", false)
	viper.SetDefault("color", true)
	viper.SetDefault("first_weekday", "monday")

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
