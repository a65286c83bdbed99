package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// App
	Env  string `mapstructure:"APP_ENV"` // development | production
	Port int    `mapstructure:"PORT"`    // kvserver listen port

	// Remote key/value store (the cross-device mirror)
	StoreURL            string `mapstructure:"STORE_URL"`
	StoreTimeoutSeconds int    `mapstructure:"STORE_TIMEOUT_SECONDS"`
	// StoreRetries defaults to 0: remote writes are at-most-once, best-effort.
	// The knob exists so the no-retry policy is explicit and testable.
	StoreRetries int `mapstructure:"STORE_RETRIES"`

	// Local durable fallback (per-device source of truth)
	LocalDBPath string `mapstructure:"LOCAL_DB_PATH"`

	// Redis backing for cmd/kvserver
	RedisURL string `mapstructure:"REDIS_URL"`

	// Reports
	ExportPath string `mapstructure:"EXPORT_PATH"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("STORE_URL", "http://localhost:8000")
	viper.SetDefault("STORE_TIMEOUT_SECONDS", 10)
	viper.SetDefault("STORE_RETRIES", 0)
	viper.SetDefault("LOCAL_DB_PATH", "gnt-hotel.db")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("EXPORT_PATH", "./export")

	// Optional .env file for local development; missing file is not an error
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
