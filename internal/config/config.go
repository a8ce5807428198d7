package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Local storage (always available)
	DataDir string `mapstructure:"DATA_DIR"`

	// Sync backend (optional). When both URLs are set AND the connections
	// initialize at startup, records live in the shared document store and
	// changes fan out to every device. Otherwise the app runs local-only
	// for the lifetime of the process.
	SyncDatabaseURL string `mapstructure:"SYNC_DATABASE_URL"`
	SyncRedisURL    string `mapstructure:"SYNC_REDIS_URL"`

	// Auth — single operator
	OperatorUsername     string `mapstructure:"OPERATOR_USERNAME"`
	OperatorPasswordHash string `mapstructure:"OPERATOR_PASSWORD_HASH"`
	JWTSecret            string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours   int    `mapstructure:"JWT_EXPIRATION_HOURS"`
}

// SyncConfigurado reports whether sync credentials are present. This is only
// the static half of the activation check: the storage factory still has to
// connect successfully, and a failed connection leaves the process in
// local-only mode for the rest of its lifetime (no runtime retry).
func (c *Config) SyncConfigurado() bool {
	return c.SyncDatabaseURL != "" && c.SyncRedisURL != ""
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("SYNC_DATABASE_URL", "")
	viper.SetDefault("SYNC_REDIS_URL", "")
	viper.SetDefault("OPERATOR_USERNAME", "operador")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 24)

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
