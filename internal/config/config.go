package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port           int    `mapstructure:"PORT"`
	Env            string `mapstructure:"APP_ENV"` // development | production
	WorkerPoolSize int    `mapstructure:"WORKER_POOL_SIZE"`

	// Storage
	DataPath  string `mapstructure:"DATA_PATH"`  // JSON key-value data file
	SpoolPath string `mapstructure:"SPOOL_PATH"` // rendered receipt PDFs

	// Printing
	PrintCommand        string `mapstructure:"PRINT_COMMAND"` // external command; empty = spool only
	PrintTimeoutSeconds int    `mapstructure:"PRINT_TIMEOUT_SECONDS"`

	// SMTP (receipt emails)
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
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
	viper.SetDefault("WORKER_POOL_SIZE", 2)
	viper.SetDefault("DATA_PATH", "data/pos.json")
	viper.SetDefault("SPOOL_PATH", "data/receipts")
	viper.SetDefault("PRINT_COMMAND", "")
	// The print surface has no reliable completion signal; after this window
	// elapses the print is declared successful so the sale can close.
	viper.SetDefault("PRINT_TIMEOUT_SECONDS", 30)
	viper.SetDefault("SMTP_PORT", 587)

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
