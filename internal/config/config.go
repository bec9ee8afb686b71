package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingTelegramToken = errors.New("TELEGRAM_API_TOKEN is not set")

// Storage backend names.
const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string `mapstructure:"env"`      // current application environment (local, dev, prod etc)
	TelegramAPIToken string `mapstructure:"-"`        // Telegram API token loaded from environment
	DataDir          string `mapstructure:"data_dir"` // directory with per-user dictionary and settings files
	Storage          string `mapstructure:"storage"`  // storage backend: "file" or "postgres"
	DB               DB     `mapstructure:"database"` // database configuration section
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // connection string loaded from environment
	MaxConnections  int32         `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// Load reads configuration from config files and environment variables.
// A .env file is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	v.SetDefault("env", "local")
	v.SetDefault("data_dir", "data")
	v.SetDefault("storage", StorageFile)
	v.SetDefault("database.max_connections", 10)
	v.SetDefault("database.max_conn_lifetime", "30s")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	cfg.DB.URL = v.GetString("database_url")

	if cfg.Storage == StoragePostgres && cfg.DB.URL == "" {
		return nil, errors.New("storage is postgres but DATABASE_URL is not set")
	}

	return &cfg, nil
}
