package config

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	DSN      string `mapstructure:"dsn"`
	FilePath string `mapstructure:"file_path"`
}

type AuthConfig struct {
	Secret   string        `mapstructure:"secret"`
	TokenTTL time.Duration `mapstructure:"token_ttl"`
}

type LogConfig struct {
	Level  string
	Pretty bool
}

// Load builds the process configuration once at startup. Values come from a
// .env file when present, then from the environment, then from defaults.
func Load() (*Config, error) {
	// A missing .env file is fine; the environment may carry everything.
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.file_path", "./data/webchat.db")
	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.token_ttl", "30m")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	v.BindEnv("server.host", "HOST")
	v.BindEnv("server.port", "PORT")
	v.BindEnv("database.driver", "DB_DRIVER")
	v.BindEnv("database.dsn", "SERVICE_URI")
	v.BindEnv("database.file_path", "DB_FILE_PATH")
	v.BindEnv("auth.secret", "AUTH_SECRET")
	v.BindEnv("auth.token_ttl", "AUTH_TOKEN_TTL")
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.pretty", "LOG_PRETTY")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Signing key material is fatal at startup, not per-request.
	if cfg.Auth.Secret == "" {
		return nil, errors.New("AUTH_SECRET is not set")
	}
	if cfg.Database.Driver == "mysql" && cfg.Database.DSN == "" {
		return nil, errors.New("SERVICE_URI is not set")
	}

	return &cfg, nil
}
