package config

import (
	"fmt"
	"os"
	"strconv"

	// this will automatically load your .env file:
	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	Addr  string
	DB    PostgresConfig
	Model ModelConfig
}

type PostgresConfig struct {
	Username string
	Password string
	Host     string
	Port     string
	Name     string
	SSLMode  string
}

type ModelConfig struct {
	Path string
	// Required makes a missing/unreadable model artifact fatal at startup
	// instead of degrading to the fallback scorer.
	Required bool
}

// DSN renders the Postgres connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		p.Username,
		p.Password,
		p.Host,
		p.Port,
		p.Name,
		p.SSLMode,
	)
}

func LoadConfig() (*Config, error) {
	modelRequired := false
	if v := os.Getenv("MODEL_REQUIRED"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("parsing MODEL_REQUIRED: %w", err)
		}
		modelRequired = parsed
	}

	cfg := &Config{
		Addr: getenvDefault("LISTEN_ADDR", "0.0.0.0:8080"),
		DB: PostgresConfig{
			Username: os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PWD"),
			Host:     getenvDefault("POSTGRES_URL", "localhost"),
			Port:     getenvDefault("POSTGRES_PORT", "5432"),
			Name:     getenvDefault("POSTGRES_DB", "veritext"),
			SSLMode:  getenvDefault("POSTGRES_SSLMODE", "disable"),
		},
		Model: ModelConfig{
			Path:     getenvDefault("MODEL_PATH", "model.json"),
			Required: modelRequired,
		},
	}

	return cfg, nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
