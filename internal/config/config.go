package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment string `env:"ENV" envDefault:"development"`
	Port        string `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"INFO"`
	LogFile     string `env:"LOG_FILE"`

	// Email Provider Configuration
	ResendAPIKey string `env:"RESEND_API_KEY"`
	CompanyEmail string `env:"COMPANY_EMAIL" envDefault:"divgaze@gmail.com"`
	NotifyFrom   string `env:"NOTIFY_FROM" envDefault:"Divgaze Website <contact@divgaze.com>"`
	ConfirmFrom  string `env:"CONFIRM_FROM" envDefault:"Divgaze Team <contact@divgaze.com>"`

	// CORS Configuration
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"https://divgaze.com,https://www.divgaze.com,http://localhost:3000,http://localhost:5173"`

	// Contact Form Rate Limiting
	ContactRateLimit  int           `env:"CONTACT_RATE_LIMIT" envDefault:"5"`
	ContactRateWindow time.Duration `env:"CONTACT_RATE_WINDOW" envDefault:"60s"`

	// Server-wide Rate Limiting
	GlobalRPS   int `env:"GLOBAL_RATE_RPS" envDefault:"10"`
	GlobalBurst int `env:"GLOBAL_RATE_BURST" envDefault:"20"`

	// Timezone used for the receipt timestamp embedded in outbound emails
	ContactTimezone string `env:"CONTACT_TIMEZONE" envDefault:"Asia/Colombo"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	// Load .env file if it exists. The environment-specific file is tried
	// first, then a plain .env. godotenv does not overwrite variables that
	// are already set, so the process environment always wins.
	envLocations := []string{".env"}
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}

	for _, loc := range envLocations {
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Set default log file if not set
	if cfg.LogFile == "" {
		if cfg.Environment == "production" {
			cfg.LogFile = "/app/logs/api.log"
		} else {
			cfg.LogFile = "./logs/api.log"
		}
	}

	// Ensure log directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return cfg, nil
}
