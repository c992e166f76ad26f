package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Server    ServerConfig    `json:"server"`
	Database  DatabaseConfig  `json:"database"`
	SMTP      SMTPConfig      `json:"smtp"`
	RateLimit RateLimitConfig `json:"rate_limit"`
}

type ServerConfig struct {
	Port           string   `json:"port"`
	Environment    string   `json:"environment"`
	AllowedOrigins []string `json:"allowed_origins"`
}

type DatabaseConfig struct {
	Driver string `json:"driver"` // "postgres" or "sqlite"
	DSN    string `json:"dsn"`
}

type SMTPConfig struct {
	Host   string `json:"host"`
	Port   int    `json:"port"`
	Secure bool   `json:"secure"`
	User   string `json:"user"`
	Pass   string `json:"pass"`
	From   string `json:"from"`
	To     string `json:"to"`
}

type RateLimitConfig struct {
	Strategy  string `json:"strategy"` // "postgres" or "memory"
	MaxPerDay int    `json:"max_per_day"`
}

// Load reads the JSON config file, then lets environment variables override
// the values that are secrets or deployment-specific. Credentials never live
// in the config file in production.
func Load(path string) (*Config, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(file, &config); err != nil {
		return nil, err
	}

	applyEnvOverrides(&config)
	applyDefaults(&config)

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("SMTP_HOST"); v != "" {
		cfg.SMTP.Host = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.SMTP.Port = p
		}
	}
	if v := os.Getenv("SMTP_USER"); v != "" {
		cfg.SMTP.User = v
	}
	if v := os.Getenv("SMTP_PASS"); v != "" {
		cfg.SMTP.Pass = v
	}
	if v := os.Getenv("CONTACT_FROM"); v != "" {
		cfg.SMTP.From = v
	}
	if v := os.Getenv("CONTACT_TO"); v != "" {
		cfg.SMTP.To = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "postgres"
	}
	if cfg.RateLimit.Strategy == "" {
		cfg.RateLimit.Strategy = "postgres"
	}
	if cfg.RateLimit.MaxPerDay <= 0 {
		cfg.RateLimit.MaxPerDay = 5
	}
	if cfg.SMTP.Port == 0 {
		cfg.SMTP.Port = 587
	}
}

func (c *Config) validate() error {
	if c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required (or set DATABASE_DSN)")
	}
	if c.Database.Driver != "postgres" && c.Database.Driver != "sqlite" {
		return fmt.Errorf("database.driver must be postgres or sqlite, got %q", c.Database.Driver)
	}
	if c.RateLimit.Strategy != "postgres" && c.RateLimit.Strategy != "memory" {
		return fmt.Errorf("rate_limit.strategy must be postgres or memory, got %q", c.RateLimit.Strategy)
	}
	// Mail can stay unconfigured in dev; the server refuses to start without
	// it in production since the contact form would silently go nowhere.
	if c.Server.Environment == "production" && (c.SMTP.Host == "" || c.SMTP.To == "") {
		return fmt.Errorf("smtp.host and smtp.to are required in production")
	}
	return nil
}

// MailEnabled reports whether the SMTP transport is configured.
func (c *Config) MailEnabled() bool {
	return c.SMTP.Host != "" && c.SMTP.To != ""
}
