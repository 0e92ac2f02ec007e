package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the gateway's runtime configuration. Values come from an
// optional YAML file, overridden by environment variables; a .env file
// is loaded first so local development needs no exported shell state.
type Config struct {
	Addr           string `yaml:"addr"`
	BackendBaseURL string `yaml:"backendBaseUrl"`
	JWTSecret      string `yaml:"jwtSecret"`
	AllowOrigins   string `yaml:"allowOrigins"`

	SendGridAPIKey string `yaml:"sendgridApiKey"`
	MailFromName   string `yaml:"mailFromName"`
	MailFromEmail  string `yaml:"mailFromEmail"`
}

func defaults() Config {
	return Config{
		Addr:           ":8080",
		BackendBaseURL: "http://localhost:9000",
		AllowOrigins:   "*",
		MailFromName:   "Storelane",
		MailFromEmail:  "orders@storelane.example",
	}
}

// Load reads configuration in ascending precedence: defaults, the YAML
// file named by STORELANE_CONFIG (if any), then environment variables.
func Load() (Config, error) {
	godotenv.Load()

	cfg := defaults()

	if path := os.Getenv("STORELANE_CONFIG"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	overlay(&cfg.Addr, "STORELANE_ADDR")
	overlay(&cfg.BackendBaseURL, "STORELANE_BACKEND_URL")
	overlay(&cfg.JWTSecret, "STORELANE_JWT_SECRET")
	overlay(&cfg.AllowOrigins, "STORELANE_ALLOW_ORIGINS")
	overlay(&cfg.SendGridAPIKey, "SENDGRID_API_KEY")
	overlay(&cfg.MailFromName, "STORELANE_MAIL_FROM_NAME")
	overlay(&cfg.MailFromEmail, "STORELANE_MAIL_FROM_EMAIL")

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("STORELANE_JWT_SECRET is required")
	}
	return cfg, nil
}

func overlay(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
