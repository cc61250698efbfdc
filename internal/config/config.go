package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Costbook"`
		Env  string `envconfig:"APP_ENV" default:"dev"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"costbook"`
		Migrate  bool   `envconfig:"DB_MIGRATE" default:"true"`
	}

	Server struct {
		Timeout     time.Duration `envconfig:"SERVER_TIMEOUT" default:"60s"`
		CORSOrigins []string      `envconfig:"CORS_ORIGINS" default:"http://localhost:3000"`
	}

	Auth struct {
		// Empty disables bearer token checks.
		JWTSecret string `envconfig:"JWT_SECRET"`
	}

	Project struct {
		Address string `envconfig:"PROJECT_ADDRESS" default:""`
		Company string `envconfig:"PROJECT_COMPANY" default:""`
		// Postal address of the invoicee printed in the purchase order header.
		CompanyAddress string `envconfig:"PROJECT_COMPANY_ADDRESS" default:""`
		ABN            string `envconfig:"PROJECT_ABN" default:""`
		Email          string `envconfig:"PROJECT_EMAIL" default:""`
		// Storage path of the letterhead PDF that purchase orders are drawn on.
		Letterhead string `envconfig:"PROJECT_LETTERHEAD" default:"letterhead/letterhead.pdf"`
	}

	Storage struct {
		Root    string `envconfig:"STORAGE_ROOT" default:"./media"`
		BaseURL string `envconfig:"STORAGE_BASE_URL" default:"/media"`
	}

	Mail struct {
		Host     string `envconfig:"SMTP_HOST" default:"localhost"`
		Port     int    `envconfig:"SMTP_PORT" default:"587"`
		Username string `envconfig:"SMTP_USERNAME"`
		Password string `envconfig:"SMTP_PASSWORD"`
		From     string `envconfig:"MAIL_FROM" default:"accounts@example.com"`
	}

	Xero struct {
		ClientID       string        `envconfig:"XERO_CLIENT_ID"`
		ClientSecret   string        `envconfig:"XERO_CLIENT_SECRET"`
		TokenURL       string        `envconfig:"XERO_TOKEN_URL" default:"https://identity.xero.com/connect/token"`
		BaseURL        string        `envconfig:"XERO_BASE_URL" default:"https://api.xero.com/api.xro/2.0"`
		Scopes         []string      `envconfig:"XERO_SCOPES" default:"accounting.transactions,accounting.contacts,accounting.attachments"`
		DefaultAccount string        `envconfig:"XERO_DEFAULT_ACCOUNT" default:"300"`
		CallsPerWindow int           `envconfig:"XERO_CALLS_PER_WINDOW" default:"60"`
		Window         time.Duration `envconfig:"XERO_WINDOW" default:"60s"`
	}

	Metrics struct {
		Enabled bool `envconfig:"METRICS_ENABLED" default:"true"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
