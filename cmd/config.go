package cmd

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every runtime setting of the service.
// Values come from environment variables; a local .env file is loaded first
// when present.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST,required"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER,required"`
	DBPassword string `env:"DB_PASSWORD,required"`
	DBName     string `env:"DB_NAME,required"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// PublicBaseURL is the absolute prefix for notification deep links,
	// e.g. https://app.example.com.
	PublicBaseURL string `env:"PUBLIC_BASE_URL,required"`

	// FCMCredentialsFile points to the Firebase service account JSON.
	// Leave empty to run without push delivery (notifications are logged).
	FCMCredentialsFile string `env:"FCM_CREDENTIALS_FILE"`

	// PositionFreshness is how old a driver position may be before the
	// tracking view reports it as stale.
	PositionFreshness time.Duration `env:"POSITION_FRESHNESS" envDefault:"30s"`
}

// ParseConfig reads the configuration from the environment.
func ParseConfig() (Config, error) {
	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return config, nil
}

// DSN renders the Postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
