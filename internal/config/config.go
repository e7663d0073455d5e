package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode bool   `env:"TEST_MODE"`
	Port       uint16 `env:"PORT" envDefault:"9090"`

	Secret        string `env:"SECRET,required"`
	PostgresqlURL string `env:"POSTGRESQL_URL,required"`

	BcryptHasherCost                  int `env:"BCRYPT_HASHER_COST" envDefault:"10"`
	PasswordResetValidDurationMinutes int `env:"PASSWORD_RESET_VALID_DURATION_MINUTES" envDefault:"30"`

	AllowedEmailSuffix string  `env:"ALLOWED_EMAIL_SUFFIX" envDefault:"@onmyowntechnology.com"`
	FrontendResetBase  url.URL `env:"FRONTEND_RESET_BASE,required"`
	EmailSender        string  `env:"EMAIL_SENDER,required"`

	AwsRegion          string `env:"AWS_REGION" envDefault:"ap-south-1"`
	AwsAccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	AwsSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	SentryDSN      string   `env:"SENTRY_DSN"`
}

func (c *Config) PasswordResetValidDuration() time.Duration {
	return time.Duration(c.PasswordResetValidDurationMinutes) * time.Minute
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("could not load configuration: %w", err)
	}
	return config, nil
}
