package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is loaded once at startup and treated as immutable afterwards.
// Secrets are injected into components at construction, never read from
// global scope inside request handling.
type Config struct {
	Port string `envconfig:"PORT" default:"8080"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`

	PostgresHost     string `envconfig:"POSTGRES_HOST" default:"localhost"`
	PostgresPort     int    `envconfig:"POSTGRES_PORT" default:"5432"`
	PostgresUser     string `envconfig:"POSTGRES_USER" default:"postgres"`
	PostgresPassword string `envconfig:"POSTGRES_PASSWORD" default:"postgres"`
	PostgresDB       string `envconfig:"POSTGRES_DB" default:"skinet"`
	MigrationsPath   string `envconfig:"MIGRATIONS_PATH" default:"./migrations"`

	StripeSecretKey     string `envconfig:"STRIPE_SECRET_KEY" required:"true"`
	StripeWebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET" required:"true"`
	PaymentCurrency     string `envconfig:"PAYMENT_CURRENCY" default:"usd"`

	// Comma-separated broker list; empty disables status-event publishing.
	KafkaBrokers string `envconfig:"KAFKA_BROKERS" default:""`

	// When true, PaymentReceived is terminal and a late payment_failed
	// webhook no longer overwrites it.
	WebhookMonotoneStatus bool `envconfig:"WEBHOOK_MONOTONE_STATUS" default:"false"`

	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
