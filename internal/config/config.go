// Package config loads the service configuration from SOLWATCH_* environment variables.
package config

import (
	"time"

	"github.com/gabapcia/solwatch/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

const prefix = "SOLWATCH"

type App struct {
	Name     string `envconfig:"NAME" default:"solwatch" validate:"required"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
}

type HTTP struct {
	Addr            string        `envconfig:"ADDR" default:":8080" validate:"required"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`
}

type Webhook struct {
	// Secret is the bearer token Helius sends in the Authorization header.
	Secret string `envconfig:"SECRET" validate:"required"`
}

type Postgres struct {
	DSN      string `envconfig:"DSN" validate:"required"`
	MaxConns int32  `envconfig:"MAX_CONNS" default:"10" validate:"gt=0"`
}

// Redis is optional. Without it redeliveries rely on the signature unique
// key and sends are not rate limited.
type Redis struct {
	Enabled       bool          `envconfig:"ENABLED" default:"false"`
	Addr          string        `envconfig:"ADDR" default:"localhost:6379" validate:"required_if=Enabled true"`
	Username      string        `envconfig:"USERNAME"`
	Password      string        `envconfig:"PASSWORD"`
	DB            int           `envconfig:"DB" default:"0" validate:"gte=0"`
	DoneRetention time.Duration `envconfig:"DONE_RETENTION" default:"168h"`
}

type Telegram struct {
	BotToken   string        `envconfig:"BOT_TOKEN" validate:"required"`
	APIBaseURL string        `envconfig:"API_BASE_URL" default:"https://api.telegram.org" validate:"url"`
	Timeout    time.Duration `envconfig:"TIMEOUT" default:"10s"`
	RetryMax   int           `envconfig:"RETRY_MAX" default:"3" validate:"gte=0"`
	SendRate   int           `envconfig:"SEND_RATE" default:"1" validate:"gt=0"` // messages per second per chat

	// MaxRateLimitWait bounds how long a send waits for the chat budget.
	MaxRateLimitWait time.Duration `envconfig:"MAX_RATE_LIMIT_WAIT" default:"10s"`

	// WebhookSecret is the secret_token passed to setWebhook. Empty disables
	// the check.
	WebhookSecret string `envconfig:"WEBHOOK_SECRET"`
}

type Solana struct {
	RPCURL     string `envconfig:"RPC_URL" validate:"omitempty,url"`
	Commitment string `envconfig:"COMMITMENT" default:"confirmed" validate:"oneof=processed confirmed finalized"`
}

type Conversation struct {
	IdleTTL       time.Duration `envconfig:"IDLE_TTL" default:"30m"`
	SweepInterval time.Duration `envconfig:"SWEEP_INTERVAL" default:"1m"`
}

type Ingest struct {
	MaxProcessingTime time.Duration `envconfig:"MAX_PROCESSING_TIME" default:"2m" validate:"gt=0"`
}

type Telemetry struct {
	Enabled bool `envconfig:"ENABLED" default:"false"`
}

// Config is the whole service configuration. Each section reads variables
// under its own prefix, e.g. SOLWATCH_POSTGRES_DSN.
type Config struct {
	App          App          `envconfig:"APP"`
	HTTP         HTTP         `envconfig:"HTTP"`
	Webhook      Webhook      `envconfig:"WEBHOOK"`
	Postgres     Postgres     `envconfig:"POSTGRES"`
	Redis        Redis        `envconfig:"REDIS"`
	Telegram     Telegram     `envconfig:"TELEGRAM"`
	Solana       Solana       `envconfig:"SOLANA"`
	Conversation Conversation `envconfig:"CONVERSATION"`
	Ingest       Ingest       `envconfig:"INGEST"`
	Telemetry    Telemetry    `envconfig:"TELEMETRY"`
}

// Load reads and validates the configuration.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
