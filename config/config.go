package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Store drivers accepted in EVENTS_STORE.
const (
	StoreDynamoDB = "dynamodb"
	StoreBadger   = "badger"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `env:"GO_ENV,default=development"`
	Port        string `env:"PORT,default=8080"`
	LogLevel    string `env:"LOG_LEVEL,default=info" validate:"oneof=debug info warn error"`

	StoreDriver string `env:"EVENTS_STORE,default=dynamodb" validate:"oneof=dynamodb badger postgres sqlite"`
	EventsTable string `env:"EVENTS_TABLE,default=events" validate:"required_if=StoreDriver dynamodb"`

	// DynamoDB. Endpoint and static keys are only needed against DynamoDB Local.
	AWSRegion          string `env:"AWS_REGION"`
	DynamoDBEndpoint   string `env:"DYNAMODB_ENDPOINT"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`

	BadgerPath string `env:"BADGER_PATH" validate:"required_if=StoreDriver badger"`
	DBUrl      string `env:"DATABASE_URL" validate:"required_if=StoreDriver postgres"`
	SQLitePath string `env:"SQLITE_PATH" validate:"required_if=StoreDriver sqlite"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT,default=10s" validate:"gt=0"`
	CORSOrigins    string        `env:"CORS_ALLOWED_ORIGINS"`
}

var validate = validator.New()

// Load loads configuration from environment variables.
// Outside production a .env file is read first; a missing file is not an error
// because deployed environments supply real variables.
func Load() (*Config, error) {
	goEnv := os.Getenv("GO_ENV")
	if goEnv != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks driver-specific requirements.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas, dropping blanks.
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// IsProduction reports whether GO_ENV is production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
