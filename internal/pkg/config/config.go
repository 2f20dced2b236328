package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, queue URL, etc.), security settings
// - default: Values common across all environments (timeouts, log format, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Auth    AuthConfig
	Catalog CatalogConfig
	Queue   QueueConfig
	CORS    CORSConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port    string `envconfig:"PORT" required:"true"`
	Version string `envconfig:"SERVICE_VERSION" default:"1.0.0"`
}

// AuthConfig carries the raw credential table. APIKeys is a JSON array of
// {key, name, created_at, expires_at} objects; expires_at may be null.
type AuthConfig struct {
	APIKeys string `envconfig:"AUTH_API_KEYS" required:"true"`
}

type CatalogConfig struct {
	BaseURL       string        `envconfig:"CATALOG_BASE_URL" required:"true"`
	LookupTimeout time.Duration `envconfig:"CATALOG_LOOKUP_TIMEOUT" default:"5s"`
	MaxInFlight   int           `envconfig:"CATALOG_MAX_IN_FLIGHT" default:"8"`
}

type QueueConfig struct {
	QueueURL string `envconfig:"SQS_QUEUE_URL" required:"true"`
	Region   string `envconfig:"AWS_REGION" default:"us-east-1"`
	// Endpoint overrides the SQS endpoint for local stacks (localstack etc.)
	Endpoint string `envconfig:"SQS_ENDPOINT" default:""`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Api-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:    "8889", // Test port
			Version: "test",
		},
		Auth: AuthConfig{
			APIKeys: `[{"key":"test-key-123","name":"test client","created_at":"2025-01-01T00:00:00Z","expires_at":null}]`,
		},
		Catalog: CatalogConfig{
			BaseURL:       "http://localhost:18081",
			LookupTimeout: 5 * time.Second,
			MaxInFlight:   8,
		},
		Queue: QueueConfig{
			QueueURL: "http://localhost:14566/000000000000/order-assembly-test",
			Region:   "us-east-1",
			Endpoint: "http://localhost:14566",
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8080"},
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Api-Key"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
	}
}
