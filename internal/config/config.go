package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the full runtime configuration of the server
type Config struct {
	Server   ServerConfig
	LLM      LLMConfig
	Payment  PaymentConfig
	RabbitMQ RabbitMQConfig

	// CatalogFile is an optional YAML file overriding the built-in catalog
	CatalogFile string
}

// ServerConfig holds HTTP server and logging settings
type ServerConfig struct {
	Port             int
	BasePath         string
	GinMode          string
	LogLevel         string
	LogFormat        string
	Environment      string
	SentryDSN        string
	CORSAllowOrigins []string
	UpstreamTimeout  time.Duration
}

// RabbitMQConfig holds the optional checkout event broker settings
type RabbitMQConfig struct {
	URL   string
	Queue string
}

// Enabled reports whether checkout events should be published
func (c RabbitMQConfig) Enabled() bool {
	return c.URL != ""
}

// Load reads the configuration from environment variables and validates it
func Load() (*Config, error) {
	port, err := getEnvAsInt("PORT", 8080)
	if err != nil {
		return nil, err
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT %d", port)
	}

	timeout, err := getEnvAsDuration("UPSTREAM_TIMEOUT", 60*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:             port,
			BasePath:         getEnv("BASE_PATH", ""),
			GinMode:          getEnv("GIN_MODE", "release"),
			LogLevel:         getEnv("LOG_LEVEL", "info"),
			LogFormat:        getEnv("LOG_FORMAT", "text"),
			Environment:      getEnv("APP_ENV", "development"),
			SentryDSN:        getEnv("SENTRY_DSN", ""),
			CORSAllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
			UpstreamTimeout:  timeout,
		},
		LLM:     GetLLMConfig(),
		Payment: GetPaymentConfig(),
		RabbitMQ: RabbitMQConfig{
			URL:   getEnv("RABBITMQ_URL", ""),
			Queue: getEnv("CHECKOUT_EVENTS_QUEUE", "checkout_events"),
		},
		CatalogFile: getEnv("CATALOG_FILE", ""),
	}

	switch cfg.Server.GinMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("invalid GIN_MODE %q", cfg.Server.GinMode)
	}

	if err := cfg.LLM.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv gets environment variable with fallback default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
