package config

import (
	"os"
	"strings"
)

// Config holds the market service configuration, loaded from environment
// variables with sensible development defaults.
type Config struct {
	ServiceName    string
	Environment    string
	LogLevel       string
	HTTPPort       string
	JaegerEndpoint string
	KafkaBrokers   []string
	SeedDemo       bool
}

// Load reads the service configuration from the environment
func Load() *Config {
	cfg := &Config{
		ServiceName:    getEnv("OTEL_SERVICE_NAME", "market-service"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
		SeedDemo:       getEnv("SEED_DEMO", "false") == "true",
	}

	// Kafka publishing is optional; no brokers means events are disabled.
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	return cfg
}

// IsDevelopment reports whether the service runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
