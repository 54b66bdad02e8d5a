package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Book    BookConfig
	Sim     SimConfig
	Kafka   KafkaConfig
	Logging LoggingConfig
	Metrics MetricsConfig
}

// BookConfig fixes the engine's capacity constants. Both are set once
// at startup; the registry is sized before any concurrent access.
type BookConfig struct {
	MaxTickers       int
	MaxOrdersPerSide int
}

// SimConfig parameterizes the traffic driver, not the core.
type SimConfig struct {
	Workers         int
	OrdersPerWorker int
	Tickers         []string
}

// KafkaConfig configures the optional trade publisher. Empty brokers
// disable it.
type KafkaConfig struct {
	Brokers []string
	Topic   string
	Buffer  int
}

type LoggingConfig struct {
	Level string
}

type MetricsConfig struct {
	Enabled bool
	Port    int
}

// Load reads configuration from the environment, with a best-effort
// .env file on top.
func Load() (*Config, error) {
	_ = godotenv.Load() // ignore error if .env doesn't exist

	return &Config{
		Book: BookConfig{
			MaxTickers:       getEnvInt("TICKERMATCH_MAX_TICKERS", 1024),
			MaxOrdersPerSide: getEnvInt("TICKERMATCH_MAX_ORDERS_PER_SIDE", 1024),
		},
		Sim: SimConfig{
			Workers:         getEnvInt("TICKERMATCH_WORKERS", 4),
			OrdersPerWorker: getEnvInt("TICKERMATCH_ORDERS_PER_WORKER", 10000),
			Tickers:         getEnvList("TICKERMATCH_TICKERS", nil),
		},
		Kafka: KafkaConfig{
			Brokers: getEnvList("TICKERMATCH_KAFKA_BROKERS", nil),
			Topic:   getEnvString("TICKERMATCH_KAFKA_TOPIC", "tickermatch.trades"),
			Buffer:  getEnvInt("TICKERMATCH_PUBLISH_BUFFER", 4096),
		},
		Logging: LoggingConfig{
			Level: getEnvString("TICKERMATCH_LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			Enabled: getEnvBool("TICKERMATCH_METRICS_ENABLED", false),
			Port:    getEnvInt("TICKERMATCH_METRICS_PORT", 9090),
		},
	}, nil
}

// Validate checks the configuration before anything is built from it.
func (c *Config) Validate() error {
	if c.Book.MaxTickers <= 0 {
		return fmt.Errorf("invalid max tickers: %d", c.Book.MaxTickers)
	}
	if c.Book.MaxOrdersPerSide <= 0 {
		return fmt.Errorf("invalid max orders per side: %d", c.Book.MaxOrdersPerSide)
	}
	if c.Sim.Workers <= 0 {
		return fmt.Errorf("invalid worker count: %d", c.Sim.Workers)
	}
	if c.Sim.OrdersPerWorker <= 0 {
		return fmt.Errorf("invalid orders per worker: %d", c.Sim.OrdersPerWorker)
	}
	if c.Kafka.Buffer <= 0 {
		return fmt.Errorf("invalid publish buffer: %d", c.Kafka.Buffer)
	}
	if c.Metrics.Enabled && (c.Metrics.Port <= 0 || c.Metrics.Port > 65535) {
		return fmt.Errorf("invalid metrics port: %d", c.Metrics.Port)
	}
	return nil
}

// Helper functions for environment variable parsing

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
