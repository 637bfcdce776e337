package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the full process configuration, read from the environment with
// sensible defaults. There is no config file beyond an optional .env.
type Config struct {
	Server     ServerConfig
	MarketData MarketDataConfig
	Redis      RedisConfig
	Logging    LoggingConfig
	Stream     StreamConfig
}

// ServerConfig holds the HTTP API settings
type ServerConfig struct {
	Host           string
	Port           int
	ProductionMode bool
	AllowedOrigins []string
}

// MarketDataConfig holds the upstream candle provider settings
type MarketDataConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	UserAgent      string
}

// RedisConfig enables the shared candle cache. When disabled, an in-process
// cache is used instead.
type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

// LoggingConfig controls the structured logger
type LoggingConfig struct {
	Level  string
	Pretty bool
}

// StreamConfig controls the websocket push loop
type StreamConfig struct {
	RefreshInterval time.Duration
}

// Load reads configuration from the environment, picking up a local .env
// file first when one exists
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Host:           getEnvOrDefault("SERVER_HOST", "0.0.0.0"),
			Port:           getEnvIntOrDefault("SERVER_PORT", 8080),
			ProductionMode: getEnvBoolOrDefault("PRODUCTION_MODE", false),
			AllowedOrigins: getEnvListOrDefault("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		MarketData: MarketDataConfig{
			BaseURL:        getEnvOrDefault("MARKETDATA_BASE_URL", "https://query1.finance.yahoo.com"),
			RequestTimeout: getEnvDurationOrDefault("MARKETDATA_TIMEOUT", 10*time.Second),
			UserAgent:      getEnvOrDefault("MARKETDATA_USER_AGENT", "gold-analysis-engine/1.0"),
		},
		Redis: RedisConfig{
			Enabled:  getEnvBoolOrDefault("REDIS_ENABLED", false),
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: getEnvOrDefault("REDIS_PASSWORD", ""),
			DB:       getEnvIntOrDefault("REDIS_DB", 0),
		},
		Logging: LoggingConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Pretty: getEnvBoolOrDefault("LOG_PRETTY", false),
		},
		Stream: StreamConfig{
			RefreshInterval: getEnvDurationOrDefault("STREAM_REFRESH_INTERVAL", 30*time.Second),
		},
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}
