package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Relay  RelayConfig
	Remote RemoteConfig
	ML     MLConfig
	Redis  RedisConfig
	Notify NotifyConfig
	App    AppConfig
}

type RelayConfig struct {
	Port string
}

type RemoteConfig struct {
	BaseURL string
}

type MLConfig struct {
	URL     string
	Timeout time.Duration
}

type RedisConfig struct {
	Addr string
	DB   int
}

type NotifyConfig struct {
	TTL time.Duration
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Relay: RelayConfig{
			Port: getEnv("RELAY_PORT", "8080"),
		},
		Remote: RemoteConfig{
			BaseURL: getEnv("API_BASE_URL", "http://localhost:8080/api"),
		},
		ML: MLConfig{
			URL:     getEnv("ML_URL", "http://localhost:8000/generate_projects"),
			Timeout: time.Duration(getEnvAsInt("GENERATION_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Redis: RedisConfig{
			Addr: getEnv("REDIS_ADDR", "localhost:6379"),
			DB:   getEnvAsInt("REDIS_DB", 0),
		},
		Notify: NotifyConfig{
			TTL: time.Duration(getEnvAsInt("NOTIFY_TTL_MS", 2500)) * time.Millisecond,
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Relay.Port == "" {
		return fmt.Errorf("RELAY_PORT is required")
	}

	if c.Remote.BaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}

	if c.ML.URL == "" {
		return fmt.Errorf("ML_URL is required")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}
