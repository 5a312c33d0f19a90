package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Environment
	GoEnv string `env:"GO_ENV" default:"development"`

	// Service Ports
	HTTPPort int `env:"HTTP_PORT" default:"8080"`

	// Database
	DatabaseURL string `env:"DATABASE_URL" required:"true"`

	// Authentication
	JWTSecret      string        `env:"JWT_SECRET" required:"true"`
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL" default:"24h"`

	// Redis (realtime fan-out; empty address disables it)
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" default:"0"`

	// Rate limiting
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" default:"10"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" default:"20"`

	// Development
	LogLevel    string   `env:"LOG_LEVEL" default:"debug"`
	LogFormat   string   `env:"LOG_FORMAT" default:"text"`
	CORSOrigins []string `env:"CORS_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

// LoadConfig loads configuration from environment variables, reading a
// .env file first when one exists.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		// No .env file is fine; system env vars still apply.
		fmt.Printf("Warning: .env file not found: %v\n", err)
	}

	config := &Config{}

	if err := loadEnvString(&config.GoEnv, "GO_ENV", "development"); err != nil {
		return nil, err
	}
	if err := loadEnvInt(&config.HTTPPort, "HTTP_PORT", 8080); err != nil {
		return nil, err
	}

	// Database
	if err := loadEnvStringRequired(&config.DatabaseURL, "DATABASE_URL"); err != nil {
		return nil, err
	}

	// Authentication
	if err := loadEnvStringRequired(&config.JWTSecret, "JWT_SECRET"); err != nil {
		return nil, err
	}
	if err := loadEnvDuration(&config.AccessTokenTTL, "ACCESS_TOKEN_TTL", 24*time.Hour); err != nil {
		return nil, err
	}

	// Redis
	if err := loadEnvString(&config.RedisAddr, "REDIS_ADDR", ""); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.RedisPassword, "REDIS_PASSWORD", ""); err != nil {
		return nil, err
	}
	if err := loadEnvInt(&config.RedisDB, "REDIS_DB", 0); err != nil {
		return nil, err
	}

	// Rate limiting
	if err := loadEnvFloat(&config.RateLimitRPS, "RATE_LIMIT_RPS", 10); err != nil {
		return nil, err
	}
	if err := loadEnvInt(&config.RateLimitBurst, "RATE_LIMIT_BURST", 20); err != nil {
		return nil, err
	}

	// Development
	if err := loadEnvString(&config.LogLevel, "LOG_LEVEL", "debug"); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.LogFormat, "LOG_FORMAT", "text"); err != nil {
		return nil, err
	}
	if err := loadEnvStringSlice(&config.CORSOrigins, "CORS_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}); err != nil {
		return nil, err
	}

	return config, nil
}

// Helper functions for type conversion and validation
func loadEnvString(target *string, key, defaultValue string) error {
	if value := os.Getenv(key); value != "" {
		*target = value
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvStringRequired(target *string, key string) error {
	value := os.Getenv(key)
	if value == "" {
		return fmt.Errorf("required environment variable %s is not set", key)
	}
	*target = value
	return nil
}

func loadEnvInt(target *int, key string, defaultValue int) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvFloat(target *float64, key string, defaultValue float64) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid float value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvDuration(target *time.Duration, key string, defaultValue time.Duration) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvStringSlice(target *[]string, key string, defaultValue []string) error {
	if value := os.Getenv(key); value != "" {
		*target = strings.Split(value, ",")
		for i, v := range *target {
			(*target)[i] = strings.TrimSpace(v)
		}
	} else {
		*target = defaultValue
	}
	return nil
}
