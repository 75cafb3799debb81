package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env         string
	Port        string
	DatabaseDSN string
	JWTSecret   string
	AdminAPIKey string
	Gateway     Gateway
	Log         Log
}

// Gateway holds the payment provider credentials. KeySecret signs the
// callback check, so a missing value is a hard startup failure.
type Gateway struct {
	BaseURL   string
	KeyID     string
	KeySecret string
	Currency  string
}

type Log struct {
	Level      string
	Output     string // "stdout" or "file"
	FilePath   string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:         getEnv("APP_ENV", "dev"),
		Port:        getEnv("APP_PORT", "8080"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		AdminAPIKey: os.Getenv("ADMIN_API_KEY"),
		Gateway: Gateway{
			BaseURL:   getEnv("RAZORPAY_API_URL", "https://api.razorpay.com"),
			KeyID:     os.Getenv("RAZORPAY_KEY_ID"),
			KeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
			Currency:  getEnv("RAZORPAY_CURRENCY", "INR"),
		},
		Log: Log{
			Level:      getEnv("LOG_LEVEL", "info"),
			Output:     getEnv("LOG_OUTPUT", "stdout"),
			FilePath:   getEnv("LOG_FILE", "logs/app.log"),
			MaxSize:    getEnvInt("LOG_MAX_SIZE", 100),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 3),
			MaxAge:     getEnvInt("LOG_MAX_AGE", 28),
		},
	}

	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("DATABASE_DSN is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	if cfg.Gateway.KeyID == "" || cfg.Gateway.KeySecret == "" {
		return nil, fmt.Errorf("razorpay configuration missing")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
