package config

import (
	"log/slog"
	"os"
	"strconv"
)

type Config struct {
	Port       string
	Env        string
	APIKeyHash string
	RateRPS    float64
	RateBurst  int
}

func Load() Config {
	cfg := Config{
		Port:       getEnv("PORT", "8080"),
		Env:        getEnv("ENV", "development"),
		APIKeyHash: getEnv("API_KEY_HASH", ""),
		RateRPS:    getEnvFloat("RATE_RPS", 5),
		RateBurst:  getEnvInt("RATE_BURST", 10),
	}

	if cfg.Env == "production" && cfg.APIKeyHash == "" {
		slog.Warn("API_KEY_HASH not set — generation endpoints are unauthenticated")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		slog.Warn("invalid float in environment, using fallback", "key", key, "value", v)
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		slog.Warn("invalid int in environment, using fallback", "key", key, "value", v)
	}
	return fallback
}
