package dto

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DatabaseURL      string
	RedisURL         string
	RedisDialTimeout time.Duration
	JWTSecret        string
	ListenAddress    string
	LocationTTL      time.Duration
	RouteCacheTTL    time.Duration
	CORSOrigins      []string
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	return Config{
		DatabaseURL:      getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=bus_tracker port=5432"),
		RedisURL:         getEnv("REDIS_URL", "redis://localhost:6379"),
		RedisDialTimeout: getDurationEnv("REDIS_DIAL_TIMEOUT_SECONDS", 2*time.Second),
		JWTSecret:        getEnv("JWT_SECRET", "change-this-in-production"),
		ListenAddress:    getEnv("LISTEN_ADDRESS", ":8000"),
		LocationTTL:      getDurationEnv("LOCATION_TTL_SECONDS", 60*time.Second),
		RouteCacheTTL:    getDurationEnv("ROUTE_CACHE_TTL_SECONDS", time.Hour),
		CORSOrigins:      splitOrigins(getEnv("CORS_ORIGINS", "*")),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	seconds, err := strconv.Atoi(value)
	if err != nil {
		logrus.Errorf("Invalid value for %s: %v", key, err)
		return fallback
	}
	return time.Duration(seconds) * time.Second
}

func splitOrigins(value string) []string {
	parts := strings.Split(value, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origins = append(origins, strings.TrimSpace(part))
	}
	return origins
}
