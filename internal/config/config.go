package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port            string
	AllowedOrigins  []string
	JWTSecret       string
	TokenTTL        time.Duration
	SessionTTL      time.Duration
	CleanupInterval time.Duration
	StorageType     string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	SearchDepth     int
}

var AppConfig *Config

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")

	// CORS
	allowedOriginsStr := GetEnv("ALLOWED_ORIGINS", "")

	// Build allowed origins list (Localhost + CSV values)
	allowedOrigins := []string{
		"http://localhost:5173", // Local development
	}
	if allowedOriginsStr != "" {
		extras := strings.Split(allowedOriginsStr, ",")
		for _, origin := range extras {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	// Security
	jwtSecret := GetEnv("JWT_SECRET", "your-secret-key-change-this-in-production")
	tokenTTLMin := GetEnvAsInt("TOKEN_TTL_MINUTES", 1440)

	// Sessions
	sessionTTLMin := GetEnvAsInt("SESSION_TTL_MINUTES", 120)
	cleanupIntervalMin := GetEnvAsInt("CLEANUP_INTERVAL_MINUTES", 10)

	// Storage
	storageType := GetEnv("STORAGE_TYPE", "memory")
	redisAddr := GetEnv("REDIS_URL", "localhost:6379")
	redisPassword := GetEnv("REDIS_PASSWORD", "")
	redisDB := GetEnvAsInt("REDIS_DB", 0)

	// Bot. 0 means the difficulty preset decides the depth.
	searchDepth := GetEnvAsInt("SEARCH_DEPTH", 0)

	AppConfig = &Config{
		Port:            port,
		AllowedOrigins:  allowedOrigins,
		JWTSecret:       jwtSecret,
		TokenTTL:        time.Duration(tokenTTLMin) * time.Minute,
		SessionTTL:      time.Duration(sessionTTLMin) * time.Minute,
		CleanupInterval: time.Duration(cleanupIntervalMin) * time.Minute,
		StorageType:     storageType,
		RedisAddr:       redisAddr,
		RedisPassword:   redisPassword,
		RedisDB:         redisDB,
		SearchDepth:     searchDepth,
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
