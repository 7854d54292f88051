package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Storage drivers for the snapshot slot
const (
	StorageFile     = "file"
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

type Config struct {
	Port        string
	FrontendURL string
	LogLevel    string
	// Persistence Configuration
	StorageDriver         string
	DataDir               string
	DBUrl                 string
	RedisURL              string
	RedisPassword         string
	PersistTimeoutSeconds int
	// Mock scoring range
	MatchScoreMin int
	MatchScoreMax int
	// Rate Limiting Configuration
	RateLimitWindowSeconds  int
	RateLimitLoginThreshold int
}

func LoadConfig() (*Config, error) {
	// Load .env file (only present locally; ignored when missing)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
		// Persistence Configuration
		StorageDriver:         strings.ToLower(getEnv("STORAGE_DRIVER", StorageFile)),
		DataDir:               getEnv("DATA_DIR", "./data"),
		DBUrl:                 getEnv("DATABASE_URL", ""),
		RedisURL:              getEnv("REDIS_URL", ""),
		RedisPassword:         getEnv("REDIS_PASSWORD", ""),
		PersistTimeoutSeconds: getEnvInt("PERSIST_TIMEOUT_SECONDS", 5),
		// Mock scoring range (uniform draw, inclusive)
		MatchScoreMin: getEnvInt("MATCH_SCORE_MIN", 60),
		MatchScoreMax: getEnvInt("MATCH_SCORE_MAX", 100),
		// Rate Limiting Configuration
		RateLimitWindowSeconds:  getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitLoginThreshold: getEnvInt("RATE_LIMIT_LOGIN_THRESHOLD", 10),
	}

	switch cfg.StorageDriver {
	case StorageFile, StorageMemory, StoragePostgres, StorageRedis:
	default:
		log.Printf("WARNING: unknown STORAGE_DRIVER %q, falling back to %q", cfg.StorageDriver, StorageFile)
		cfg.StorageDriver = StorageFile
	}

	if cfg.StorageDriver == StoragePostgres && cfg.DBUrl == "" {
		log.Println("WARNING: STORAGE_DRIVER=postgres but DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.StorageDriver == StorageRedis && cfg.RedisURL == "" {
		log.Println("WARNING: STORAGE_DRIVER=redis but REDIS_URL is missing. Application may fail to connect.")
	}

	if cfg.MatchScoreMin > cfg.MatchScoreMax {
		cfg.MatchScoreMin, cfg.MatchScoreMax = cfg.MatchScoreMax, cfg.MatchScoreMin
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
