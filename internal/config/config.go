package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	SQLitePath  string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	SwaggerHost string
	ResetDB     bool
}

// Load builds Config from the environment with sensible defaults. A .env file
// in the working directory is read first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:  getEnv("SERVER_PORT", "3001"),
		SQLitePath:  getEnv("SQLITE_PATH", "database.sqlite"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:     getEnvInt("REDIS_DB", 0),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),
		ResetDB:     os.Getenv("RESET_DB") == "true",
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
