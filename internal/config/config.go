package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all process-wide settings. It is built once at startup and
// injected into the components that need it; nothing reads the environment
// after Load returns.
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

const defaultTokenTTLMinutes = 105

func Load() *Config {
	return &Config{
		Port:       getenv("PORT", "8080"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		TokenTTL:   time.Duration(getenvInt("TOKEN_TTL_MINUTES", defaultTokenTTLMinutes)) * time.Minute,
		BcryptCost: getenvInt("BCRYPT_COST", 0), // 0 lets the hasher pick its default
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
