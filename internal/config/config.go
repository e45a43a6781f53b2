// Package config loads service configuration from the environment. The
// shared token secret and store settings are explicit values handed to the
// components at construction; nothing reads the environment after startup.
package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const defaultProtectedMessage = "https://www.youtube.com/watch?v=jQONlTY81-g"

type Config struct {
	Env                  string
	Port                 string
	DBDriver             string
	DBURL                string
	AuthSecret           string
	TokenExpirationHours int
	BcryptCost           int
	ProtectedMessage     string
}

// Load reads configuration from the environment. AUTH_SECRET is required;
// everything else has a development default. TOKEN_EXPIRATION_HOURS of 0
// issues tokens without expiry.
func Load() (*Config, error) {
	cfg := &Config{
		Env:                  getEnv("ENV", "development"),
		Port:                 getEnv("PORT", "3090"),
		DBDriver:             getEnv("DB_DRIVER", DriverSQLite),
		DBURL:                getEnv("DB_URL", "file:authkit.db"),
		AuthSecret:           os.Getenv("AUTH_SECRET"),
		TokenExpirationHours: getEnvAsInt("TOKEN_EXPIRATION_HOURS", 0),
		BcryptCost:           getEnvAsInt("BCRYPT_COST", 0),
		ProtectedMessage:     getEnv("PROTECTED_MESSAGE", defaultProtectedMessage),
	}

	if cfg.AuthSecret == "" {
		return nil, fmt.Errorf("missing required environment variable: AUTH_SECRET")
	}

	if cfg.DBDriver != DriverSQLite && cfg.DBDriver != DriverPostgres {
		return nil, fmt.Errorf("unsupported DB_DRIVER: %q", cfg.DBDriver)
	}

	return cfg, nil
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}
