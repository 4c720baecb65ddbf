package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Env               string
	Port              string
	DBURL             string
	TokenSigningKey   string
	TokenTTLMin       int
	MinPasswordLength int
	HashScheme        string
}

func Load() (*Config, error) {
	dbURL, err := requireEnv("DB_URL")
	if err != nil {
		return nil, err
	}

	signingKey, err := requireEnv("TOKEN_SIGNING_KEY")
	if err != nil {
		return nil, err
	}

	tokenTTLMin, err := getEnvAsInt("TOKEN_TTL_MIN", 60)
	if err != nil {
		return nil, err
	}

	minPasswordLength, err := getEnvAsInt("MIN_PASSWORD_LENGTH", 8)
	if err != nil {
		return nil, err
	}

	return &Config{
		Env:               getEnv("ENV", "development"),
		Port:              getEnv("PORT", "8080"),
		DBURL:             dbURL,
		TokenSigningKey:   signingKey,
		TokenTTLMin:       tokenTTLMin,
		MinPasswordLength: minPasswordLength,
		HashScheme:        getEnv("HASH_SCHEME", "bcrypt"),
	}, nil
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func requireEnv(key string) (string, error) {
	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("missing required environment variable %s", key)
}

func getEnvAsInt(key string, defaultVal int) (int, error) {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal, nil
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value for %s: %q", key, valStr)
	}
	return val, nil
}
