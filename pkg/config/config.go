package config

import (
	"os"
	"strconv"
)

type Credentials struct {
	Username string
	Password string
}

type Config struct {
	AppEnv   string
	LogLevel string

	GRPCPort   int
	HTTPPort   int
	GRPCTarget string

	Currency         string
	RatingCommentMax int

	Customer Credentials
	Admin    Credentials
}

func Load() Config {
	return Config{
		AppEnv:           getEnv("APP_ENV", "dev"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		HTTPPort:         getEnvInt("HTTP_PORT", 8080),
		GRPCPort:         getEnvInt("GRPC_PORT", 8081),
		GRPCTarget:       getEnv("GRPC_TARGET", "localhost:8081"),
		Currency:         getEnv("CHECKOUT_CURRENCY", "PHP"),
		RatingCommentMax: getEnvInt("RATING_COMMENT_MAX", 150),
		Customer: Credentials{
			Username: getEnv("CUSTOMER_USERNAME", "customer"),
			Password: getEnv("CUSTOMER_PASSWORD", "customer123"),
		},
		Admin: Credentials{
			Username: getEnv("ADMIN_USERNAME", "admin"),
			Password: getEnv("ADMIN_PASSWORD", "admin123"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}

	return n
}
