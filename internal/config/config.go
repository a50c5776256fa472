package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	DatabaseURL string

	JWTSecret       string
	JWTAccessExpiry time.Duration

	// TemplateDir is the root of the packaged template assets
	// (page/ and image/ subdirectories).
	TemplateDir string

	PrintService PrintServiceConfig
}

type PrintServiceConfig struct {
	BaseURL string
	Timeout time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	accessExpiry, err := time.ParseDuration(getEnv("JWT_ACCESS_EXPIRY", "15m"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	printTimeout, err := time.ParseDuration(getEnv("PRINT_SERVICE_TIMEOUT", "30s"))
	if err != nil {
		printTimeout = 30 * time.Second
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		DatabaseURL: getEnv("DATABASE_URL", ""),

		JWTSecret:       getEnvOrPanic("JWT_SECRET"),
		JWTAccessExpiry: accessExpiry,

		TemplateDir: getEnv("TEMPLATE_DIR", "assets/template"),

		PrintService: PrintServiceConfig{
			BaseURL: getEnv("PRINT_SERVICE_URL", "http://localhost:8090"),
			Timeout: printTimeout,
		},
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvOrPanic(key string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		panic("required environment variable not set: " + key)
	}
	return value
}
