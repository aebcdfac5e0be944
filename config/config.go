package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	SourceFixture  = "fixture"
	SourcePostgres = "postgres"
)

// Config holds application configuration
type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Catalog
	ListingSource string

	// Logging
	LogLevel      string
	LogFormat     string
	LogColor      bool
	FluentEnabled bool
	FluentHost    string
	FluentPort    int
	FluentTag     string
	FluentLevel   string

	// Server
	ServerPort  string
	GinMode     string
	CORSOrigins []string

	// Warnings collects problems found while loading. Load runs before the
	// logger exists, so the caller logs them once it is configured.
	Warnings []string
}

// Load loads configuration from environment variables
func Load() *Config {
	// Try to load .env file (optional for local development)
	_ = godotenv.Load()

	config := &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "trainpass123"),
		DBName:     getEnv("DB_NAME", "trainxchange"),

		ListingSource: strings.ToLower(getEnv("LISTING_SOURCE", SourceFixture)),

		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
		LogColor:      getEnvAsBool("LOG_COLOR", true),
		FluentEnabled: getEnvAsBool("FLUENT_ENABLED", false),
		FluentHost:    getEnv("FLUENT_HOST", "localhost"),
		FluentPort:    getEnvAsInt("FLUENT_PORT", 24224),
		FluentTag:     getEnv("FLUENT_TAG", "train-xchange"),
		FluentLevel:   getEnv("FLUENT_LOG_LEVEL", "info"),

		ServerPort:  getEnv("SERVER_PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", "release"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
	}

	switch config.ListingSource {
	case SourceFixture, SourcePostgres:
	default:
		config.Warnings = append(config.Warnings,
			fmt.Sprintf("unknown LISTING_SOURCE %q, using fixture catalog", config.ListingSource))
		config.ListingSource = SourceFixture
	}

	return config
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
