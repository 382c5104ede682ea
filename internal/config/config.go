package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret        string
	JWTExpirationDur time.Duration

	// Currency. Amounts are stored in the base currency; the display
	// currency is what the rate endpoint is queried against.
	BaseCurrency    string
	DisplayCurrency string
	RateURL         string
	RateTimeout     time.Duration
	RateFallback    float64
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),

		// Database
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "zenfinance"),
		DBPassword: getEnv("DB_PASSWORD", "zenfinance"),
		DBName:     getEnv("DB_NAME", "zenfinance"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// JWT
		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),

		// Currency
		BaseCurrency:    getEnv("BASE_CURRENCY", "RUB"),
		DisplayCurrency: getEnv("DISPLAY_CURRENCY", "USD"),
		RateURL:         getEnv("RATE_URL", "https://api.exchangerate-api.com/v4/latest"),
		RateFallback:    92,
	}

	// Parse JWT expiration duration
	expStr := getEnv("JWT_EXPIRES_IN", "24h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRES_IN value '%s', falling back to 24h\n", expStr)
		expDur = 24 * time.Hour
	}
	config.JWTExpirationDur = expDur

	// Parse rate fetch timeout. The rate fetch is the only call in the
	// system with a hard deadline.
	toStr := getEnv("RATE_TIMEOUT", "8s")
	toDur, err := time.ParseDuration(toStr)
	if err != nil {
		log.Printf("Warning: invalid RATE_TIMEOUT value '%s', falling back to 8s\n", toStr)
		toDur = 8 * time.Second
	}
	config.RateTimeout = toDur

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
