package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds application configuration
type Config struct {
	// Server
	Env                string
	LogLevel           string
	Port               string
	ShutdownTimeout    time.Duration
	CORSAllowedOrigins []string

	// AI advisor
	OpenAIAPIKey    string
	OpenAIBaseURL   string
	AdvisorProvider string
	AdvisorModel    string
	AdvisorTimeout  time.Duration

	// Dashboards
	TrendsStart        time.Time
	TrendsMonths       int
	SavingsGoal        decimal.Decimal
	SearchDefaultLimit int
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
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", ""),
		Port:               getEnv("PORT", "8080"),
		ShutdownTimeout:    getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		CORSAllowedOrigins: getList("CORS_ALLOWED_ORIGINS", []string{"*"}),

		// AI advisor
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:   getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		AdvisorProvider: getEnv("ADVISOR_PROVIDER", "responses"),
		AdvisorModel:    getEnv("ADVISOR_MODEL", "gpt-4o-mini"),
		AdvisorTimeout:  getDuration("ADVISOR_TIMEOUT", 60*time.Second),

		// Dashboards
		TrendsMonths:       getInt("TRENDS_MONTHS", 10),
		SearchDefaultLimit: getInt("SEARCH_DEFAULT_LIMIT", 8),
	}

	startStr := getEnv("TRENDS_START", "2024-01-01")
	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		log.Printf("Warning: invalid TRENDS_START value '%s', falling back to 2024-01-01\n", startStr)
		start = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	config.TrendsStart = start

	goalStr := getEnv("SAVINGS_GOAL", "5000.00")
	goal, err := decimal.NewFromString(goalStr)
	if err != nil {
		log.Printf("Warning: invalid SAVINGS_GOAL value '%s', falling back to 5000.00\n", goalStr)
		goal = decimal.NewFromInt(5000)
	}
	config.SavingsGoal = goal

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

func getInt(key string, defaultValue int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %d\n", key, raw, defaultValue)
		return defaultValue
	}
	return n
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, defaultValue)
		return defaultValue
	}
	return d
}

func getList(key string, defaultValue []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
