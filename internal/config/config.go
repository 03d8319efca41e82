package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"smartspend/internal/auth"
)

type Config struct {
	// HTTP Server
	Port     string
	LogLevel string

	// Storage
	DataBackend  string
	SQLiteDBPath string

	// AMQP (optional, empty URL disables events)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Google Sheets report export (worker)
	GoogleSpreadsheetID      string
	GoogleSheetName          string
	GoogleServiceAccountJSON string
	GoogleServiceAccountFile string

	// Classifier rules file (optional, built-in rules otherwise)
	RulesFile string

	// Auth
	Users             string
	SessionTTL        time.Duration
	SessionMaxEntries int
	CacheCleanup      time.Duration

	// Rate limiting of POST requests per client
	RateLimitPerMinute int
}

func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8081"),
		LogLevel: strings.ToLower(getEnv("LOG_LEVEL", "info")),

		DataBackend:  getEnv("DATA_BACKEND", "memory"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/smartspend.db"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "smartspend"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "transactions_imported"),

		GoogleSpreadsheetID:      getEnv("GOOGLE_SPREADSHEET_ID", ""),
		GoogleSheetName:          getEnv("GOOGLE_SHEET_NAME", "Budget"),
		GoogleServiceAccountJSON: getEnv("GOOGLE_SERVICE_ACCOUNT_JSON", ""),
		GoogleServiceAccountFile: getEnv("GOOGLE_SERVICE_ACCOUNT_FILE", ""),

		RulesFile: getEnv("RULES_FILE", ""),

		Users:             getEnv("AUTH_USERS", "admin:password123,user:mypassword"),
		SessionTTL:        getEnvDuration("SESSION_TTL", 12*time.Hour),
		SessionMaxEntries: getEnvInt("SESSION_MAX_ENTRIES", 1000),
		CacheCleanup:      getEnvDuration("CACHE_CLEANUP_INTERVAL", 5*time.Minute),

		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	validBackends := []string{"memory", "sqlite"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.DataBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	if c.DataBackend == "sqlite" {
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else {
			dir := filepath.Dir(c.SQLiteDBPath)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0755); err != nil {
						errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
					}
				}
			}
		}
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.GoogleServiceAccountFile != "" {
		if _, err := os.Stat(c.GoogleServiceAccountFile); os.IsNotExist(err) {
			errors = append(errors, fmt.Sprintf("Google service account file does not exist: %s", c.GoogleServiceAccountFile))
		}
	}

	if c.RulesFile != "" {
		if _, err := os.Stat(c.RulesFile); os.IsNotExist(err) {
			errors = append(errors, fmt.Sprintf("rules file does not exist: %s", c.RulesFile))
		}
	}

	if _, err := auth.ParseUsers(c.Users); err != nil {
		errors = append(errors, fmt.Sprintf("invalid AUTH_USERS: %v", err))
	}

	if c.SessionTTL < time.Minute {
		errors = append(errors, fmt.Sprintf("invalid session TTL %v: must be at least 1 minute", c.SessionTTL))
	} else if c.SessionTTL > 30*24*time.Hour {
		errors = append(errors, fmt.Sprintf("invalid session TTL %v: must be at most 30 days", c.SessionTTL))
	}
	if c.SessionMaxEntries < 1 {
		errors = append(errors, fmt.Sprintf("invalid session max entries %d: must be at least 1", c.SessionMaxEntries))
	}
	if c.CacheCleanup < time.Second {
		errors = append(errors, fmt.Sprintf("invalid cache cleanup interval %v: must be at least 1 second", c.CacheCleanup))
	}

	if c.RateLimitPerMinute < 1 {
		errors = append(errors, fmt.Sprintf("invalid rate limit %d: must be at least 1 request per minute", c.RateLimitPerMinute))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
