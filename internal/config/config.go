package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"
)

var (
	validBackends        = []string{"memory", "sqlite", "redis"}
	validLogLevels       = []string{"debug", "info", "warn", "error"}
	validRecommendations = []string{"cards", "compact"}
	validSidebars        = []string{"expanded", "collapsed"}
)

type Config struct {
	// HTTP server
	Port               string
	LogLevel           string
	RateLimitPerMinute int
	ReadyDelay         time.Duration

	// Preference storage
	PreferenceBackend string
	SQLiteDBPath      string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int

	// AMQP, optional
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Dashboard
	FixturesFile        string
	RecommendationsView string
	SidebarView         string
	DefaultCurrency     string
	CacheTTL            time.Duration
}

func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8081"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
		ReadyDelay:         getEnvDuration("READY_DELAY", 0),

		PreferenceBackend: getEnv("PREFERENCE_BACKEND", "memory"),
		SQLiteDBPath:      getEnv("SQLITE_DB_PATH", "./data/fundsmart.db"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisDB:           getEnvInt("REDIS_DB", 0),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "fundsmart"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "theme_changes"),

		FixturesFile:        getEnv("FIXTURES_FILE", ""),
		RecommendationsView: getEnv("RECOMMENDATIONS_VIEW", "cards"),
		SidebarView:         getEnv("SIDEBAR_VIEW", "expanded"),
		DefaultCurrency:     strings.ToUpper(getEnv("DEFAULT_CURRENCY", "")),
		CacheTTL:            getEnvDuration("CACHE_TTL", time.Minute),
	}
}

// Validate checks every setting and reports all problems in one error.
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if !slices.Contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of %v", c.LogLevel, validLogLevels))
	}

	if c.RateLimitPerMinute < 1 {
		errors = append(errors, fmt.Sprintf("invalid rate limit %d: must be at least 1 request per minute", c.RateLimitPerMinute))
	}

	if c.ReadyDelay < 0 || c.ReadyDelay > time.Minute {
		errors = append(errors, fmt.Sprintf("invalid ready delay %v: must be between 0 and 1m", c.ReadyDelay))
	}

	if !slices.Contains(validBackends, c.PreferenceBackend) {
		errors = append(errors, fmt.Sprintf("invalid preference backend '%s': must be one of %v", c.PreferenceBackend, validBackends))
	}

	switch c.PreferenceBackend {
	case "sqlite":
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else if dir := filepath.Dir(c.SQLiteDBPath); dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
				}
			}
		}
	case "redis":
		if _, _, err := net.SplitHostPort(c.RedisAddr); err != nil {
			errors = append(errors, fmt.Sprintf("invalid Redis address '%s': must be host:port", c.RedisAddr))
		}
		if c.RedisDB < 0 {
			errors = append(errors, fmt.Sprintf("invalid Redis database %d: must not be negative", c.RedisDB))
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

	if c.FixturesFile != "" {
		if _, err := os.Stat(c.FixturesFile); err != nil {
			errors = append(errors, fmt.Sprintf("fixtures file does not exist: %s", c.FixturesFile))
		}
	}

	if !slices.Contains(validRecommendations, c.RecommendationsView) {
		errors = append(errors, fmt.Sprintf("invalid recommendations view '%s': must be one of %v", c.RecommendationsView, validRecommendations))
	}
	if !slices.Contains(validSidebars, c.SidebarView) {
		errors = append(errors, fmt.Sprintf("invalid sidebar view '%s': must be one of %v", c.SidebarView, validSidebars))
	}

	if c.DefaultCurrency != "" && len(c.DefaultCurrency) != 3 {
		errors = append(errors, fmt.Sprintf("invalid default currency '%s': must be a 3-letter code", c.DefaultCurrency))
	}

	if c.CacheTTL < 0 || c.CacheTTL > time.Hour {
		errors = append(errors, fmt.Sprintf("invalid cache TTL %v: must be between 0 and 1h", c.CacheTTL))
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
