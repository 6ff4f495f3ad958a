package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"lexicon/pkg/dictionary"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken    string
	BotPassword string
	Database    DatabaseConfig
	Dictionary  DictionaryConfig
	History     HistoryConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// DictionaryConfig holds dictionary API client settings
type DictionaryConfig struct {
	BaseURL         string
	Timeout         time.Duration
	DefaultLanguage string
}

// HistoryConfig holds lookup history settings
type HistoryConfig struct {
	RetentionDays int
	Timezone      string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	timeout, err := getDuration("DICTIONARY_TIMEOUT", dictionary.DefaultTimeout)
	if err != nil {
		return nil, err
	}

	retentionDays, err := getInt("HISTORY_RETENTION_DAYS", 60)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		BotToken:    os.Getenv("BOT_TOKEN"),
		BotPassword: os.Getenv("BOT_PASSWORD"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "lexicon"),
			User:     getEnv("DB_USER", "lexicon"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		Dictionary: DictionaryConfig{
			BaseURL:         getEnv("DICTIONARY_BASE_URL", dictionary.DefaultBaseURL),
			Timeout:         timeout,
			DefaultLanguage: getEnv("DEFAULT_LANGUAGE", dictionary.DefaultLanguage),
		},
		History: HistoryConfig{
			RetentionDays: retentionDays,
			Timezone:      getEnv("HISTORY_TIMEZONE", "Europe/Moscow"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.BotPassword == "" {
		return nil, fmt.Errorf("BOT_PASSWORD is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	if cfg.History.RetentionDays < 1 {
		return nil, fmt.Errorf("HISTORY_RETENTION_DAYS must be positive, got %d", cfg.History.RetentionDays)
	}
	if _, err := cfg.HistoryLocation(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

// HistoryLocation returns the zone history days are grouped in
func (c *Config) HistoryLocation() (*time.Location, error) {
	loc, err := time.LoadLocation(c.History.Timezone)
	if err != nil {
		return nil, fmt.Errorf("HISTORY_TIMEZONE: %w", err)
	}
	return loc, nil
}

// DictionaryOptions returns client options for the dictionary settings
func (c *Config) DictionaryOptions() []dictionary.Option {
	return []dictionary.Option{
		dictionary.WithBaseURL(c.Dictionary.BaseURL),
		dictionary.WithTimeout(c.Dictionary.Timeout),
		dictionary.WithDefaultLanguage(c.Dictionary.DefaultLanguage),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, value)
	}
	return n, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, value)
	}
	return d, nil
}
