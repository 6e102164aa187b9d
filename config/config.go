// Package config reads the configuration of bflow from the environment.
//
// A .env file in the current directory is loaded first when present;
// variables already set in the environment take precedence over it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Storage backends.
const (
	FileStore   = "file"
	MemoryStore = "memory"
	RedisStore  = "redis"
)

// Identity providers.
const (
	FirebaseAuth = "firebase"
	LocalAuth    = "local"
)

// DefaultCurrency is the display currency when BFLOW_CURRENCY is unset.
const DefaultCurrency = "INR"

// Config holds the application configuration
type Config struct {
	FirebaseAPIKey     string
	FirebaseAuthDomain string
	FirebaseProjectID  string
	FirebaseAppID      string

	GeminiAPIKey string

	Auth    string // firebase or local
	Store   string // file, memory or redis
	DataDir string

	RedisAddr string
	RedisPass string
	RedisDB   int

	Currency string
	LogLevel logrus.Level
}

// Load loads the .env file if present then reads the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from a lookup function shaped like os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	c := &Config{
		FirebaseAPIKey:     get("FIREBASE_API_KEY", ""),
		FirebaseAuthDomain: get("FIREBASE_AUTH_DOMAIN", ""),
		FirebaseProjectID:  get("FIREBASE_PROJECT_ID", ""),
		FirebaseAppID:      get("FIREBASE_APP_ID", ""),
		GeminiAPIKey:       get("GEMINI_API_KEY", get("API_KEY", "")),
		Auth:               strings.ToLower(get("BFLOW_AUTH", FirebaseAuth)),
		Store:              strings.ToLower(get("BFLOW_STORE", FileStore)),
		DataDir:            get("BFLOW_DATA_DIR", ""),
		RedisAddr:          get("REDIS_ADDR", "localhost:6379"),
		RedisPass:          get("REDIS_PASS", ""),
		Currency:           strings.ToUpper(get("BFLOW_CURRENCY", DefaultCurrency)),
	}

	var errs []error
	switch c.Auth {
	case FirebaseAuth, LocalAuth:
	default:
		errs = append(errs, fmt.Errorf("BFLOW_AUTH: unknown provider %q", c.Auth))
	}
	switch c.Store {
	case FileStore, MemoryStore, RedisStore:
	default:
		errs = append(errs, fmt.Errorf("BFLOW_STORE: unknown backend %q", c.Store))
	}
	if db := get("REDIS_DB", "0"); db != "" {
		n, err := strconv.Atoi(db)
		if err != nil || n < 0 {
			errs = append(errs, fmt.Errorf("REDIS_DB: invalid database number %q", db))
		}
		c.RedisDB = n
	}
	level, err := logrus.ParseLevel(get("BFLOW_LOG_LEVEL", "warn"))
	if err != nil {
		errs = append(errs, fmt.Errorf("BFLOW_LOG_LEVEL: %w", err))
		level = logrus.WarnLevel
	}
	c.LogLevel = level

	if c.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		c.DataDir = filepath.Join(home, ".bflow")
	}
	if len(errs) > 0 {
		return c, fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return c, nil
}

// SessionPath is where the signed in identity is kept between invocations.
func (c *Config) SessionPath() string {
	return filepath.Join(c.DataDir, "session.json")
}
