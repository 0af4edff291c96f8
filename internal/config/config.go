// Package config resolves campusnav settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvDB            = "CAMPUSNAV_DB"
	EnvGraph         = "CAMPUSNAV_GRAPH"
	EnvLogLevel      = "CAMPUSNAV_LOG_LEVEL"
	EnvLogFormat     = "CAMPUSNAV_LOG_FORMAT"
	EnvNeo4jURI      = "CAMPUSNAV_NEO4J_URI"
	EnvNeo4jUser     = "CAMPUSNAV_NEO4J_USER"
	EnvNeo4jPassword = "CAMPUSNAV_NEO4J_PASSWORD"
	EnvNeo4jDatabase = "CAMPUSNAV_NEO4J_DATABASE"
)

// DefaultDBFile is the database file name used when CAMPUSNAV_DB is unset.
const DefaultDBFile = "campusnav.db"

// ErrBadLogFormat is returned for a log format other than json or console.
var ErrBadLogFormat = errors.New("config: log format must be json or console")

// ErrBadLogLevel is returned for an unknown log level.
var ErrBadLogLevel = errors.New("config: log level must be debug, info, warn or error")

// Config holds the resolved settings of one campusnav invocation.
type Config struct {
	// DBPath is the SQLite file for accounts and saved routes.
	DBPath string
	// GraphPath is a YAML/JSON graph document; empty means the built-in campus.
	GraphPath string
	LogLevel  string
	LogFormat string

	Neo4jURI      string
	Neo4jUser     string
	Neo4jPassword string
	Neo4jDatabase string
}

// Load reads the environment after loading the nearest .env file, searching
// from the working directory upward. Variables already set in the process
// environment win over the file.
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, fmt.Errorf("config: loading .env: %w", err)
	}
	cfg := FromEnv()

	return cfg, cfg.Validate()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() *Config {
	return &Config{
		DBPath:        envOrDefault(EnvDB, DefaultDBFile),
		GraphPath:     envOrDefault(EnvGraph, ""),
		LogLevel:      strings.ToLower(envOrDefault(EnvLogLevel, "info")),
		LogFormat:     strings.ToLower(envOrDefault(EnvLogFormat, "console")),
		Neo4jURI:      envOrDefault(EnvNeo4jURI, ""),
		Neo4jUser:     envOrDefault(EnvNeo4jUser, ""),
		Neo4jPassword: envOrDefault(EnvNeo4jPassword, ""),
		Neo4jDatabase: envOrDefault(EnvNeo4jDatabase, "neo4j"),
	}
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("%w: %q", ErrBadLogFormat, c.LogFormat)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrBadLogLevel, c.LogLevel)
	}

	return nil
}

// Neo4jEnabled reports whether a Neo4j graph source is configured.
func (c *Config) Neo4jEnabled() bool {
	return c.Neo4jURI != ""
}

// loadDotEnv walks up from the working directory and loads the first .env found.
func loadDotEnv() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	for {
		envFile := filepath.Join(dir, ".env")
		if _, err := os.Stat(envFile); err == nil {
			return godotenv.Load(envFile)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil
		}
		dir = parent
	}
}

func envOrDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}

	return fallback
}
