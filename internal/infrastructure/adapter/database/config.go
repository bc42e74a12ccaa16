package database

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config represents database configuration. URL takes precedence; when it is
// empty the connection falls back to a local file-backed SQLite database.
type Config struct {
	URL             string
	SQLitePath      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	RetryAttempts   int
	RetryDelay      time.Duration
	LogLevel        string
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.URL == "" && c.SQLitePath == "" {
		return errors.New("either a database URL or a sqlite path is required")
	}
	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got: %d", c.MaxOpenConns)
	}
	if c.MaxIdleConns <= 0 {
		return fmt.Errorf("max idle connections must be positive, got: %d", c.MaxIdleConns)
	}
	if c.RetryAttempts < 0 {
		return fmt.Errorf("retry attempts must be non-negative, got: %d", c.RetryAttempts)
	}
	return nil
}

// Dialector returns the GORM dialector for the configured backend
func (c *Config) Dialector() gorm.Dialector {
	if c.URL != "" {
		return postgres.Open(c.URL)
	}
	return sqlite.Open(c.SQLitePath)
}

// Driver names the configured backend, for logging
func (c *Config) Driver() string {
	if c.URL != "" {
		return "postgres"
	}
	return "sqlite"
}
