package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Supported database drivers.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	App      AppConfig
	Logger   LoggerConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
	// Hostname identifies this process in every response envelope.
	Hostname string
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Driver         string
	Host           string
	Port           int // 0 selects the driver default
	Username       string
	Password       string
	Name           string
	SSLMode        string // postgres only
	ConnectTimeout time.Duration
	InitOnStartup  bool
}

// AppConfig holds service metadata reported by the diagnostic endpoints.
type AppConfig struct {
	Environment          string
	ProjectName          string
	ExposeInternalErrors bool
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// Load loads configuration from environment variables. A .env file in the
// working directory is read first when present; real environment variables
// take precedence over it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:     getEnv("SERVER_HOST", "0.0.0.0"),
			Port:     getEnvAsInt("SERVER_PORT", 8080),
			Hostname: hostname,
		},
		Database: DatabaseConfig{
			Driver:         getEnv("DB_DRIVER", DriverMySQL),
			Host:           getEnv("DB_HOST", ""),
			Port:           getEnvAsInt("DB_PORT", 0),
			Username:       getEnv("DB_USERNAME", ""),
			Password:       getEnv("DB_PASSWORD", ""),
			Name:           getEnv("DB_NAME", "appdb"),
			SSLMode:        getEnv("DB_SSLMODE", "disable"),
			ConnectTimeout: time.Duration(getEnvAsInt("DB_CONNECT_TIMEOUT", 5)) * time.Second,
			InitOnStartup:  getEnvAsBool("DB_INIT_ON_STARTUP", false),
		},
		App: AppConfig{
			Environment:          getEnv("ENVIRONMENT", "development"),
			ProjectName:          getEnv("PROJECT_NAME", "three-tier-app"),
			ExposeInternalErrors: getEnvAsBool("EXPOSE_INTERNAL_ERRORS", true),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Driver != DriverMySQL && c.Database.Driver != DriverPostgres {
		return fmt.Errorf("invalid database driver: %s (must be mysql or postgres)", c.Database.Driver)
	}

	if c.Database.Port < 0 || c.Database.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", c.Database.Port)
	}

	if c.Database.Name == "" {
		return fmt.Errorf("database name is required")
	}

	if c.Database.ConnectTimeout <= 0 {
		return fmt.Errorf("database connect timeout must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	return nil
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
