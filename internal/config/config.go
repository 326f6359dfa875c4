package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	Auth     AuthConfig
	App      AppConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AuthConfig holds the service-client credentials accepted by the token
// endpoint.
type AuthConfig struct {
	ClientID     string
	ClientSecret string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// PayrollConfig holds computation-wide payroll settings.
type PayrollConfig struct {
	// Timezone is the site-local timezone used for attendance date math.
	Timezone string
	// ComputeWorkers bounds the per-employee computation fan-out.
	ComputeWorkers int
	// RulesetVersion selects the statutory ruleset compiled into the binary.
	RulesetVersion string
}

func Load() (*Config, error) {
	// .env is optional in deployed environments; real env vars win either way.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "suweldo"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Auth configuration
	config.Auth = AuthConfig{
		ClientID:     getEnv("API_CLIENT_ID", ""),
		ClientSecret: getEnv("API_CLIENT_SECRET", ""),
	}

	// Payroll configuration
	workers, err := strconv.Atoi(getEnv("PAYROLL_COMPUTE_WORKERS", strconv.Itoa(runtime.NumCPU())))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_COMPUTE_WORKERS: %w", err)
	}
	if workers < 1 {
		workers = 1
	}

	config.Payroll = PayrollConfig{
		Timezone:       getEnv("PAYROLL_TIMEZONE", "Asia/Manila"),
		ComputeWorkers: workers,
		RulesetVersion: getEnv("PAYROLL_RULESET_VERSION", "2025"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Auth.ClientID == "" || c.Auth.ClientSecret == "" {
		return fmt.Errorf("API_CLIENT_ID and API_CLIENT_SECRET are required")
	}
	if c.Payroll.Timezone == "" {
		return fmt.Errorf("PAYROLL_TIMEZONE is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
