package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/softventure/timesheet-backend-go/internal/domain/worktime"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Work     WorkConfig
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
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// WorkConfig holds the company work policy knobs. Durations use Go syntax
// ("8h", "7h30m").
type WorkConfig struct {
	StandardDailyWork time.Duration
	LegalDailyWork    time.Duration
	LateNightStart    time.Duration
	LateNightEnd      time.Duration
}

// Policy converts the configured knobs into the value object the calculator
// consumes.
func (w WorkConfig) Policy() worktime.WorkPolicy {
	return worktime.WorkPolicy{
		StandardDailyWork: w.StandardDailyWork,
		LegalDailyWork:    w.LegalDailyWork,
		LateNightStart:    w.LateNightStart,
		LateNightEnd:      w.LateNightEnd,
	}
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("no .env file found, relying on the environment")
	}

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
		Name:     getEnv("DB_NAME", "timesheet"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "8h"),
	}

	// Work policy configuration
	defaults := worktime.DefaultPolicy()
	config.Work = WorkConfig{}
	for _, knob := range []struct {
		env      string
		fallback time.Duration
		dst      *time.Duration
	}{
		{"WORK_STANDARD_DAILY", defaults.StandardDailyWork, &config.Work.StandardDailyWork},
		{"WORK_LEGAL_DAILY", defaults.LegalDailyWork, &config.Work.LegalDailyWork},
		{"WORK_LATE_NIGHT_START", defaults.LateNightStart, &config.Work.LateNightStart},
		{"WORK_LATE_NIGHT_END", defaults.LateNightEnd, &config.Work.LateNightEnd},
	} {
		d, err := time.ParseDuration(getEnv(knob.env, knob.fallback.String()))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", knob.env, err)
		}
		*knob.dst = d
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
	if c.Work.StandardDailyWork <= 0 || c.Work.LegalDailyWork <= 0 {
		return fmt.Errorf("work policy durations must be positive")
	}
	if c.Work.StandardDailyWork > c.Work.LegalDailyWork {
		return fmt.Errorf("WORK_STANDARD_DAILY must not exceed WORK_LEGAL_DAILY")
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
