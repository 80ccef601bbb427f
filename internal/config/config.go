package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries everything the server needs from the environment.
type Config struct {
	Port string

	DBHost       string
	DBPort       uint
	DBName       string
	DBUser       string
	DBPassword   string
	DBSSLDisable bool

	JWTSecret string

	CORSAllowedOrigins string

	// Team-level defaults used when a team has no percentages configured.
	CloserCommissionPct float64
	SetterCommissionPct float64

	ReminderWebhookURL string

	LogLevel string
}

// Load reads .env (if present) and the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:                getEnv("PORT", "8080"),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBName:              getEnv("DB_NAME", "salesops"),
		DBUser:              getEnv("DB_USERNAME", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", "postgres"),
		DBSSLDisable:        getEnv("DB_SSL_MODE_DISABLE", "true") == "true",
		JWTSecret:           os.Getenv("JWT_SECRET"),
		CORSAllowedOrigins:  getEnv("CORS_ALLOWED_ORIGINS", "*"),
		ReminderWebhookURL:  os.Getenv("REMINDER_WEBHOOK_URL"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		CloserCommissionPct: getEnvFloat("CLOSER_COMMISSION_PCT", 10),
		SetterCommissionPct: getEnvFloat("SETTER_COMMISSION_PCT", 5),
	}

	port, err := strconv.ParseUint(getEnv("DB_PORT", "5432"), 10, 32)
	if err != nil {
		port = 5432
	}
	cfg.DBPort = uint(port)

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is not set")
	}
	return cfg, nil
}

// DSN builds the Postgres connection string.
func (c Config) DSN() string {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
	if c.DBSSLDisable {
		dsn += " sslmode=disable"
	}
	return dsn
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
