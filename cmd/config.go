package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"foodorder/internal/adapters/out/persistence"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

const (
	DefaultAdminUsername     = "admin"
	DefaultAdminPassword     = "admin"
	DefaultMaxPromptAttempts = 5
	DefaultDBConnectTimeout  = 30 * time.Second
)

type Config struct {
	Database         persistence.Config
	DBConnectTimeout time.Duration

	AdminUsername string
	AdminPassword string

	// HTTPPort enables the status API when set.
	HTTPPort string
	// DispatchSchedule enables automatic dispatch when set, e.g. "@every 10s".
	DispatchSchedule string

	LogLevel zapcore.Level
	// LogFile receives the logs instead of stderr when set.
	LogFile string

	MaxPromptAttempts int
}

// LoadConfig reads the process environment. Variables already set win over
// the ones in envFiles; missing env files are skipped.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := Config{
		Database: persistence.Config{
			Driver:   getEnv("DB_DRIVER", persistence.DriverSQLite),
			DSN:      os.Getenv("DB_DSN"),
			Path:     getEnv("DB_PATH", persistence.DefaultSQLitePath),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		AdminUsername:    getEnv("ADMIN_USERNAME", DefaultAdminUsername),
		AdminPassword:    getEnv("ADMIN_PASSWORD", DefaultAdminPassword),
		HTTPPort:         os.Getenv("HTTP_PORT"),
		DispatchSchedule: os.Getenv("DISPATCH_SCHEDULE"),
		LogFile:          os.Getenv("LOG_FILE"),
	}

	var err error
	if cfg.LogLevel, err = zapcore.ParseLevel(getEnv("LOG_LEVEL", "info")); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	if cfg.MaxPromptAttempts, err = strconv.Atoi(getEnv("MAX_PROMPT_ATTEMPTS", strconv.Itoa(DefaultMaxPromptAttempts))); err != nil {
		return Config{}, fmt.Errorf("MAX_PROMPT_ATTEMPTS: %w", err)
	}
	if cfg.MaxPromptAttempts < 1 {
		return Config{}, fmt.Errorf("MAX_PROMPT_ATTEMPTS: %d is not positive", cfg.MaxPromptAttempts)
	}

	if cfg.DBConnectTimeout, err = time.ParseDuration(getEnv("DB_CONNECT_TIMEOUT", DefaultDBConnectTimeout.String())); err != nil {
		return Config{}, fmt.Errorf("DB_CONNECT_TIMEOUT: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
