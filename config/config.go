package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	EnableFileLogging bool
	LogFile           string
}

func Load() (*Config, error) {
	// Try to load .env from the current directory or the directory of
	// the host executable (the library is loaded into someone else's
	// process, so cwd is rarely ours).
	envPaths := []string{".env"}
	if execPath, err := os.Executable(); err == nil {
		envPaths = append(envPaths, filepath.Join(filepath.Dir(execPath), ".env"))
	}
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			godotenv.Load(envPath)
			break
		}
	}

	cfg := &Config{
		EnableFileLogging: strings.ToLower(os.Getenv("CAPTURE_FILE_LOGGING")) == "true",
		LogFile:           getEnvWithDefault("CAPTURE_LOG_FILE", "capture_ffi_debug.log"),
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
