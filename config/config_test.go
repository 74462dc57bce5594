package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	os.Setenv("CAPTURE_FILE_LOGGING", "TRUE")
	os.Setenv("CAPTURE_LOG_FILE", "test_capture.log")

	defer func() {
		os.Unsetenv("CAPTURE_FILE_LOGGING")
		os.Unsetenv("CAPTURE_LOG_FILE")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	if !cfg.EnableFileLogging {
		t.Errorf("Expected EnableFileLogging to be true, got %v", cfg.EnableFileLogging)
	}
	if cfg.LogFile != "test_capture.log" {
		t.Errorf("Expected LogFile to be 'test_capture.log', got '%s'", cfg.LogFile)
	}
}

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("CAPTURE_FILE_LOGGING")
	os.Unsetenv("CAPTURE_LOG_FILE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.EnableFileLogging {
		t.Errorf("Expected EnableFileLogging to default to false")
	}
	if cfg.LogFile != "capture_ffi_debug.log" {
		t.Errorf("Expected default LogFile, got '%s'", cfg.LogFile)
	}
}
