// Package iotesting provides shared test utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gnresolve/internal/ioconfig"
	"github.com/gnames/gnresolve/pkg/config"
)

const (
	// TestDatabaseName is the database name used for all integration tests.
	// This ensures tests never accidentally run against production databases.
	TestDatabaseName = "gnresolve_test"
)

// GetTestConfig returns a configuration suitable for integration tests.
// It loads the standard config (from file or defaults) and overrides the
// database name to TestDatabaseName for safety.
//
// Usage in integration tests:
//
//	func TestSomething(t *testing.T) {
//	    if testing.Short() {
//	        t.Skip("Skipping integration test")
//	    }
//	    cfg := iotesting.GetTestConfig()
//	    // ... use cfg for database operations
//	}
func GetTestConfig() *config.Config {
	homeDir, _ := os.UserHomeDir()
	result, err := ioconfig.Load("", homeDir)

	var cfg *config.Config
	if err != nil {
		cfg = config.New()
	} else {
		cfg = result.Config
	}

	// Always use test database for safety
	cfg.Database.Database = TestDatabaseName

	return cfg
}

// GetTestDatabaseConfig returns only the database configuration for tests.
// This is useful when you only need database config without the full Config struct.
func GetTestDatabaseConfig() *config.DatabaseConfig {
	cfg := GetTestConfig()
	return &cfg.Database
}

// SetupTempConfigDir creates a temporary config directory for a test and sets
// the GNRESOLVE_CONFIG_DIR environment variable to point to it. The directory
// is automatically cleaned up when the test finishes.
//
// pkg/config derives the config directory from the home directory it is
// given and does not read GNRESOLVE_CONFIG_DIR, so setting the variable does
// not by itself change where gnresolve reads or writes its config files.
//
// Returns the absolute path to the temporary config directory.
func SetupTempConfigDir(t *testing.T) string {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "gnresolve-test-config-*")
	if err != nil {
		t.Fatalf("Failed to create temp config dir: %v", err)
	}

	originalConfigDir := os.Getenv("GNRESOLVE_CONFIG_DIR")
	err = os.Setenv("GNRESOLVE_CONFIG_DIR", tempDir)
	if err != nil {
		os.RemoveAll(tempDir)
		t.Fatalf("Failed to set GNRESOLVE_CONFIG_DIR: %v", err)
	}

	t.Cleanup(func() {
		if originalConfigDir != "" {
			os.Setenv("GNRESOLVE_CONFIG_DIR", originalConfigDir)
		} else {
			os.Unsetenv("GNRESOLVE_CONFIG_DIR")
		}
		os.RemoveAll(tempDir)
	})

	return tempDir
}

// SetupTempCacheDir creates a temporary cache directory for a test and sets
// the GNRESOLVE_CACHE_DIR environment variable to point to it. The directory
// is automatically cleaned up when the test finishes.
//
// Returns the absolute path to the temporary cache directory.
func SetupTempCacheDir(t *testing.T) string {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "gnresolve-test-cache-*")
	if err != nil {
		t.Fatalf("Failed to create temp cache dir: %v", err)
	}

	originalCacheDir := os.Getenv("GNRESOLVE_CACHE_DIR")
	err = os.Setenv("GNRESOLVE_CACHE_DIR", tempDir)
	if err != nil {
		os.RemoveAll(tempDir)
		t.Fatalf("Failed to set GNRESOLVE_CACHE_DIR: %v", err)
	}

	t.Cleanup(func() {
		if originalCacheDir != "" {
			os.Setenv("GNRESOLVE_CACHE_DIR", originalCacheDir)
		} else {
			os.Unsetenv("GNRESOLVE_CACHE_DIR")
		}
		os.RemoveAll(tempDir)
	})

	return tempDir
}

// WriteTempDataSourcesYAML writes a data-sources.yaml file to the temporary
// config directory. Must be called after SetupTempConfigDir().
//
// Usage:
//
//	tempConfigDir := iotesting.SetupTempConfigDir(t)
//	iotesting.WriteTempDataSourcesYAML(t, tempConfigDir, `
//	data_sources:
//	  - id: 1
//	    title: Catalogue of Life
//	`)
func WriteTempDataSourcesYAML(t *testing.T, configDir, content string) {
	t.Helper()

	sourcesPath := filepath.Join(configDir, "data-sources.yaml")
	err := os.WriteFile(sourcesPath, []byte(content), 0644)
	if err != nil {
		t.Fatalf("Failed to write temp data-sources.yaml: %v", err)
	}
}
