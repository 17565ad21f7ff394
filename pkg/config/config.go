// Package config provides configuration management for gnresolve.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > gnresolve.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in gnresolve.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, gnresolve.yaml, and env vars):
//   - Database: host, port, user, password, database, ssl_mode, batch_size,
//     sqlite_path
//   - Log: level, format, destination
//   - Resolve: advanced, max_fuzzy_candidates, max_edit_distance
//   - General: jobs_number
//
// Runtime-only fields (not persisted):
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNRESOLVE_ prefix with underscores for nesting:
//
//	GNRESOLVE_DATABASE_HOST=localhost
//	GNRESOLVE_DATABASE_PORT=5432
//	GNRESOLVE_LOG_LEVEL=info
//	GNRESOLVE_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete gnresolve configuration.
type Config struct {
	// Database contains PostgreSQL connection settings used by the
	// index loader when it streams canonical/stem rows at startup.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Resolve contains default parameters for resolve calls made
	// through the CLI, when not overridden by flags.
	Resolve ResolveConfig `mapstructure:"resolve" yaml:"resolve"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel operations
	// (fuzzy probing, index loading).
	// Default value is set accoring to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize is a persisted setting (batch_size). Neither index loader
	// reads it: both stream all canonical/stem rows from a single query.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`

	// SQLitePath, when non-empty, points the index loader at a local
	// SQLite cache file instead of PostgreSQL -- the offline backend
	// used for tests and demos.
	SQLitePath string `mapstructure:"sqlite_path" yaml:"sqlite_path"`
}

// ResolveConfig contains default parameters applied to resolve calls
// made through the CLI, overridable per-call by flags.
type ResolveConfig struct {
	// Advanced enables recursive shortening and disables the
	// exact-match suppression applied in non-advanced mode.
	Advanced bool `mapstructure:"advanced" yaml:"advanced"`

	// MaxFuzzyCandidates caps how many candidates the bundled fuzzy
	// index returns per probed split.
	MaxFuzzyCandidates int `mapstructure:"max_fuzzy_candidates" yaml:"max_fuzzy_candidates"`

	// MaxEditDistance caps the verbatim edit distance the bundled fuzzy
	// index considers a viable candidate.
	MaxEditDistance int `mapstructure:"max_edit_distance" yaml:"max_edit_distance"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination is validated against 'file', 'stdin' and 'stdout'.
	// logger.New does not read it: logs always go to STDERR.
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "gnames",
			SSLMode:   "disable",
			BatchSize: 50_000,
		},
		Resolve: ResolveConfig{
			Advanced:           false,
			MaxFuzzyCandidates: 5,
			MaxEditDistance:    4,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// logger.New does not read Destination
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(), // Default to number of CPU threads
	}

	return res
}
