// Package ioconfig loads gnresolve.yaml configuration from disk, environment
// variables, and CLI flags. This is the impure layer around pkg/config,
// which itself has no file or flag dependencies.
package ioconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/gnames/gnresolve/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// LoadResult contains the loaded configuration and metadata about its source.
type LoadResult struct {
	Config     *config.Config
	SourcePath string // Path to config file used, or empty if using defaults
	Source     string // "file", "defaults", or "defaults+env"
}

// Load reads gnresolve.yaml and returns a validated Config with source info.
// If configPath is empty, it looks for the default config file under the
// config directory derived from homeDir.
//
// Precedence: config file and environment variables both flow through
// Option functions, which reject invalid values with a warning; nothing
// here bypasses that validation.
func Load(configPath, homeDir string) (*LoadResult, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	// Enable environment variable overrides
	v.SetEnvPrefix("GNRESOLVE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults BEFORE reading config so AutomaticEnv() knows which
	// keys to look for, even if no config file exists.
	defaults := config.New()
	v.SetDefault("database.host", defaults.Database.Host)
	v.SetDefault("database.port", defaults.Database.Port)
	v.SetDefault("database.user", defaults.Database.User)
	v.SetDefault("database.password", defaults.Database.Password)
	v.SetDefault("database.database", defaults.Database.Database)
	v.SetDefault("database.ssl_mode", defaults.Database.SSLMode)
	v.SetDefault("database.batch_size", defaults.Database.BatchSize)
	v.SetDefault("database.sqlite_path", defaults.Database.SQLitePath)
	v.SetDefault("resolve.advanced", defaults.Resolve.Advanced)
	v.SetDefault("resolve.max_fuzzy_candidates", defaults.Resolve.MaxFuzzyCandidates)
	v.SetDefault("resolve.max_edit_distance", defaults.Resolve.MaxEditDistance)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.destination", defaults.Log.Destination)
	v.SetDefault("jobs_number", defaults.JobsNumber)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else if homeDir != "" {
		defaultPath := config.ConfigFilePath(homeDir)
		if _, statErr := os.Stat(defaultPath); statErr == nil {
			v.SetConfigFile(defaultPath)
		}
		// otherwise viper falls back to defaults + env vars
	}

	configFileRead := false
	usedConfigPath := ""

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if configPath != "" {
				return nil, fmt.Errorf("config file not found: %s", configPath)
			}
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		configFileRead = true
		usedConfigPath = v.ConfigFileUsed()
	}

	// Unmarshal into a scratch Config, then replay its fields through
	// Option functions onto a fresh default Config - the only path
	// pkg/config exposes for mutating a Config, so it validates as it merges.
	var raw config.Config
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg := config.New()
	cfg.HomeDir = homeDir
	cfg.Update(raw.ToOptions())

	source := "defaults"
	if configFileRead {
		source = "file"
	} else if hasEnvVars() {
		source = "defaults+env"
	}

	return &LoadResult{
		Config:     cfg,
		SourcePath: usedConfigPath,
		Source:     source,
	}, nil
}

// hasEnvVars checks if any GNRESOLVE_* environment variables are set.
func hasEnvVars() bool {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "GNRESOLVE_") {
			return true
		}
	}
	return false
}

// BindFlags applies cobra flags the caller has explicitly set to cfg via
// Option functions, taking precedence over file and environment values.
func BindFlags(cmd *cobra.Command, cfg *config.Config) *config.Config {
	var opts []config.Option
	flags := cmd.Flags()

	if flags.Changed("host") {
		s, _ := flags.GetString("host")
		opts = append(opts, config.OptDatabaseHost(s))
	}
	if flags.Changed("port") {
		i, _ := flags.GetInt("port")
		opts = append(opts, config.OptDatabasePort(i))
	}
	if flags.Changed("user") {
		s, _ := flags.GetString("user")
		opts = append(opts, config.OptDatabaseUser(s))
	}
	if flags.Changed("password") {
		s, _ := flags.GetString("password")
		opts = append(opts, config.OptDatabasePassword(s))
	}
	if flags.Changed("database") {
		s, _ := flags.GetString("database")
		opts = append(opts, config.OptDatabaseDatabase(s))
	}
	if flags.Changed("ssl-mode") {
		s, _ := flags.GetString("ssl-mode")
		opts = append(opts, config.OptDatabaseSSLMode(s))
	}
	if flags.Changed("advanced") {
		b, _ := flags.GetBool("advanced")
		opts = append(opts, config.OptResolveAdvanced(b))
	}
	if flags.Changed("max-fuzzy-candidates") {
		i, _ := flags.GetInt("max-fuzzy-candidates")
		opts = append(opts, config.OptResolveMaxFuzzyCandidates(i))
	}
	if flags.Changed("max-edit-distance") {
		i, _ := flags.GetInt("max-edit-distance")
		opts = append(opts, config.OptResolveMaxEditDistance(i))
	}
	if flags.Changed("sqlite-path") {
		s, _ := flags.GetString("sqlite-path")
		opts = append(opts, config.OptDatabaseSQLitePath(s))
	}
	if flags.Changed("jobs") {
		i, _ := flags.GetInt("jobs")
		opts = append(opts, config.OptJobsNumber(i))
	}

	cfg.Update(opts)
	return cfg
}
