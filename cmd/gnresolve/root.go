package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gnames/gnresolve/internal/iofs"
	"github.com/gnames/gnresolve/internal/ioconfig"
	pkgconfig "github.com/gnames/gnresolve/pkg/config"
	"github.com/gnames/gnresolve/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *pkgconfig.Config
	log     *slog.Logger
)

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gnresolve",
		Short: "gnresolve matches scientific names against a canonical-form index",
		Long: `gnresolve resolves scientific names to their canonical forms: exact
matches, genus-only fallbacks when a species epithet has none, and
fuzzy matches via a bundled Levenshtein index when nothing exact
survives.

The tool supports the following functionalities:

- Index building: load canonical/stem rows from PostgreSQL or a local
  SQLite cache file into the in-memory index the resolver queries.
- Name resolution: resolve a batch of raw name strings from arguments,
  a file, or stdin, optionally filtered to a set of data sources.

Configuration is managed through a gnresolve.yaml file, environment
variables (with GNRESOLVE_ prefix), and command-line flags.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("failed to determine home directory: %w", err)
			}

			if err := iofs.EnsureDirs(homeDir); err != nil {
				return fmt.Errorf("failed to create config/cache/log directories: %w", err)
			}
			if cfgFile == "" {
				if err := iofs.EnsureConfigFile(homeDir); err != nil {
					fmt.Printf("Warning: could not write default config file: %v\n", err)
				}
			}
			if err := iofs.EnsureDataSourcesFile(homeDir); err != nil {
				fmt.Printf("Warning: could not write default data-sources file: %v\n", err)
			}

			result, err := ioconfig.Load(cfgFile, homeDir)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			cfg = ioconfig.BindFlags(cmd, result.Config)
			cfg.HomeDir = homeDir

			log = logger.New(&cfg.Log)

			switch result.Source {
			case "file":
				log.Info("config loaded", "source", "file", "path", result.SourcePath)
			case "defaults+env":
				log.Info("config loaded", "source", "defaults with environment overrides")
			case "defaults":
				log.Info("config loaded", "source", "built-in defaults")
			}

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ~/.config/gnresolve/gnresolve.yaml)")
	rootCmd.PersistentFlags().String("host", "", "PostgreSQL host")
	rootCmd.PersistentFlags().Int("port", 0, "PostgreSQL port")
	rootCmd.PersistentFlags().String("user", "", "PostgreSQL user")
	rootCmd.PersistentFlags().String("password", "", "PostgreSQL password")
	rootCmd.PersistentFlags().String("database", "", "PostgreSQL database name")
	rootCmd.PersistentFlags().String("ssl-mode", "", "PostgreSQL SSL mode")
	rootCmd.PersistentFlags().String("sqlite-path", "", "path to a local SQLite cache file (offline backend)")
	rootCmd.PersistentFlags().Int("jobs", 0, "number of concurrent workers")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gnresolve")

	rootCmd.AddCommand(
		getResolveCmd(),
		getBuildIndexCmd(),
	)

	return rootCmd
}

// getConfig returns the loaded configuration (for use in subcommands)
func getConfig() *pkgconfig.Config {
	return cfg
}

func getLogger() *slog.Logger {
	return log
}
