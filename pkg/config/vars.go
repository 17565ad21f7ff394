package config

import (
	"path/filepath"
)

// AppName is used in generating file system paths.
var AppName = "gnresolve"

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gnresolve by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/gnresolve by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gnresolve/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the gnresolve.yaml file.
// Returns ~/.config/gnresolve/gnresolve.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "gnresolve.yaml")
}

// DataSourcesFilePath returns the full path to the data-sources.yaml
// catalogue file.
// Returns ~/.config/gnresolve/data-sources.yaml by default.
func DataSourcesFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "data-sources.yaml")
}
