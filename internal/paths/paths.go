// Package paths resolves the desksort configuration and data directories.
//
// Each directory is chosen by the first non-empty source in a precedence
// chain ending in a platform default:
//
//	config: --config-dir flag > DESKSORT_CONFIG_DIR > platform config dir
//	data:   --data-dir flag > data_dir in config.yaml > DESKSORT_DATA_DIR > platform data dir
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName is the directory name used under the platform locations.
const AppName = "desksort"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "DESKSORT_CONFIG_DIR"
	EnvDataDir   = "DESKSORT_DATA_DIR"
)

// ConfigFile is the configuration file name inside the config directory.
const ConfigFile = "config.yaml"

// platformDir holds platform lookups that tests override.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// xdgDir returns $env/desksort, or ~/fallback/desksort when env is unset.
func xdgDir(env string, fallback ...string) (string, error) {
	if dir := os.Getenv(env); dir != "" {
		return filepath.Join(dir, AppName), nil
	}
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	parts := append([]string{home}, fallback...)
	return filepath.Join(append(parts, AppName)...), nil
}

// DefaultConfigDir returns the platform configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/desksort (fallback ~/.config/desksort)
// macOS:   ~/Library/Application Support/desksort
// Windows: %APPDATA%/desksort
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		return xdgDir("XDG_CONFIG_HOME", ".config")
	}
	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName), nil
}

// DefaultDataDir returns the platform data directory. Outside Linux it is
// the configuration directory.
//
// Linux: $XDG_DATA_HOME/desksort (fallback ~/.local/share/desksort)
func DefaultDataDir() (string, error) {
	if runtime.GOOS == "linux" {
		return xdgDir("XDG_DATA_HOME", ".local", "share")
	}
	return DefaultConfigDir()
}

// firstAbs returns the absolute form of the first non-empty candidate.
func firstAbs(candidates ...string) (string, bool, error) {
	for _, c := range candidates {
		if c != "" {
			abs, err := filepath.Abs(c)
			return abs, true, err
		}
	}
	return "", false, nil
}

// ResolveConfigDir returns the configuration directory for the given
// --config-dir flag value.
func ResolveConfigDir(flag string) (string, error) {
	if dir, ok, err := firstAbs(flag, os.Getenv(EnvConfigDir)); ok || err != nil {
		return dir, err
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory for the given --data-dir flag
// value and data_dir setting from config.yaml.
func ResolveDataDir(flag, configValue string) (string, error) {
	if dir, ok, err := firstAbs(flag, configValue, os.Getenv(EnvDataDir)); ok || err != nil {
		return dir, err
	}
	return DefaultDataDir()
}
