// Package paths resolves the configuration directory, the devlog
// repository directory, and the editor program.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// Repository and editor defaults.
const (
	DefaultRepoDirName = "devlogs"
	DefaultEditor      = "nano"
)

// Environment variable names for overrides.
const (
	EnvConfigDir = "DEVLOG_CONFIG_DIR"
	EnvRepoDir   = "DEVLOG_REPO"
	EnvEditor    = "DEVLOG_EDITOR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/devlog (fallback ~/.config/devlog)
// macOS:   ~/Library/Application Support/devlog
// Windows: %APPDATA%/devlog
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "devlog"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "devlog"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "devlog"), nil
	}
}

// DefaultRepoDir returns $HOME/devlogs, the repository location used when
// no override is active.
func DefaultRepoDir() (string, error) {
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultRepoDirName), nil
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > DEVLOG_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveRepoDir returns the repository directory following the precedence
// chain: flag > config.yaml repo_dir > DEVLOG_REPO env > $HOME/devlogs.
func ResolveRepoDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvRepoDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultRepoDir()
}

// ResolveEditor returns the editor program following the precedence chain:
// config.yaml editor > DEVLOG_EDITOR env > nano. The value is an opaque
// program name; it is resolved through $PATH when the editor is launched.
func ResolveEditor(configYAMLValue string) string {
	if configYAMLValue != "" {
		return configYAMLValue
	}
	if env := os.Getenv(EnvEditor); env != "" {
		return env
	}
	return DefaultEditor
}
