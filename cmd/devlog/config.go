// Config loading for the devlog CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// Config keys.
	cfgKeyRepoDir = "repo_dir"
	cfgKeyEditor  = "editor"
)

// configFile holds the structure written to config.yaml on first init.
type configFile struct {
	RepoDir string `yaml:"repo_dir,omitempty"`
	Editor  string `yaml:"editor,omitempty"`
}

// loadConfig reads config.yaml from the config directory using Viper.
// A missing config file or directory is not an error; every value it could
// carry has an environment or built-in fallback.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// writeConfigIfMissing records the resolved repository directory in
// config.yaml so later invocations agree on it. If the file already exists
// it is left untouched (idempotent).
func writeConfigIfMissing(configDir, repoDir string) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	path := filepath.Join(configDir, configFileName+"."+configFileType)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&configFile{RepoDir: repoDir})
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
