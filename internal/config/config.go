// SPDX-License-Identifier: MPL-2.0

// Package config loads and persists dockhand's small operator configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "dockhand"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
)

// configDirOverride allows tests (and the --config flag) to bypass the
// platform config directory.
var configDirOverride string

// Config holds operator preferences. Every field has a working default, so a
// missing config file is not an error.
type Config struct {
	// Engine is the preferred container engine: auto, docker or podman.
	Engine string `mapstructure:"engine" toml:"engine"`
	// Shell is the program launched by the exec-into-container operation.
	Shell string `mapstructure:"shell" toml:"shell"`
	// LogTail is the number of log lines shown by the logs operation.
	LogTail int `mapstructure:"log_tail" toml:"log_tail"`
	// NoColor disables styled terminal output.
	NoColor bool `mapstructure:"no_color" toml:"no_color"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Engine:  "auto",
		Shell:   "/bin/bash",
		LogTail: 50,
		NoColor: false,
	}
}

// SetConfigDirOverride points Load and Save at an explicit directory.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// Dir returns the dockhand configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application
// Support, and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
func Dir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// FilePath returns the absolute path of the config file.
func FilePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}

// Load reads the configuration from the config file and DOCKHAND_* environment
// variables, falling back to defaults. A missing config file is fine; a broken
// one is an error the caller should surface.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(ConfigFileName)
	v.SetConfigType(ConfigFileExt)

	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	v.AddConfigPath(dir)

	v.SetEnvPrefix("DOCKHAND")
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("engine", def.Engine)
	v.SetDefault("shell", def.Shell)
	v.SetDefault("log_tail", def.LogTail)
	v.SetDefault("no_color", def.NoColor)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration as TOML to the config file, creating the
// config directory if needed.
func Save(cfg *Config) (string, error) {
	path, err := FilePath()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return path, nil
}
