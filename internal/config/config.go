// Copyright (c) 2025 ToeiRei
// Tablekit - table filter components for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

// package config loads the application configuration, layering defaults,
// config files, environment variables and CLI flags through viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the demo application configuration.
type Config struct {
	// Dataset is the path of a YAML dataset file to browse.
	Dataset string `mapstructure:"dataset" yaml:"dataset"`
	// DBType selects the storage backend: sqlite, postgres or mysql. Empty
	// means the dataset is served from memory.
	DBType string `mapstructure:"db_type" yaml:"db_type"`
	// DSN is the database connection string for DBType.
	DSN string `mapstructure:"dsn" yaml:"dsn"`
	// Language is the UI language tag, e.g. "en" or "de".
	Language string `mapstructure:"language" yaml:"language"`
	// Debug enables debug logging.
	Debug bool `mapstructure:"debug" yaml:"debug"`
}

// getConfigPath returns the full path for the configuration file.
func getConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Tablekit")
		default: // Linux, macOS, etc.
			configDir = "/etc/tablekit"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "tablekit")
	}

	return filepath.Join(configDir, "tablekit.yaml"), nil
}

// Load builds the configuration for a command. Precedence, lowest to highest:
// defaults, config file (explicit path first, then user and system dirs, then
// the working directory), environment variables, CLI flags.
func Load(cmd *cobra.Command, defaults map[string]any, configFilePath *string) (Config, error) {
	var c Config
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("tablekit")
	v.SetConfigType("yaml")

	// An explicit --config path has the highest precedence for file-based
	// configuration.
	if configFilePath != nil && *configFilePath != "" {
		v.SetConfigFile(*configFilePath)
	}

	if userConfigPath, err := getConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := getConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	// A missing file still yields a usable config from the other layers, so
	// the not-found error is carried alongside the result for the caller to
	// inspect.
	var notFound error
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
		notFound = err
	}

	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("tablekit")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return c, err
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, notFound
}

// WriteConfigFile persists the configuration to the user or system config
// location.
func WriteConfigFile(c *Config, system bool) error {
	path, err := getConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	return os.WriteFile(path, data, 0600)
}
