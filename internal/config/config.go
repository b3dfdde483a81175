// Package config loads the user's caolan settings from a YAML file
package config

import (
	"os"
	"path/filepath"

	"github.com/ocluk/caolan/internal/database"
	"gopkg.in/yaml.v3"
)

const (
	// appDir is the directory name under the XDG config home
	appDir = "caolan"

	// EnvDatabasePath overrides the database_path setting
	EnvDatabasePath = "CAOLAN_DB_PATH"

	// EnvThemeFile names a YAML file whose theme section is merged over the config
	EnvThemeFile = "CAOLAN_THEME_FILE"
)

// Config represents the application configuration
type Config struct {
	DatabasePath string      `yaml:"database_path,omitempty"`
	KeyMappings  KeyMappings `yaml:"key_mappings"`
	ColorScheme  ColorScheme `yaml:"theme"`
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	config := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
	config.applyDefaults()
	return config
}

// loadThemeFile loads and merges theme from CAOLAN_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		config := Default()
		loadThemeFile(config)
		applyEnv(config)
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		applyEnv(config)
		return config, nil
	}
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Load theme from CAOLAN_THEME_FILE if set
	loadThemeFile(&config)
	applyEnv(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appDir, "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", appDir, "config.yaml"), nil
}

func applyEnv(c *Config) {
	if dbPath := os.Getenv(EnvDatabasePath); dbPath != "" {
		c.DatabasePath = dbPath
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.DatabasePath == "" {
		// Left empty without a home directory; opening the store then fails
		if path, err := database.DefaultPath(); err == nil {
			c.DatabasePath = path
		}
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
