/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/davla/pkmn-3rd-gen-hex/pkg/catalog"
)

// Config represents the pkm3hex configuration
type Config struct {
	Catalogs Catalogs `yaml:"catalogs"`
	Bank     Bank     `yaml:"bank"`
	Server   Server   `yaml:"server"`
	Search   Search   `yaml:"search"`
	Logging  Logging  `yaml:"logging"`
}

// Catalogs points at the YAML tables the tool does not ship. Empty paths
// leave the builtin placeholder tables in place.
type Catalogs struct {
	Words     string `yaml:"words"`
	Items     string `yaml:"items"`
	Moves     string `yaml:"moves"`
	Locations string `yaml:"locations"`
}

// Bank contains record bank configuration
type Bank struct {
	DataDir string `yaml:"data_dir"`
}

// Server contains HTTP API configuration
type Server struct {
	Port   int    `yaml:"port"`
	Bind   string `yaml:"bind"`
	APIKey string `yaml:"api_key"`
}

// Search contains mail search defaults
type Search struct {
	Limit int `yaml:"limit"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Bank: Bank{
			DataDir: "./data/bank",
		},
		Server: Server{
			Port:   8080,
			Bind:   "127.0.0.1",
			APIKey: "auto",
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// CatalogPaths returns the catalog file paths in the form catalog.LoadCatalogs
// takes.
func (c *Config) CatalogPaths() catalog.Paths {
	return catalog.Paths{
		Items:     c.Catalogs.Items,
		Moves:     c.Catalogs.Moves,
		Locations: c.Catalogs.Locations,
	}
}

// LoadConfig loads configuration from the specified path
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// LoadOrDefault loads the configuration at configPath, or returns the
// defaults when there is no file there.
func LoadOrDefault(configPath string) (*Config, error) {
	if !ConfigExists(configPath) {
		return DefaultConfig(), nil
	}
	return LoadConfig(configPath)
}

// SaveConfig saves the configuration to the specified path with secure permissions
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write with secure permissions (0600)
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GenerateSecureKey generates a cryptographically secure random key
func GenerateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate secure key: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// BootstrapConfig creates a new configuration with a generated API key and
// writes it to configPath.
func BootstrapConfig(configPath string, bankDir string) (*Config, error) {
	config := DefaultConfig()
	if bankDir != "" {
		config.Bank.DataDir = bankDir
	}

	apiKey, err := GenerateSecureKey(32) // 256 bits
	if err != nil {
		return nil, fmt.Errorf("failed to generate API key: %w", err)
	}
	config.Server.APIKey = apiKey

	if err := SaveConfig(config, configPath); err != nil {
		return nil, fmt.Errorf("failed to save bootstrap config: %w", err)
	}

	return config, nil
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./pkm3hex.yaml"
	}

	// For Linux/macOS, use ~/.config/pkm3hex/config.yaml
	configDir := filepath.Join(homeDir, ".config", "pkm3hex")
	return filepath.Join(configDir, "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
