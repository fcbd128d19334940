package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	DB DBConfig `toml:"database"`
}

type DBConfig struct {
	Driver           string `toml:"driver"`            // "sqlite" (local file) or "libsql" (Turso).
	ConnectionString string `toml:"connection_string"` // The entire DB connection string.
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "ficha")
	return filepath.Join(dir, "config.toml"), nil
}

// GetDataPath returns the default location of the local database file,
// creating the directory if needed.
func GetDataPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "ficha")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "ficha.db"), nil
}

// Reads the configuration from the config file. A missing file is not an
// error: the app falls back to a local sqlite database under ~/.config/ficha.
func LoadConfig() (*Config, error) {
	var cfg Config

	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	if cfg.DB.Driver == "" {
		cfg.DB.Driver = "sqlite"
	}
	if cfg.DB.ConnectionString == "" {
		dataPath, err := GetDataPath()
		if err != nil {
			return nil, err
		}
		cfg.DB.ConnectionString = dataPath
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.DB.Driver = "sqlite"
		cfg.DB.ConnectionString = "file:./local.db?cache=shared&mode=rwc"
	}

	return &cfg, nil
}
