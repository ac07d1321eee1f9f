package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	configFile    = "config.json"
	defaultABIDir = "abis"
)

// Config holds calldecode configuration.
type Config struct {
	// ABIDir is the directory of user-supplied ABI JSON files appended to
	// the built-in catalogue. Relative paths resolve against the config dir.
	ABIDir string `json:"abi_dir"`

	// internal: config dir path used for Save()
	configDir string
}

// Load reads config from dir (or creates defaults). dir defaults to
// ~/.calldecode.
func Load(dir string) (*Config, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("could not determine home dir: %w", err)
		}
		dir = filepath.Join(home, ".calldecode")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("could not create config dir: %w", err)
	}

	cfg := &Config{ABIDir: defaultABIDir, configDir: dir}

	path := filepath.Join(dir, configFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.configDir = dir
	if cfg.ABIDir == "" {
		cfg.ABIDir = defaultABIDir
	}

	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.configDir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.configDir, configFile), data, 0o600)
}

// Dir returns the config directory.
func (c *Config) Dir() string {
	return c.configDir
}

// ABIDirPath returns the absolute path of the user ABI directory.
func (c *Config) ABIDirPath() string {
	if filepath.IsAbs(c.ABIDir) {
		return c.ABIDir
	}
	return filepath.Join(c.configDir, c.ABIDir)
}
