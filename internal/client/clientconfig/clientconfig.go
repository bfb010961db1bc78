// Package clientconfig persists the player's opt-in stats preference and
// claim code to a small JSON file under the OS config directory.
package clientconfig

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Config is the on-disk client preference file.
type Config struct {
	ClaimCode    string `json:"claim_code"`
	StatsEnabled bool   `json:"stats_enabled"`
}

const configFileName = "config.json"

// Dir returns the directory Unquote's client config lives under,
// creating it if necessary.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, "unquote")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

func path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the config file. An absent file is not an error: it returns
// the zero Config ({claim_code:"", stats_enabled:false}) and false.
func Load() (Config, bool, error) {
	p, err := path()
	if err != nil {
		return Config{}, false, err
	}

	data, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, false, nil
	}
	if err != nil {
		return Config{}, false, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		// A corrupt config file is treated as absent, not fatal.
		return Config{}, false, nil
	}
	return cfg, true, nil
}

// Save writes cfg to the config file, overwriting any existing contents.
func Save(cfg Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, data, 0o600)
}
