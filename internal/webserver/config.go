package webserver

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed config/default.toml
var defaultConfigFS embed.FS

// Config holds the server settings. The embedded default.toml provides
// every value; an optional config file overrides the fields it sets.
type Config struct {
	ListenAddr        string   `toml:"listen_addr"`
	MaxFileSizeBytes  int64    `toml:"max_file_size_bytes"`
	MaxFormSizeBytes  int64    `toml:"max_form_size_bytes"`
	AllowedExtensions []string `toml:"allowed_extensions"`
}

// DefaultConfig returns the embedded default configuration.
func DefaultConfig() (Config, error) {
	data, err := defaultConfigFS.ReadFile("config/default.toml")
	if err != nil {
		return Config{}, fmt.Errorf("failed to read embedded config: %w", err)
	}

	var cfg Config

	err = toml.Unmarshal(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse embedded config: %w", err)
	}

	return cfg, nil
}

// LoadConfig returns the default configuration overlaid with the TOML
// file at path. An empty path means defaults only.
func LoadConfig(path string) (Config, error) {
	cfg, err := DefaultConfig()
	if err != nil {
		return Config{}, err
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	err = toml.Unmarshal(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// ExtensionAllowed reports whether ext (including the leading dot) is
// on the upload allowlist. Matching is case-insensitive.
func (c Config) ExtensionAllowed(ext string) bool {
	ext = strings.ToLower(ext)
	for _, allowed := range c.AllowedExtensions {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}

	return false
}
