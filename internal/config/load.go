package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "config.yaml"

// Load builds the effective configuration. Later layers win:
// defaults, then the first config file found (or the -config path),
// then command-line flags.
func Load() (*Config, error) {
	cfg := Default()

	path := opts.config
	if path == "" {
		path = firstExisting(searchPaths())
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	opts.apply(cfg)
	return cfg, nil
}

// searchPaths lists where a config file may live, most local first.
func searchPaths() []string {
	return []string{
		configFile,
		filepath.Join(ConfigDir(), configFile),
	}
}

func firstExisting(paths []string) string {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// ConfigDir returns the per-user directory the viewer keeps its
// config in.
func ConfigDir() string {
	if base, err := os.UserConfigDir(); err == nil {
		return filepath.Join(base, "partscene")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".partscene")
}

// mergeFile overlays the YAML file at path onto c. Keys absent from
// the file keep their current values.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}
