// Package config loads pipeline configuration and constructs the
// components the analyzer needs.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk pipeline configuration.
type Config struct {
	Catalog    CatalogConfig     `yaml:"catalog"`
	Aliases    map[string]string `yaml:"aliases"`
	Categories []CategoryRule    `yaml:"categories"`
	CacheSize  int               `yaml:"cache_size"`
}

// CatalogConfig selects the catalog store backend.
type CatalogConfig struct {
	Driver string `yaml:"driver"` // "sqlite" or "yaml"
	Path   string `yaml:"path"`
}

// CategoryRule assigns a category when a keyword appears in a device
// name; rules apply in file order, first match wins.
type CategoryRule struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// Load reads a pipeline configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}
