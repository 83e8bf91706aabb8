package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
catalog:
  driver: yaml
  path: /data/catalog.yaml
aliases:
  switch_1_yl: SW-001
categories:
  - category: switch
    keywords: [switch]
  - category: sensor
    keywords: [sensor, detector]
cache_size: 4
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Catalog.Driver != "yaml" || cfg.Catalog.Path != "/data/catalog.yaml" {
		t.Errorf("catalog config wrong: %+v", cfg.Catalog)
	}
	if cfg.Aliases["switch_1_yl"] != "SW-001" {
		t.Errorf("aliases wrong: %v", cfg.Aliases)
	}
	if len(cfg.Categories) != 2 || cfg.Categories[1].Keywords[1] != "detector" {
		t.Errorf("categories wrong: %+v", cfg.Categories)
	}
	if cfg.CacheSize != 4 {
		t.Errorf("cache_size wrong: %d", cfg.CacheSize)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing config file should fail")
	}
}

func TestLoadMalformed(t *testing.T) {
	if _, err := Load(writeConfig(t, "catalog: [")); err == nil {
		t.Error("malformed config should fail")
	}
}

func TestBuildDefaultsToYAMLDriver(t *testing.T) {
	cfg := &Config{Catalog: CatalogConfig{Path: "/data/catalog.yaml"}}

	comp, err := cfg.Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer comp.Source.Close()

	if comp.Source.Identity() != "yaml:/data/catalog.yaml" {
		t.Errorf("expected yaml source, got %q", comp.Source.Identity())
	}
	if comp.Extractor == nil || comp.Classifier == nil || comp.Cache == nil {
		t.Error("all components should be constructed")
	}
}

func TestBuildUnknownDriver(t *testing.T) {
	cfg := &Config{Catalog: CatalogConfig{Driver: "postgres"}}
	if _, err := cfg.Build(context.Background()); err == nil {
		t.Error("unknown driver should fail")
	}
}

func TestBuildSQLiteDriver(t *testing.T) {
	cfg := &Config{Catalog: CatalogConfig{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "catalog.db"),
	}}

	comp, err := cfg.Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer comp.Source.Close()

	if got := comp.Source.Identity(); got != "sqlite:"+cfg.Catalog.Path {
		t.Errorf("unexpected identity %q", got)
	}
}
