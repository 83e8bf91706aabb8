package config

import (
	"context"
	"fmt"

	"github.com/smartplan/pdid/pkg/pdid/cache"
	"github.com/smartplan/pdid/pkg/pdid/catalog"
	"github.com/smartplan/pdid/pkg/pdid/catalog/sqlitecat"
	"github.com/smartplan/pdid/pkg/pdid/catalog/yamlcat"
	"github.com/smartplan/pdid/pkg/pdid/label"
)

// Components holds the constructed pipeline dependencies.
type Components struct {
	Source     catalog.Source
	Extractor  *label.Extractor
	Classifier *catalog.Classifier
	Cache      *cache.CatalogCache
}

// Build constructs pipeline components from a loaded configuration.
func (c *Config) Build(ctx context.Context) (*Components, error) {
	comp := &Components{}

	switch c.Catalog.Driver {
	case "sqlite":
		src, err := sqlitecat.Open(ctx, c.Catalog.Path)
		if err != nil {
			return nil, fmt.Errorf("open catalog: %w", err)
		}
		comp.Source = src
	case "yaml", "":
		comp.Source = yamlcat.Open(c.Catalog.Path)
	default:
		return nil, fmt.Errorf("unknown catalog driver %q", c.Catalog.Driver)
	}

	comp.Extractor = label.NewExtractor()
	for text, pdid := range c.Aliases {
		comp.Extractor.AddAlias(text, pdid)
	}

	rules := make([]catalog.Rule, 0, len(c.Categories))
	for _, r := range c.Categories {
		rules = append(rules, catalog.Rule{
			Category: catalog.ParseCategory(r.Category),
			Keywords: r.Keywords,
		})
	}
	comp.Classifier = catalog.NewClassifier(rules)

	catCache, err := cache.New(c.CacheSize)
	if err != nil {
		comp.Source.Close()
		return nil, fmt.Errorf("create catalog cache: %w", err)
	}
	comp.Cache = catCache

	return comp, nil
}
