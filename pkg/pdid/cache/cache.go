// Package cache shares built catalogs across pipeline runs. Catalogs
// are never mutated after build, so cached instances are safe to hand
// to concurrent runs without locking.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/smartplan/pdid/pkg/pdid/catalog"
)

// DefaultSize is the catalog cache capacity used when callers pass a
// non-positive size. Catalogs are per-store, so a handful is plenty.
const DefaultSize = 8

// CatalogCache is an LRU of built catalogs keyed by source identity.
type CatalogCache struct {
	lru *lru.Cache[string, *catalog.Catalog]
}

// New creates a cache holding up to size catalogs.
func New(size int) (*CatalogCache, error) {
	if size <= 0 {
		size = DefaultSize
	}
	c, err := lru.New[string, *catalog.Catalog](size)
	if err != nil {
		return nil, err
	}
	return &CatalogCache{lru: c}, nil
}

// Get returns the cached catalog for a source identity, if present.
func (c *CatalogCache) Get(identity string) (*catalog.Catalog, bool) {
	return c.lru.Get(identity)
}

// Put stores a built catalog under its source identity.
func (c *CatalogCache) Put(identity string, cat *catalog.Catalog) {
	c.lru.Add(identity, cat)
}

// Len returns the number of cached catalogs.
func (c *CatalogCache) Len() int {
	return c.lru.Len()
}
