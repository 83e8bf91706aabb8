// catalog-load imports a YAML device catalog into a SQLite catalog
// store, validating integrity along the way.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/smartplan/pdid/pkg/pdid/catalog"
	"github.com/smartplan/pdid/pkg/pdid/catalog/sqlitecat"
	"github.com/smartplan/pdid/pkg/pdid/catalog/yamlcat"
)

func main() {
	var (
		input = flag.String("input", "", "Path to YAML catalog file (required)")
		db    = flag.String("db", "", "Path to SQLite catalog store (required)")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}
	if *db == "" {
		log.Fatal("--db required")
	}

	ctx := context.Background()

	src := yamlcat.Open(*input)
	records, err := src.Load(ctx)
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}

	// reject colliding keys before anything is written
	if _, err := catalog.Build(records); err != nil {
		log.Fatalf("validate catalog: %v", err)
	}

	store, err := sqlitecat.Open(ctx, *db)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer store.Close()

	for _, rec := range records {
		if err := store.Put(ctx, rec); err != nil {
			log.Fatalf("store %s: %v", rec.PDID, err)
		}
	}
	log.Printf("imported %d devices into %s", len(records), *db)
}
