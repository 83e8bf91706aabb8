// Package sqlitecat persists the device catalog in SQLite.
package sqlitecat

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/smartplan/pdid/pkg/pdid/catalog"
	"github.com/smartplan/pdid/pkg/pdid/internalerr"
)

// Source is a SQLite-backed catalog source.
type Source struct {
	path string
	db   *sql.DB
}

// Open opens (or creates) a SQLite catalog store with WAL mode enabled.
func Open(ctx context.Context, path string) (*Source, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", internalerr.ErrCatalogLoad, path, err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", internalerr.ErrCatalogLoad, err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", internalerr.ErrCatalogLoad, err)
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: init schema: %v", internalerr.ErrCatalogLoad, err)
	}

	return &Source{path: path, db: db}, nil
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS devices (
	pdid TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	category TEXT NOT NULL DEFAULT '',
	unit_price TEXT NOT NULL DEFAULT '0'
);

CREATE TABLE IF NOT EXISTS device_specs (
	pdid TEXT NOT NULL,
	key TEXT NOT NULL,
	value TEXT NOT NULL,
	PRIMARY KEY(pdid, key),
	FOREIGN KEY(pdid) REFERENCES devices(pdid) ON DELETE CASCADE
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// Identity implements catalog.Source.
func (s *Source) Identity() string { return "sqlite:" + s.path }

// Close closes the database connection.
func (s *Source) Close() error { return s.db.Close() }

// Put inserts or replaces one device record. Keys are stored as given;
// normalization and collision detection happen at catalog build time.
func (s *Source) Put(ctx context.Context, rec catalog.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO devices (pdid, name, category, unit_price) VALUES (?, ?, ?, ?)`,
		rec.PDID, rec.Name, string(rec.Category), rec.UnitPrice.String())
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM device_specs WHERE pdid = ?`, rec.PDID); err != nil {
		return err
	}
	for key, value := range rec.Specs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO device_specs (pdid, key, value) VALUES (?, ?, ?)`,
			rec.PDID, key, value)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Load reads every device record in insertion order.
func (s *Source) Load(ctx context.Context) ([]catalog.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT pdid, name, category, unit_price FROM devices ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("%w: query devices: %v", internalerr.ErrCatalogLoad, err)
	}
	defer rows.Close()

	var records []catalog.Record
	for rows.Next() {
		var rec catalog.Record
		var category, price string
		if err := rows.Scan(&rec.PDID, &rec.Name, &category, &price); err != nil {
			return nil, fmt.Errorf("%w: scan device: %v", internalerr.ErrCatalogLoad, err)
		}
		if category != "" {
			rec.Category = catalog.ParseCategory(category)
		}
		rec.UnitPrice, err = decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("%w: device %q: bad unit_price %q",
				internalerr.ErrCatalogLoad, rec.PDID, price)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrCatalogLoad, err)
	}

	for i := range records {
		specs, err := s.loadSpecs(ctx, records[i].PDID)
		if err != nil {
			return nil, err
		}
		records[i].Specs = specs
	}
	return records, nil
}

func (s *Source) loadSpecs(ctx context.Context, pdid string) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT key, value FROM device_specs WHERE pdid = ?`, pdid)
	if err != nil {
		return nil, fmt.Errorf("%w: query specs for %q: %v", internalerr.ErrCatalogLoad, pdid, err)
	}
	defer rows.Close()

	var specs map[string]string
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: scan spec for %q: %v", internalerr.ErrCatalogLoad, pdid, err)
		}
		if specs == nil {
			specs = make(map[string]string)
		}
		specs[key] = value
	}
	return specs, rows.Err()
}
