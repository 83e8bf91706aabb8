// Package yamlcat loads a device catalog from a YAML file.
package yamlcat

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/smartplan/pdid/pkg/pdid/catalog"
	"github.com/smartplan/pdid/pkg/pdid/internalerr"
)

// Source reads catalog records from a YAML file on demand.
type Source struct {
	path string
}

// Open creates a source for the given file path. The file is read on
// Load, not here, so a missing file surfaces as a load error.
func Open(path string) *Source {
	return &Source{path: path}
}

// Identity implements catalog.Source.
func (s *Source) Identity() string { return "yaml:" + s.path }

type catalogFile struct {
	Devices []deviceEntry `yaml:"devices"`
}

type deviceEntry struct {
	PDID      string            `yaml:"pdid"`
	Name      string            `yaml:"name"`
	Category  string            `yaml:"category"`
	UnitPrice string            `yaml:"unit_price"`
	Specs     map[string]string `yaml:"specs"`
}

// Load reads and parses the catalog file. Unreadable or malformed
// files fail with ErrCatalogLoad.
func (s *Source) Load(ctx context.Context) ([]catalog.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", internalerr.ErrCatalogLoad, s.path, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", internalerr.ErrCatalogLoad, s.path, err)
	}

	records := make([]catalog.Record, 0, len(file.Devices))
	for _, dev := range file.Devices {
		price := decimal.Zero
		if dev.UnitPrice != "" {
			price, err = decimal.NewFromString(dev.UnitPrice)
			if err != nil {
				return nil, fmt.Errorf("%w: device %q: bad unit_price %q",
					internalerr.ErrCatalogLoad, dev.PDID, dev.UnitPrice)
			}
		}
		var cat catalog.Category
		if dev.Category != "" {
			cat = catalog.ParseCategory(dev.Category)
		}
		records = append(records, catalog.Record{
			PDID:      dev.PDID,
			Name:      dev.Name,
			Category:  cat,
			UnitPrice: price,
			Specs:     dev.Specs,
		})
	}
	return records, nil
}

// Close implements catalog.Source.
func (s *Source) Close() error { return nil }
