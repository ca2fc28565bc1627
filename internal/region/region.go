// Package region assigns coarse region labels to listings. The classifier is
// injected into callers as a plain function so another city's table can be
// swapped in without touching the pipeline.
package region

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"

	"github.com/sells-group/rentmap/internal/config"
	"github.com/sells-group/rentmap/internal/model"
)

// Unknown is the sentinel label returned when no table entry or geometric
// rule matches. Classifiers return it rather than failing.
const Unknown = "Unknown"

// Classifier maps a listing to a region label.
type Classifier func(model.Listing) string

// Fallback resolves a region from coordinates alone, used when the
// neighborhood name is absent from the table.
type Fallback func(lat, lng float64) string

// NewTableClassifier builds a Classifier that consults the neighborhood-name
// table first and falls back to the geometric rule. A nil fallback yields
// Unknown for unmapped neighborhoods.
func NewTableClassifier(table map[string]string, fallback Fallback) Classifier {
	return func(l model.Listing) string {
		if r, ok := table[l.Neighborhood]; ok {
			return r
		}
		if fallback != nil {
			return fallback(l.Lat, l.Lng)
		}
		return Unknown
	}
}

// Built-in table names for config.RegionConfig.Table.
const (
	TableBorough = "borough"
	TableNine    = "nine"
)

// ForConfig returns the classifier selected by the region configuration.
// A table_file overrides the named built-in table but keeps its geometric
// fallback.
func ForConfig(cfg config.RegionConfig) (Classifier, error) {
	var table map[string]string
	var fallback Fallback

	switch cfg.Table {
	case TableBorough, "":
		table = BoroughTable()
		fallback = BoroughFallback
	case TableNine:
		table = NineRegionTable()
		fallback = NineRegionFallback
	default:
		return nil, eris.Errorf("region: unknown table %q", cfg.Table)
	}

	if cfg.TableFile != "" {
		loaded, err := LoadTableFile(cfg.TableFile)
		if err != nil {
			return nil, err
		}
		table = loaded
	}

	return NewTableClassifier(table, fallback), nil
}

// LoadTableFile reads a neighborhood-to-region JSON object from disk.
func LoadTableFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "region: read table file %s", path)
	}
	var table map[string]string
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, eris.Wrapf(err, "region: parse table file %s", path)
	}
	if len(table) == 0 {
		return nil, eris.Errorf("region: table file %s is empty", path)
	}
	return table, nil
}
