package region

import (
	"strings"

	shp "github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// BuildTableFromShapefile reads a polygon shapefile of neighborhood areas
// (e.g. NYC Neighborhood Tabulation Areas) and builds a neighborhood-name to
// region-label table from two attribute columns. Geometry is not consulted;
// the table is keyed purely on names so it can feed NewTableClassifier.
func BuildTableFromShapefile(path, nameField, regionField string) (map[string]string, error) {
	if path == "" {
		return nil, eris.New("region: shapefile path is required")
	}

	reader, err := shp.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "region: open shapefile %s", path)
	}
	defer func() { _ = reader.Close() }()

	nameIdx := fieldIndex(reader, nameField)
	regionIdx := fieldIndex(reader, regionField)
	if nameIdx < 0 || regionIdx < 0 {
		return nil, eris.Errorf("region: shapefile fields %q and %q not found", nameField, regionField)
	}

	table := make(map[string]string)
	var skipped int
	for reader.Next() {
		name := strings.TrimSpace(reader.Attribute(nameIdx))
		label := strings.TrimSpace(reader.Attribute(regionIdx))
		if name == "" || label == "" {
			skipped++
			continue
		}
		table[name] = label
	}

	if len(table) == 0 {
		return nil, eris.Errorf("region: no usable records in %s", path)
	}

	zap.L().Info("region: table built from shapefile",
		zap.String("path", path),
		zap.Int("neighborhoods", len(table)),
		zap.Int("skipped", skipped),
	)
	return table, nil
}

// fieldIndex returns the index of a named field in the shapefile, or -1 if
// not found.
func fieldIndex(reader *shp.Reader, name string) int {
	for i, f := range reader.Fields() {
		if strings.EqualFold(strings.TrimRight(f.String(), "\x00"), name) {
			return i
		}
	}
	return -1
}
