// Package export writes heat map results to the supported output formats.
package export

import (
	"io"

	"github.com/rotisserie/eris"
	geom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/sells-group/rentmap/internal/model"
)

// WriteGeoJSON encodes heat points as a GeoJSON FeatureCollection of Point
// features with rent and count properties. Point order is preserved.
func WriteGeoJSON(w io.Writer, points []model.HeatPoint) error {
	features := make([]*geojson.Feature, 0, len(points))
	for _, p := range points {
		features = append(features, &geojson.Feature{
			Geometry: geom.NewPointFlat(geom.XY, []float64{p.Lng, p.Lat}),
			Properties: map[string]interface{}{
				"rent":  p.Rent,
				"count": p.Count,
			},
		})
	}

	fc := &geojson.FeatureCollection{Features: features}
	data, err := fc.MarshalJSON()
	if err != nil {
		return eris.Wrap(err, "export: marshal feature collection")
	}
	if _, err := w.Write(data); err != nil {
		return eris.Wrap(err, "export: write geojson")
	}
	return nil
}
