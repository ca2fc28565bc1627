package pipeline

import (
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/sells-group/rentmap/internal/config"
	"github.com/sells-group/rentmap/internal/model"
)

// CellSizer picks the grid cell size for a coordinate. It must be a pure
// per-point function: cell assignment may never depend on neighboring
// listings, so binning stays parallelizable.
type CellSizer func(lat, lng float64) float64

// NewCellSizer returns a sizer using the fine cell size inside the
// configured dense zones and the base size elsewhere.
func NewCellSizer(cfg config.GridConfig) CellSizer {
	zones := cfg.DenseZones
	return func(lat, lng float64) float64 {
		for _, z := range zones {
			if z.Contains(lat, lng) {
				return cfg.DenseCellSize
			}
		}
		return cfg.BaseCellSize
	}
}

// cellKey identifies one adaptive grid cell. Coordinates are rounded to six
// decimals so float noise cannot split a cell into two keys.
type cellKey struct {
	lat  float64
	lng  float64
	size float64
}

// Aggregate bins the market cohort into adaptive cells and emits one
// HeatPoint per cell that meets the minimum occupancy. Thin cells are
// dropped entirely rather than emitted with a noisy value.
func Aggregate(market []model.Listing, cfg config.GridConfig, sizer CellSizer, report *model.Report) []model.HeatPoint {
	cells := make(map[cellKey][]model.Listing)
	for _, l := range market {
		size := sizer(l.Lat, l.Lng)
		key := cellKey{
			lat:  round6(math.Round(l.Lat/size) * size),
			lng:  round6(math.Round(l.Lng/size) * size),
			size: size,
		}
		cells[key] = append(cells[key], l)
	}

	// Deterministic cell order regardless of map iteration.
	keys := make([]cellKey, 0, len(cells))
	for key := range cells {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].lat != keys[j].lat {
			return keys[i].lat < keys[j].lat
		}
		if keys[i].lng != keys[j].lng {
			return keys[i].lng < keys[j].lng
		}
		return keys[i].size < keys[j].size
	})

	points := make([]model.HeatPoint, 0, len(keys))
	for _, key := range keys {
		listings := cells[key]
		if len(listings) < cfg.MinCellCount {
			report.ThinCells++
			continue
		}
		points = append(points, model.HeatPoint{
			Lat:   round4(key.lat),
			Lng:   round4(key.lng),
			Rent:  cellValue(listings, cfg.ValuePolicy),
			Count: len(listings),
		})
	}
	report.Cells = len(points)

	zap.L().Info("pipeline: grid aggregated",
		zap.Int("cells", report.Cells),
		zap.Int("thin_cells", report.ThinCells),
		zap.String("value_policy", cfg.ValuePolicy),
	)
	return points
}

// cellValue computes the representative rent for a cell's listings.
func cellValue(listings []model.Listing, policy string) int {
	if policy == config.PolicyNhoodMean {
		return nhoodMean(listings)
	}
	rents := make([]float64, len(listings))
	for i, l := range listings {
		rents[i] = l.Rent
	}
	return int(upperMedian(rents))
}

// nhoodMean groups a cell's listings by neighborhood, takes a mean per
// neighborhood, and averages those means with equal weight. A cell straddling
// two neighborhoods is not dominated by whichever contributed more listings.
// With a single neighborhood this reduces to a plain mean.
func nhoodMean(listings []model.Listing) int {
	byNhood := make(map[string][]float64)
	for _, l := range listings {
		name := l.Neighborhood
		if name == "" {
			name = "Unknown"
		}
		byNhood[name] = append(byNhood[name], l.Rent)
	}

	means := make([]float64, 0, len(byNhood))
	for _, rents := range byNhood {
		means = append(means, mean(rents))
	}
	return int(math.Round(mean(means)))
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
