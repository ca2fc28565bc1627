package pipeline

import (
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/rentmap/internal/config"
	"github.com/sells-group/rentmap/internal/model"
)

// Clean validates raw records into the statistical cohort. Records are kept
// as-is or excluded, never partially modified. Drop counts by reason go into
// the report.
func Clean(raw []model.RawListing, cfg config.FilterConfig, report *model.Report) []model.Listing {
	excluded := make(map[string]bool, len(cfg.ExcludedTypes))
	for _, t := range cfg.ExcludedTypes {
		excluded[strings.ToUpper(t)] = true
	}

	report.RawCount = len(raw)

	cohort := make([]model.Listing, 0, len(raw))
	for _, r := range raw {
		if r.Beds != cfg.Beds {
			report.DroppedBeds++
			continue
		}
		if r.Lat == 0 || r.Lng == 0 {
			report.DroppedNoCoords++
			continue
		}
		if r.Rent > cfg.MaxRent {
			report.DroppedRentHigh++
			continue
		}
		if excluded[strings.ToUpper(r.Type)] {
			report.DroppedBadType++
			continue
		}
		if r.Rent < cfg.MinRent {
			report.DroppedRentLow++
			continue
		}
		cohort = append(cohort, model.Listing{
			Lat:          r.Lat,
			Lng:          r.Lng,
			Rent:         r.Rent,
			Beds:         r.Beds,
			PropertyType: strings.ToUpper(r.Type),
			Neighborhood: r.Neighborhood,
		})
	}

	report.CohortCount = len(cohort)

	zap.L().Info("pipeline: cohort cleaned",
		zap.Int("raw", report.RawCount),
		zap.Int("cohort", report.CohortCount),
		zap.Int("dropped_beds", report.DroppedBeds),
		zap.Int("dropped_no_coords", report.DroppedNoCoords),
		zap.Int("dropped_rent_high", report.DroppedRentHigh),
		zap.Int("dropped_rent_low", report.DroppedRentLow),
		zap.Int("dropped_bad_type", report.DroppedBadType),
	)
	return cohort
}
