package model

import "time"

// HeatPoint is one aggregated grid cell of the output heat map. Lat/Lng is
// the cell center. Rent is rewritten by the smoothing pass and then the
// clamping pass; Count is fixed at aggregation time and used only as a
// confidence weight.
type HeatPoint struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Rent  int     `json:"rent"`
	Count int     `json:"count"`
}

// Report holds per-stage observability counters for one pipeline run.
// Drops are counted, never surfaced as errors.
type Report struct {
	RawCount        int `json:"raw_count"`
	DroppedNoCoords int `json:"dropped_no_coords"`
	DroppedRentHigh int `json:"dropped_rent_high"`
	DroppedRentLow  int `json:"dropped_rent_low"`
	DroppedBadType  int `json:"dropped_bad_type"`
	DroppedBeds     int `json:"dropped_beds"`
	CohortCount     int `json:"cohort_count"`
	Stabilized      int `json:"stabilized"`
	MarketCount     int `json:"market_count"`
	ThinCells       int `json:"thin_cells"`
	Cells           int `json:"cells"`
	Clamped         int `json:"clamped"`
}

// RegionStat summarizes the market cohort for one region label.
type RegionStat struct {
	Region string  `json:"region"`
	Count  int     `json:"count"`
	Median float64 `json:"median"`
	Mean   float64 `json:"mean"`
}

// Run records one persisted pipeline execution.
type Run struct {
	ID         string    `json:"id"`
	Source     string    `json:"source"`
	PointCount int       `json:"point_count"`
	Report     Report    `json:"report"`
	CreatedAt  time.Time `json:"created_at"`
}
