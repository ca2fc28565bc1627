package pipeline

import (
	"sort"

	"github.com/sells-group/rentmap/internal/model"
)

// RegionStats summarizes the market cohort per region label: listing count,
// median rent, and mean rent. Listings must already carry a Region.
// Results are ordered by region name.
func RegionStats(market []model.Listing) []model.RegionStat {
	byRegion := make(map[string][]float64)
	for _, l := range market {
		byRegion[l.Region] = append(byRegion[l.Region], l.Rent)
	}

	stats := make([]model.RegionStat, 0, len(byRegion))
	for name, rents := range byRegion {
		stats = append(stats, model.RegionStat{
			Region: name,
			Count:  len(rents),
			Median: upperMedian(rents),
			Mean:   mean(rents),
		})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Region < stats[j].Region })
	return stats
}
