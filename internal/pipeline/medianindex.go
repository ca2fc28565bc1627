package pipeline

import (
	"math"

	"github.com/sells-group/rentmap/internal/model"
)

// MedianIndex is a coarse spatial lookup of local median rents. It is built
// once over the cohort and read-only afterward; its grid is deliberately
// coarser than the aggregation grid so each cell collects enough samples for
// a noise-resistant reference price.
type MedianIndex struct {
	gridSize float64
	medians  map[[2]float64]float64
}

// BuildMedianIndex partitions the cohort into gridSize cells and stores the
// median rent of every cell holding at least minSample listings.
func BuildMedianIndex(cohort []model.Listing, gridSize float64, minSample int) *MedianIndex {
	cells := make(map[[2]float64][]float64)
	for _, l := range cohort {
		key := coarseKey(l.Lat, l.Lng, gridSize)
		cells[key] = append(cells[key], l.Rent)
	}

	medians := make(map[[2]float64]float64, len(cells))
	for key, rents := range cells {
		if len(rents) >= minSample {
			medians[key] = upperMedian(rents)
		}
	}

	return &MedianIndex{gridSize: gridSize, medians: medians}
}

// Lookup returns the stored median for the coarse cell containing the point.
// The second return is false when the cell never reached the sample minimum.
func (ix *MedianIndex) Lookup(lat, lng float64) (float64, bool) {
	m, ok := ix.medians[coarseKey(lat, lng, ix.gridSize)]
	return m, ok
}

// Cells returns the number of cells that reached the sample minimum.
func (ix *MedianIndex) Cells() int {
	return len(ix.medians)
}

func coarseKey(lat, lng, size float64) [2]float64 {
	return [2]float64{
		math.Round(lat/size) * size,
		math.Round(lng/size) * size,
	}
}
