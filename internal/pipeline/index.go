package pipeline

import (
	"math"

	"github.com/sells-group/rentmap/internal/model"
)

// pointIndex is a uniform bucket grid over heat points, keyed by
// floor(coord/radius). Any point within radius of a query point lives in the
// query's bucket or one of its eight neighbors, so a radius query touches at
// most nine buckets instead of the whole point set. Neighbor membership is
// identical to the plain all-pairs scan: strict dist < radius.
type pointIndex struct {
	radius  float64
	buckets map[[2]int][]int
}

func newPointIndex(points []model.HeatPoint, radius float64) *pointIndex {
	ix := &pointIndex{
		radius:  radius,
		buckets: make(map[[2]int][]int),
	}
	if radius <= 0 {
		return ix
	}
	for i, p := range points {
		key := ix.bucketKey(p.Lat, p.Lng)
		ix.buckets[key] = append(ix.buckets[key], i)
	}
	return ix
}

func (ix *pointIndex) bucketKey(lat, lng float64) [2]int {
	return [2]int{
		int(math.Floor(lat / ix.radius)),
		int(math.Floor(lng / ix.radius)),
	}
}

// visitNeighbors calls fn for every point j != i with dist(i, j) < radius.
// Visit order is deterministic: buckets in fixed row-major order, indices in
// insertion order within a bucket.
func (ix *pointIndex) visitNeighbors(i int, points []model.HeatPoint, fn func(j int, dist float64)) {
	if ix.radius <= 0 {
		return
	}
	p := points[i]
	center := ix.bucketKey(p.Lat, p.Lng)

	for dLat := -1; dLat <= 1; dLat++ {
		for dLng := -1; dLng <= 1; dLng++ {
			key := [2]int{center[0] + dLat, center[1] + dLng}
			for _, j := range ix.buckets[key] {
				if j == i {
					continue
				}
				q := points[j]
				dist := math.Hypot(p.Lat-q.Lat, p.Lng-q.Lng)
				if dist < ix.radius {
					fn(j, dist)
				}
			}
		}
	}
}
