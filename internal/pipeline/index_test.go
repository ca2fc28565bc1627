package pipeline

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/rentmap/internal/model"
)

// bruteNeighbors is the reference all-pairs scan the bucket index must match.
func bruteNeighbors(i int, points []model.HeatPoint, radius float64) []int {
	var out []int
	for j, q := range points {
		if j == i {
			continue
		}
		if math.Hypot(points[i].Lat-q.Lat, points[i].Lng-q.Lng) < radius {
			out = append(out, j)
		}
	}
	return out
}

func TestPointIndex_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	points := make([]model.HeatPoint, 200)
	for i := range points {
		points[i] = model.HeatPoint{
			Lat: 40.55 + rng.Float64()*0.3,
			Lng: -74.05 + rng.Float64()*0.3,
		}
	}

	const radius = 0.015
	ix := newPointIndex(points, radius)

	for i := range points {
		var got []int
		ix.visitNeighbors(i, points, func(j int, dist float64) {
			assert.Less(t, dist, radius)
			got = append(got, j)
		})
		sort.Ints(got)

		assert.Equal(t, bruteNeighbors(i, points, radius), got, "point %d", i)
	}
}

func TestPointIndex_StrictRadiusBoundary(t *testing.T) {
	// Exactly radius apart: not neighbors.
	points := []model.HeatPoint{
		{Lat: 0, Lng: 0},
		{Lat: 0.015, Lng: 0},
	}

	ix := newPointIndex(points, 0.015)
	visited := 0
	ix.visitNeighbors(0, points, func(int, float64) { visited++ })
	assert.Zero(t, visited)
}

func TestPointIndex_ZeroRadius(t *testing.T) {
	points := []model.HeatPoint{
		{Lat: 40.60, Lng: -73.92},
		{Lat: 40.60, Lng: -73.92},
	}

	for _, radius := range []float64{0, -1} {
		ix := newPointIndex(points, radius)
		visited := 0
		ix.visitNeighbors(0, points, func(int, float64) { visited++ })
		assert.Zero(t, visited)
	}
}
