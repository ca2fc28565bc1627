package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/rentmap/internal/config"
	"github.com/sells-group/rentmap/internal/model"
)

func testSmoothConfig() config.SmoothConfig {
	return config.SmoothConfig{
		Radius:     0.008,
		SelfWeight: 2.0,
	}
}

func TestSmooth_NoNeighborsIsIdentity(t *testing.T) {
	// All pairwise distances exceed the radius, so each point keeps its value.
	points := []model.HeatPoint{
		{Lat: 40.60, Lng: -73.92, Rent: 3000, Count: 4},
		{Lat: 40.65, Lng: -73.92, Rent: 4000, Count: 2},
		{Lat: 40.70, Lng: -73.80, Rent: 5000, Count: 7},
	}

	out, err := Smooth(context.Background(), points, testSmoothConfig())
	require.NoError(t, err)
	assert.Equal(t, points, out)
}

func TestSmooth_BlendsWithinRadius(t *testing.T) {
	points := []model.HeatPoint{
		{Lat: 40.600, Lng: -73.92, Rent: 3000, Count: 4},
		{Lat: 40.605, Lng: -73.92, Rent: 4000, Count: 4},
	}

	out, err := Smooth(context.Background(), points, testSmoothConfig())
	require.NoError(t, err)

	// dist = 0.005, inverse-distance weight 200, self weight 2:
	// (3000*2 + 4000*200) / 202 = 3990.1, (4000*2 + 3000*200) / 202 = 3009.9
	require.Len(t, out, 2)
	assert.Equal(t, 3990, out[0].Rent)
	assert.Equal(t, 3010, out[1].Rent)

	// Counts and coordinates are never touched by smoothing.
	assert.Equal(t, points[0].Count, out[0].Count)
	assert.Equal(t, points[0].Lat, out[0].Lat)
}

func TestSmooth_AnisotropicSuppressesPriceDiscontinuity(t *testing.T) {
	points := []model.HeatPoint{
		{Lat: 40.600, Lng: -73.92, Rent: 3000, Count: 4},
		{Lat: 40.605, Lng: -73.92, Rent: 4000, Count: 4},
	}

	cfg := testSmoothConfig()
	cfg.Anisotropic = true
	cfg.Sigma = 100 // $1,000 gap at sigma $100 makes the neighbor weightless

	out, err := Smooth(context.Background(), points, cfg)
	require.NoError(t, err)
	assert.Equal(t, 3000, out[0].Rent)
	assert.Equal(t, 4000, out[1].Rent)
}

func TestSmooth_CoincidentPointExcluded(t *testing.T) {
	// A neighbor at distance zero would divide by zero; it must be skipped.
	points := []model.HeatPoint{
		{Lat: 40.60, Lng: -73.92, Rent: 3000, Count: 4},
		{Lat: 40.60, Lng: -73.92, Rent: 9000, Count: 4},
	}

	out, err := Smooth(context.Background(), points, testSmoothConfig())
	require.NoError(t, err)
	assert.Equal(t, 3000, out[0].Rent)
	assert.Equal(t, 9000, out[1].Rent)
}

func TestSmooth_Deterministic(t *testing.T) {
	var points []model.HeatPoint
	for i := 0; i < 60; i++ {
		points = append(points, model.HeatPoint{
			Lat:   40.60 + float64(i%8)*0.003,
			Lng:   -73.92 + float64(i%9)*0.003,
			Rent:  2000 + (i%13)*100,
			Count: 2 + i%5,
		})
	}

	first, err := Smooth(context.Background(), points, testSmoothConfig())
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Smooth(context.Background(), points, testSmoothConfig())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSmooth_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	points := []model.HeatPoint{{Lat: 40.6, Lng: -73.9, Rent: 3000, Count: 2}}
	_, err := Smooth(ctx, points, testSmoothConfig())
	assert.Error(t, err)
}
