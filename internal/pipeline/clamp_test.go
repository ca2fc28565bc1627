package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/rentmap/internal/config"
	"github.com/sells-group/rentmap/internal/model"
)

func testClampConfig() config.ClampConfig {
	return config.ClampConfig{
		Radius:    0.015,
		Threshold: 1.5,
		MaxCount:  10,
	}
}

func TestClamp_LowersOutlier(t *testing.T) {
	points := []model.HeatPoint{
		{Lat: 40.600, Lng: -73.92, Rent: 9000, Count: 3},
		{Lat: 40.605, Lng: -73.92, Rent: 3000, Count: 12},
	}

	report := &model.Report{}
	err := Clamp(context.Background(), points, testClampConfig(), report)
	require.NoError(t, err)

	// 9000 exceeds the neighbor median (3000) by more than 1.5x.
	assert.Equal(t, 3000, points[0].Rent)
	// Trusted point (count >= 10) is never clamped.
	assert.Equal(t, 3000, points[1].Rent)
	assert.Equal(t, 1, report.Clamped)
}

func TestClamp_WithinThresholdUntouched(t *testing.T) {
	points := []model.HeatPoint{
		{Lat: 40.600, Lng: -73.92, Rent: 4000, Count: 3},
		{Lat: 40.605, Lng: -73.92, Rent: 3000, Count: 12},
	}

	report := &model.Report{}
	err := Clamp(context.Background(), points, testClampConfig(), report)
	require.NoError(t, err)

	// 4000 <= 3000 * 1.5, no correction.
	assert.Equal(t, 4000, points[0].Rent)
	assert.Equal(t, 0, report.Clamped)
}

func TestClamp_NoNeighborsUntouched(t *testing.T) {
	points := []model.HeatPoint{
		{Lat: 40.60, Lng: -73.92, Rent: 9000, Count: 1},
		{Lat: 40.90, Lng: -73.70, Rent: 1000, Count: 1},
	}

	report := &model.Report{}
	err := Clamp(context.Background(), points, testClampConfig(), report)
	require.NoError(t, err)

	assert.Equal(t, 9000, points[0].Rent)
	assert.Equal(t, 0, report.Clamped)
}

func TestClamp_NeverRaisesRent(t *testing.T) {
	var points []model.HeatPoint
	for i := 0; i < 50; i++ {
		points = append(points, model.HeatPoint{
			Lat:   40.60 + float64(i%7)*0.004,
			Lng:   -73.92 + float64(i%8)*0.004,
			Rent:  1000 + (i%17)*500,
			Count: 1 + i%12,
		})
	}
	before := make([]model.HeatPoint, len(points))
	copy(before, points)

	err := Clamp(context.Background(), points, testClampConfig(), &model.Report{})
	require.NoError(t, err)

	for i := range points {
		assert.LessOrEqual(t, points[i].Rent, before[i].Rent)
	}
}

func TestClamp_ReadsPrePassSnapshot(t *testing.T) {
	// Both outliers see the same cheap anchors. Each must clamp against the
	// original values of the others, so result order independence holds.
	points := []model.HeatPoint{
		{Lat: 40.600, Lng: -73.920, Rent: 9000, Count: 2},
		{Lat: 40.602, Lng: -73.920, Rent: 8000, Count: 2},
		{Lat: 40.604, Lng: -73.920, Rent: 3000, Count: 12},
		{Lat: 40.606, Lng: -73.920, Rent: 3200, Count: 12},
	}

	report := &model.Report{}
	err := Clamp(context.Background(), points, testClampConfig(), report)
	require.NoError(t, err)

	// Point 0 neighbors (original values): 8000, 3000, 3200 -> median 3200.
	assert.Equal(t, 3200, points[0].Rent)
	// Point 1 neighbors (original values): 9000, 3000, 3200 -> median 3200.
	assert.Equal(t, 3200, points[1].Rent)
	assert.Equal(t, 2, report.Clamped)
}
