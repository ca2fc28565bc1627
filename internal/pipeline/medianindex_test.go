package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/rentmap/internal/model"
)

func TestBuildMedianIndex_StoresCellMedians(t *testing.T) {
	cohort := clusterAt(40.70, -73.90, 2800, 3000, 3200)
	index := BuildMedianIndex(cohort, 0.01, 3)

	median, ok := index.Lookup(40.70, -73.90)
	require.True(t, ok)
	assert.Equal(t, 3000.0, median)
	assert.Equal(t, 1, index.Cells())
}

func TestBuildMedianIndex_ThinCellsExcluded(t *testing.T) {
	cohort := clusterAt(40.70, -73.90, 2800, 3000)
	index := BuildMedianIndex(cohort, 0.01, 3)

	_, ok := index.Lookup(40.70, -73.90)
	assert.False(t, ok)
	assert.Zero(t, index.Cells())
}

func TestBuildMedianIndex_SeparateCells(t *testing.T) {
	cohort := append(
		clusterAt(40.70, -73.90, 2000, 2000, 2000),
		clusterAt(40.80, -73.80, 5000, 5000, 5000)...,
	)
	index := BuildMedianIndex(cohort, 0.01, 3)

	cheap, ok := index.Lookup(40.70, -73.90)
	require.True(t, ok)
	rich, ok := index.Lookup(40.80, -73.80)
	require.True(t, ok)

	assert.Equal(t, 2000.0, cheap)
	assert.Equal(t, 5000.0, rich)
}

func TestRegionStats_GroupsByRegion(t *testing.T) {
	market := []model.Listing{
		{Region: "Brooklyn", Rent: 2800},
		{Region: "Brooklyn", Rent: 3000},
		{Region: "Brooklyn", Rent: 3200},
		{Region: "Queens", Rent: 2400},
		{Region: "Queens", Rent: 2600},
	}

	stats := RegionStats(market)

	require.Len(t, stats, 2)
	assert.Equal(t, "Brooklyn", stats[0].Region)
	assert.Equal(t, 3, stats[0].Count)
	assert.Equal(t, 3000.0, stats[0].Median)
	assert.Equal(t, 3000.0, stats[0].Mean)
	assert.Equal(t, "Queens", stats[1].Region)
	assert.Equal(t, 2600.0, stats[1].Median) // upper median of an even pair
	assert.Equal(t, 2500.0, stats[1].Mean)
}
