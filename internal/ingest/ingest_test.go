package ingest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingsJSON = `[
	{"lat": 40.7128, "lng": -74.0060, "rent": 3200, "beds": 1, "type": "rental", "neighborhood": "Financial District"},
	{"lat": 40.7831, "lng": -73.9712, "rent": 4500, "beds": 1, "neighborhood": "Upper West Side"}
]`

func TestReadJSON(t *testing.T) {
	records, err := ReadJSON(context.Background(), strings.NewReader(listingsJSON))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, 40.7128, records[0].Lat)
	assert.Equal(t, 3200.0, records[0].Rent)
	assert.Equal(t, "rental", records[0].Type)
	assert.Equal(t, "Upper West Side", records[1].Neighborhood)
}

func TestReadJSON_EmptyArray(t *testing.T) {
	records, err := ReadJSON(context.Background(), strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadJSON_NotAnArray(t *testing.T) {
	_, err := ReadJSON(context.Background(), strings.NewReader(`{"lat": 40.7}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected '['")
}

func TestReadJSON_MalformedRecord(t *testing.T) {
	_, err := ReadJSON(context.Background(), strings.NewReader(`[{"lat": "not a number"}]`))
	assert.Error(t, err)
}

func TestReadJSON_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ReadJSON(ctx, strings.NewReader(listingsJSON))
	assert.Error(t, err)
}

func TestReadCSV(t *testing.T) {
	input := "neighborhood,lat,lng,rent,beds,type\n" +
		"Astoria,40.7720,-73.9301,\"$2,850\",1,rental\n" +
		"Flushing,40.7654,-73.8318,2400,1,rental\n"

	records, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, 2850.0, records[0].Rent) // currency formatting stripped
	assert.Equal(t, "Astoria", records[0].Neighborhood)
	assert.Equal(t, 1, records[1].Beds)
}

func TestReadCSV_BadNumericsBecomeZero(t *testing.T) {
	input := "lat,lng,rent,beds\n40.77,-73.93,n/a,one\n"

	records, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)

	// Downstream cleaning excludes these; ingest keeps them as zero values.
	assert.Zero(t, records[0].Rent)
	assert.Zero(t, records[0].Beds)
}

func TestReadCSV_MissingCoordinateColumns(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("rent,beds\n3000,1\n"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "listings.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(listingsJSON), 0o644))

	records, err := LoadFile(context.Background(), jsonPath)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	_, err = LoadFile(context.Background(), filepath.Join(dir, "listings.xml"))
	assert.Error(t, err)
}

func TestLoadFiles_Concatenates(t *testing.T) {
	dir := t.TempDir()

	a := filepath.Join(dir, "active.json")
	require.NoError(t, os.WriteFile(a, []byte(listingsJSON), 0o644))
	b := filepath.Join(dir, "rented.csv")
	require.NoError(t, os.WriteFile(b, []byte("lat,lng,rent,beds\n40.77,-73.93,2850,1\n"), 0o644))

	records, err := LoadFiles(context.Background(), []string{a, b})
	require.NoError(t, err)
	assert.Len(t, records, 3)
}
