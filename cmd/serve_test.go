package main

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/rentmap/internal/model"
	"github.com/sells-group/rentmap/internal/store"
)

// fakeStore serves a fixed latest run for handler tests.
type fakeStore struct {
	run    *model.Run
	points []model.HeatPoint
}

func (f *fakeStore) SaveRun(context.Context, string, *model.Report, []model.HeatPoint) (*model.Run, error) {
	panic("not used")
}

func (f *fakeStore) GetRun(_ context.Context, runID string) (*model.Run, error) {
	if f.run == nil || f.run.ID != runID {
		return nil, store.ErrNotFound
	}
	return f.run, nil
}

func (f *fakeStore) ListRuns(context.Context, store.RunFilter) ([]model.Run, error) {
	if f.run == nil {
		return nil, nil
	}
	return []model.Run{*f.run}, nil
}

func (f *fakeStore) HeatPoints(context.Context, string) ([]model.HeatPoint, error) {
	return f.points, nil
}

func (f *fakeStore) LatestRun(context.Context) (*model.Run, error) {
	if f.run == nil {
		return nil, store.ErrNotFound
	}
	return f.run, nil
}

func (f *fakeStore) Migrate(context.Context) error { return nil }
func (f *fakeStore) Close() error                  { return nil }

func newFakeStore() *fakeStore {
	return &fakeStore{
		run: &model.Run{ID: "run-1", Source: "listings.json", PointCount: 2, CreatedAt: time.Now()},
		points: []model.HeatPoint{
			{Lat: 40.77, Lng: -73.93, Rent: 3200, Count: 5},
			{Lat: 40.599, Lng: -73.92, Rent: 3033, Count: 3},
		},
	}
}

func TestHandleHeatmap_JSON(t *testing.T) {
	st := newFakeStore()

	req := httptest.NewRequest("GET", "/v1/heatmap", nil)
	rec := httptest.NewRecorder()
	handleHeatmap(st)(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Equal(t, "run-1", rec.Header().Get("X-Run-ID"))

	var points []model.HeatPoint
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &points))
	assert.Equal(t, st.points, points)
}

func TestHandleHeatmap_GeoJSON(t *testing.T) {
	st := newFakeStore()

	req := httptest.NewRequest("GET", "/v1/heatmap?format=geojson", nil)
	rec := httptest.NewRecorder()
	handleHeatmap(st)(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/geo+json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "FeatureCollection")
}

func TestHandleHeatmap_BadFormat(t *testing.T) {
	req := httptest.NewRequest("GET", "/v1/heatmap?format=xml", nil)
	rec := httptest.NewRecorder()
	handleHeatmap(newFakeStore())(rec, req)

	assert.Equal(t, 400, rec.Code)
}

func TestHandleHeatmap_NoRuns(t *testing.T) {
	req := httptest.NewRequest("GET", "/v1/heatmap", nil)
	rec := httptest.NewRecorder()
	handleHeatmap(&fakeStore{})(rec, req)

	assert.Equal(t, 404, rec.Code)
}

func TestHandleEstimate(t *testing.T) {
	st := newFakeStore()

	req := httptest.NewRequest("GET", "/v1/estimate?lat=40.771&lng=-73.931", nil)
	rec := httptest.NewRecorder()
	handleEstimate(st, 0.02)(rec, req)

	require.Equal(t, 200, rec.Code)

	var resp struct {
		Rent  int     `json:"rent"`
		Lat   float64 `json:"lat"`
		RunID string  `json:"run_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3200, resp.Rent)
	assert.Equal(t, 40.77, resp.Lat)
	assert.Equal(t, "run-1", resp.RunID)
}

func TestHandleEstimate_MissingParams(t *testing.T) {
	req := httptest.NewRequest("GET", "/v1/estimate?lat=40.77", nil)
	rec := httptest.NewRecorder()
	handleEstimate(newFakeStore(), 0.02)(rec, req)

	assert.Equal(t, 400, rec.Code)
}

func TestHandleEstimate_OutOfRange(t *testing.T) {
	req := httptest.NewRequest("GET", "/v1/estimate?lat=41.5&lng=-72.0", nil)
	rec := httptest.NewRecorder()
	handleEstimate(newFakeStore(), 0.02)(rec, req)

	assert.Equal(t, 404, rec.Code)
}
