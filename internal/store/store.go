// Package store persists pipeline runs and their heat points.
package store

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/rentmap/internal/config"
	"github.com/sells-group/rentmap/internal/model"
)

// ErrNotFound is returned when a requested run does not exist.
var ErrNotFound = eris.New("store: run not found")

// Open builds a Store for the configured driver.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case "sqlite", "":
		return NewSQLite(cfg.DatabaseURL)
	case "postgres":
		return NewPostgres(ctx, cfg.DatabaseURL)
	default:
		return nil, eris.Errorf("store: unknown driver %q", cfg.Driver)
	}
}

// RunFilter specifies criteria for listing runs.
type RunFilter struct {
	Source string `json:"source,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// Store defines the persistence interface for heat map runs.
type Store interface {
	// Runs
	SaveRun(ctx context.Context, source string, report *model.Report, points []model.HeatPoint) (*model.Run, error)
	GetRun(ctx context.Context, runID string) (*model.Run, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]model.Run, error)

	// Heat points
	HeatPoints(ctx context.Context, runID string) ([]model.HeatPoint, error)
	LatestRun(ctx context.Context) (*model.Run, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
