package store

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/sells-group/rentmap/internal/db"
	"github.com/sells-group/rentmap/internal/model"
)

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool    db.Pool
	closeFn func()
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool, closeFn: pool.Close}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	source      TEXT NOT NULL,
	point_count INTEGER NOT NULL,
	report      JSONB NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS heat_points (
	run_id TEXT NOT NULL REFERENCES runs(id),
	lat    DOUBLE PRECISION NOT NULL,
	lng    DOUBLE PRECISION NOT NULL,
	rent   INTEGER NOT NULL,
	n      INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_source ON runs(source);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_heat_points_run_id ON heat_points(run_id);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}

func (s *PostgresStore) SaveRun(ctx context.Context, source string, report *model.Report, points []model.HeatPoint) (*model.Run, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	reportJSON, err := json.Marshal(report)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: marshal report")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO runs (id, source, point_count, report, created_at) VALUES ($1, $2, $3, $4, $5)`,
		id, source, len(points), string(reportJSON), now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: insert run")
	}

	rows := make([][]any, 0, len(points))
	for _, p := range points {
		rows = append(rows, []any{id, p.Lat, p.Lng, p.Rent, p.Count})
	}
	if _, err := db.CopyFrom(ctx, s.pool, "heat_points", []string{"run_id", "lat", "lng", "rent", "n"}, rows); err != nil {
		return nil, eris.Wrapf(err, "postgres: load heat points for run %s", id)
	}

	return &model.Run{
		ID:         id,
		Source:     source,
		PointCount: len(points),
		Report:     *report,
		CreatedAt:  now,
	}, nil
}

func (s *PostgresStore) GetRun(ctx context.Context, runID string) (*model.Run, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, source, point_count, report, created_at FROM runs WHERE id = $1`,
		runID,
	)
	return scanPgRun(row)
}

func (s *PostgresStore) LatestRun(ctx context.Context) (*model.Run, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, source, point_count, report, created_at FROM runs ORDER BY created_at DESC LIMIT 1`,
	)
	return scanPgRun(row)
}

func (s *PostgresStore) ListRuns(ctx context.Context, filter RunFilter) ([]model.Run, error) {
	query := `SELECT id, source, point_count, report, created_at FROM runs`
	var args []any

	if filter.Source != "" {
		query += ` WHERE source = $1`
		args = append(args, filter.Source)
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	args = append(args, limit)
	query += ` LIMIT $` + strconv.Itoa(len(args))

	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list runs")
	}
	defer rows.Close()

	var runs []model.Run
	for rows.Next() {
		r, err := scanPgRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *r)
	}
	return runs, eris.Wrap(rows.Err(), "postgres: list runs iterate")
}

func (s *PostgresStore) HeatPoints(ctx context.Context, runID string) ([]model.HeatPoint, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT lat, lng, rent, n FROM heat_points WHERE run_id = $1 ORDER BY rent DESC, lat ASC, lng ASC`,
		runID,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: heat points for run %s", runID)
	}
	defer rows.Close()

	var points []model.HeatPoint
	for rows.Next() {
		var p model.HeatPoint
		if err := rows.Scan(&p.Lat, &p.Lng, &p.Rent, &p.Count); err != nil {
			return nil, eris.Wrap(err, "postgres: scan heat point")
		}
		points = append(points, p)
	}
	return points, eris.Wrap(rows.Err(), "postgres: heat points iterate")
}

func scanPgRun(row pgx.Row) (*model.Run, error) {
	var r model.Run
	var reportJSON []byte
	err := row.Scan(&r.ID, &r.Source, &r.PointCount, &reportJSON, &r.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, eris.Wrap(err, "postgres: scan run")
	}
	if err := json.Unmarshal(reportJSON, &r.Report); err != nil {
		return nil, eris.Wrap(err, "postgres: unmarshal report")
	}
	return &r, nil
}
