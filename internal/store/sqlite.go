package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/rentmap/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	source      TEXT NOT NULL,
	point_count INTEGER NOT NULL,
	report      TEXT NOT NULL,
	created_at  DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS heat_points (
	run_id TEXT NOT NULL REFERENCES runs(id),
	lat    REAL NOT NULL,
	lng    REAL NOT NULL,
	rent   INTEGER NOT NULL,
	n      INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_source ON runs(source);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
CREATE INDEX IF NOT EXISTS idx_heat_points_run_id ON heat_points(run_id);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveRun(ctx context.Context, source string, report *model.Report, points []model.HeatPoint) (*model.Run, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	reportJSON, err := json.Marshal(report)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal report")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: begin")
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, source, point_count, report, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, source, len(points), string(reportJSON), now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert run")
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO heat_points (run_id, lat, lng, rent, n) VALUES (?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: prepare heat point insert")
	}
	defer stmt.Close()

	for _, p := range points {
		if _, err := stmt.ExecContext(ctx, id, p.Lat, p.Lng, p.Rent, p.Count); err != nil {
			return nil, eris.Wrap(err, "sqlite: insert heat point")
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, eris.Wrap(err, "sqlite: commit")
	}

	return &model.Run{
		ID:         id,
		Source:     source,
		PointCount: len(points),
		Report:     *report,
		CreatedAt:  now,
	}, nil
}

func (s *SQLiteStore) GetRun(ctx context.Context, runID string) (*model.Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, source, point_count, report, created_at FROM runs WHERE id = ?`,
		runID,
	)
	return scanRun(row)
}

func (s *SQLiteStore) LatestRun(ctx context.Context) (*model.Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, source, point_count, report, created_at FROM runs ORDER BY created_at DESC LIMIT 1`,
	)
	return scanRun(row)
}

func (s *SQLiteStore) ListRuns(ctx context.Context, filter RunFilter) ([]model.Run, error) {
	query := `SELECT id, source, point_count, report, created_at FROM runs WHERE 1=1`
	var args []any

	if filter.Source != "" {
		query += ` AND source = ?`
		args = append(args, filter.Source)
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list runs")
	}
	defer rows.Close()

	var runs []model.Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *r)
	}
	return runs, eris.Wrap(rows.Err(), "sqlite: list runs iterate")
}

func (s *SQLiteStore) HeatPoints(ctx context.Context, runID string) ([]model.HeatPoint, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT lat, lng, rent, n FROM heat_points WHERE run_id = ? ORDER BY rent DESC, lat ASC, lng ASC`,
		runID,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: heat points for run %s", runID)
	}
	defer rows.Close()

	var points []model.HeatPoint
	for rows.Next() {
		var p model.HeatPoint
		if err := rows.Scan(&p.Lat, &p.Lng, &p.Rent, &p.Count); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan heat point")
		}
		points = append(points, p)
	}
	return points, eris.Wrap(rows.Err(), "sqlite: heat points iterate")
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*model.Run, error) {
	var r model.Run
	var reportJSON string
	err := row.Scan(&r.ID, &r.Source, &r.PointCount, &reportJSON, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: scan run")
	}
	if err := json.Unmarshal([]byte(reportJSON), &r.Report); err != nil {
		return nil, eris.Wrap(err, "sqlite: unmarshal report")
	}
	return &r, nil
}
