package ingest

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/rentmap/internal/model"
)

// LoadFile reads a listings snapshot from disk, dispatching on file
// extension (.json or .csv).
func LoadFile(ctx context.Context, path string) ([]model.RawListing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "ingest: open %s", path)
	}
	defer f.Close() //nolint:errcheck

	var records []model.RawListing
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		records, err = ReadJSON(ctx, f)
	case ".csv":
		records, err = ReadCSV(f)
	default:
		return nil, eris.Errorf("ingest: unsupported file extension %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	zap.L().Info("ingest: snapshot loaded",
		zap.String("path", path),
		zap.Int("records", len(records)),
	)
	return records, nil
}

// LoadFiles reads and concatenates multiple snapshots (e.g. active listings
// plus recently rented units).
func LoadFiles(ctx context.Context, paths []string) ([]model.RawListing, error) {
	var all []model.RawListing
	for _, p := range paths {
		records, err := LoadFile(ctx, p)
		if err != nil {
			return nil, err
		}
		all = append(all, records...)
	}
	return all, nil
}
