package pipeline

import (
	"context"
	"runtime"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/rentmap/internal/config"
	"github.com/sells-group/rentmap/internal/model"
)

// Clamp corrects low-confidence outlier points in place. Points with at
// least MaxCount source listings are trusted and skipped. For the rest, if
// the smoothed rent exceeds the neighbor median by the threshold factor, the
// rent is replaced with that median. Clamping only ever lowers a value, and
// a point with zero neighbors is left untouched. Neighbor references are
// taken from the pre-pass snapshot, so the pass is parallel across points.
func Clamp(ctx context.Context, points []model.HeatPoint, cfg config.ClampConfig, report *model.Report) error {
	snapshot := make([]model.HeatPoint, len(points))
	copy(snapshot, points)

	ix := newPointIndex(snapshot, cfg.Radius)

	var clamped int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range points {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p := snapshot[i]
			if p.Count >= cfg.MaxCount {
				return nil
			}

			var neighborRents []float64
			ix.visitNeighbors(i, snapshot, func(j int, _ float64) {
				neighborRents = append(neighborRents, float64(snapshot[j].Rent))
			})
			if len(neighborRents) == 0 {
				return nil
			}

			neighborMedian := upperMedian(neighborRents)
			if float64(p.Rent) > neighborMedian*cfg.Threshold {
				points[i].Rent = int(neighborMedian)
				atomic.AddInt64(&clamped, 1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	report.Clamped = int(clamped)
	zap.L().Info("pipeline: outliers clamped",
		zap.Int("clamped", report.Clamped),
		zap.Float64("radius", cfg.Radius),
		zap.Float64("threshold", cfg.Threshold),
	)
	return nil
}
