package pipeline

import (
	"context"
	"sort"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/rentmap/internal/config"
	"github.com/sells-group/rentmap/internal/model"
	"github.com/sells-group/rentmap/internal/region"
)

// Pipeline runs the full batch transform from raw listings to ordered heat
// points. Stages consume their input fully and hand a new value to the next
// stage; nothing mutates a prior stage's output.
type Pipeline struct {
	cfg      *config.Config
	classify region.Classifier
}

// New validates the configuration and builds a pipeline with the given
// region classifier.
func New(cfg *config.Config, classify region.Classifier) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if classify == nil {
		return nil, eris.New("pipeline: region classifier is required")
	}
	return &Pipeline{cfg: cfg, classify: classify}, nil
}

// Run executes every stage over a raw snapshot and returns the final heat
// points plus the per-stage report. An empty cohort after cleaning or after
// stabilization filtering aborts the run.
func (p *Pipeline) Run(ctx context.Context, raw []model.RawListing) ([]model.HeatPoint, *model.Report, error) {
	report := &model.Report{}

	cohort := Clean(raw, p.cfg.Filter, report)
	if len(cohort) == 0 {
		return nil, report, eris.New("pipeline: empty cohort after filtering")
	}

	for i := range cohort {
		cohort[i].Region = p.classify(cohort[i])
	}

	// The local median index is built over the full cleaned cohort, before
	// stabilized listings are removed, so the reference price reflects what
	// is actually listed in each locale.
	index := BuildMedianIndex(cohort, p.cfg.Stabilize.IndexGridSize, p.cfg.Stabilize.IndexMinSample)
	zap.L().Debug("pipeline: median index built", zap.Int("cells", index.Cells()))

	market := FilterStabilized(cohort, RulesFor(p.cfg.Stabilize, index), report)
	if len(market) == 0 {
		return nil, report, eris.New("pipeline: empty market cohort after stabilization filter")
	}

	points := Aggregate(market, p.cfg.Grid, NewCellSizer(p.cfg.Grid), report)

	points, err := Smooth(ctx, points, p.cfg.Smooth)
	if err != nil {
		return nil, report, eris.Wrap(err, "pipeline: smoothing")
	}

	if err := Clamp(ctx, points, p.cfg.Clamp, report); err != nil {
		return nil, report, eris.Wrap(err, "pipeline: clamping")
	}

	SortPoints(points)

	zap.L().Info("pipeline: run complete",
		zap.Int("heat_points", len(points)),
		zap.Int("market_listings", report.MarketCount),
	)
	return points, report, nil
}

// SortPoints orders heat points by descending rent, ties broken by ascending
// latitude, then longitude. A presentation order, but a deterministic one.
func SortPoints(points []model.HeatPoint) {
	sort.Slice(points, func(i, j int) bool {
		if points[i].Rent != points[j].Rent {
			return points[i].Rent > points[j].Rent
		}
		if points[i].Lat != points[j].Lat {
			return points[i].Lat < points[j].Lat
		}
		return points[i].Lng < points[j].Lng
	})
}
