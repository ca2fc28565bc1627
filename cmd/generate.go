package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/rentmap/internal/export"
	"github.com/sells-group/rentmap/internal/ingest"
	"github.com/sells-group/rentmap/internal/pipeline"
	"github.com/sells-group/rentmap/internal/region"
)

var (
	generateInputs []string
	generateOutJS  string
	generateOutGeo string
	generateSave   bool
	generateSource string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run the full pipeline over listing snapshots",
	Long:  "Reads one or more listing snapshots, runs the filter, stabilization, aggregation, smoothing, and clamping stages, and writes the heat point outputs.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if len(generateInputs) == 0 {
			return eris.New("at least one --input snapshot is required")
		}

		raw, err := ingest.LoadFiles(ctx, generateInputs)
		if err != nil {
			return err
		}

		classify, err := region.ForConfig(cfg.Region)
		if err != nil {
			return err
		}

		p, err := pipeline.New(cfg, classify)
		if err != nil {
			return err
		}

		points, report, err := p.Run(ctx, raw)
		if err != nil {
			return err
		}

		if generateOutJS != "" {
			f, err := os.Create(generateOutJS)
			if err != nil {
				return eris.Wrapf(err, "create %s", generateOutJS)
			}
			defer f.Close() //nolint:errcheck
			if err := export.WriteJS(f, points); err != nil {
				return err
			}
			zap.L().Info("wrote heat points", zap.String("path", generateOutJS))
		}

		if generateOutGeo != "" {
			f, err := os.Create(generateOutGeo)
			if err != nil {
				return eris.Wrapf(err, "create %s", generateOutGeo)
			}
			defer f.Close() //nolint:errcheck
			if err := export.WriteGeoJSON(f, points); err != nil {
				return err
			}
			zap.L().Info("wrote geojson", zap.String("path", generateOutGeo))
		}

		if generateSave {
			st, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close() //nolint:errcheck

			source := generateSource
			if source == "" && len(generateInputs) > 0 {
				source = generateInputs[0]
			}
			run, err := st.SaveRun(ctx, source, report, points)
			if err != nil {
				return err
			}
			zap.L().Info("run saved", zap.String("run_id", run.ID), zap.Int("points", run.PointCount))
		}

		zap.L().Info("generate complete",
			zap.Int("raw", report.RawCount),
			zap.Int("cohort", report.CohortCount),
			zap.Int("stabilized", report.Stabilized),
			zap.Int("cells", report.Cells),
			zap.Int("clamped", report.Clamped),
			zap.Int("points", len(points)),
		)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringSliceVar(&generateInputs, "input", nil, "listing snapshot file (.json or .csv), repeatable")
	generateCmd.Flags().StringVar(&generateOutJS, "out-js", "heat_points.js", "JavaScript output path (empty to skip)")
	generateCmd.Flags().StringVar(&generateOutGeo, "out-geojson", "", "GeoJSON output path (empty to skip)")
	generateCmd.Flags().BoolVar(&generateSave, "save", false, "persist the run to the configured store")
	generateCmd.Flags().StringVar(&generateSource, "source", "", "source label for the persisted run (default first input path)")
	rootCmd.AddCommand(generateCmd)
}
