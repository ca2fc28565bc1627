package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/rentmap/internal/export"
	"github.com/sells-group/rentmap/internal/ingest"
	"github.com/sells-group/rentmap/internal/model"
	"github.com/sells-group/rentmap/internal/pipeline"
	"github.com/sells-group/rentmap/internal/region"
)

var (
	reportInputs []string
	reportOut    string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write a per-region rent summary workbook",
	Long:  "Runs the filter and stabilization stages over listing snapshots and writes listing count, median, and mean rent per region to an XLSX workbook.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if len(reportInputs) == 0 {
			return eris.New("at least one --input snapshot is required")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		raw, err := ingest.LoadFiles(ctx, reportInputs)
		if err != nil {
			return err
		}

		classify, err := region.ForConfig(cfg.Region)
		if err != nil {
			return err
		}

		report := &model.Report{}
		cohort := pipeline.Clean(raw, cfg.Filter, report)
		if len(cohort) == 0 {
			return eris.New("empty cohort after filtering")
		}
		for i := range cohort {
			cohort[i].Region = classify(cohort[i])
		}

		index := pipeline.BuildMedianIndex(cohort, cfg.Stabilize.IndexGridSize, cfg.Stabilize.IndexMinSample)
		market := pipeline.FilterStabilized(cohort, pipeline.RulesFor(cfg.Stabilize, index), report)
		if len(market) == 0 {
			return eris.New("empty market cohort after stabilization filter")
		}

		stats := pipeline.RegionStats(market)
		if err := export.WriteRegionXLSX(reportOut, stats); err != nil {
			return err
		}

		zap.L().Info("region report written",
			zap.String("path", reportOut),
			zap.Int("regions", len(stats)),
			zap.Int("market_listings", len(market)),
		)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringSliceVar(&reportInputs, "input", nil, "listing snapshot file (.json or .csv), repeatable")
	reportCmd.Flags().StringVar(&reportOut, "out", "regions.xlsx", "workbook output path")
	rootCmd.AddCommand(reportCmd)
}
