package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/rentmap/internal/region"
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "Manage region classification tables",
}

var (
	regionsShapefile   string
	regionsNameField   string
	regionsRegionField string
	regionsOut         string
)

var regionsBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a region table from a neighborhood shapefile",
	Long:  "Reads a neighborhood polygon shapefile and writes a neighborhood-to-region JSON table usable via region.table_file.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		table, err := region.BuildTableFromShapefile(regionsShapefile, regionsNameField, regionsRegionField)
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(table, "", "  ")
		if err != nil {
			return eris.Wrap(err, "marshal region table")
		}
		if err := os.WriteFile(regionsOut, data, 0o644); err != nil {
			return eris.Wrapf(err, "write %s", regionsOut)
		}

		zap.L().Info("region table written",
			zap.String("path", regionsOut),
			zap.Int("neighborhoods", len(table)),
		)
		return nil
	},
}

func init() {
	regionsBuildCmd.Flags().StringVar(&regionsShapefile, "shapefile", "", "neighborhood polygon shapefile path")
	regionsBuildCmd.Flags().StringVar(&regionsNameField, "name-field", "NTAName", "attribute holding the neighborhood name")
	regionsBuildCmd.Flags().StringVar(&regionsRegionField, "region-field", "BoroName", "attribute holding the region label")
	regionsBuildCmd.Flags().StringVar(&regionsOut, "out", "regions.json", "JSON table output path")
	regionsBuildCmd.MarkFlagRequired("shapefile") //nolint:errcheck
	regionsCmd.AddCommand(regionsBuildCmd)
	rootCmd.AddCommand(regionsCmd)
}
