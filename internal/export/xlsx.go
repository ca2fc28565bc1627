package export

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/rentmap/internal/model"
)

// WriteRegionXLSX writes a region-summary workbook: one row per region with
// listing count, median rent, and mean rent.
func WriteRegionXLSX(path string, stats []model.RegionStat) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Regions")
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	header := sheet.AddRow()
	for _, name := range []string{"Region", "Listings", "Median Rent", "Mean Rent"} {
		header.AddCell().Value = name
	}

	for _, s := range stats {
		row := sheet.AddRow()
		row.AddCell().Value = s.Region
		row.AddCell().SetInt(s.Count)
		row.AddCell().SetFloatWithFormat(s.Median, "#,##0")
		row.AddCell().SetFloatWithFormat(s.Mean, "#,##0")
	}

	if err := file.Save(path); err != nil {
		return eris.Wrapf(err, "export: save %s", path)
	}
	return nil
}
