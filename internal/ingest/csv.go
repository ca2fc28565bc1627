package ingest

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/rentmap/internal/model"
)

// csv column names recognized in the header row. Unknown columns are ignored.
const (
	colLat          = "lat"
	colLng          = "lng"
	colRent         = "rent"
	colBeds         = "beds"
	colType         = "type"
	colNeighborhood = "neighborhood"
)

// ReadCSV parses a headered CSV of listing records. Rows with unparseable
// numeric fields are skipped, matching the silent-exclusion contract of the
// pipeline; structural CSV errors are returned.
func ReadCSV(r io.Reader) ([]model.RawListing, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable fields

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "ingest: read csv header")
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := cols[colLat]; !ok {
		return nil, eris.New("ingest: csv header missing lat column")
	}
	if _, ok := cols[colLng]; !ok {
		return nil, eris.New("ingest: csv header missing lng column")
	}

	var records []model.RawListing
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "ingest: read csv row")
		}

		rec := model.RawListing{
			Lat:          parseFloat(field(row, cols, colLat)),
			Lng:          parseFloat(field(row, cols, colLng)),
			Rent:         parseFloat(field(row, cols, colRent)),
			Beds:         parseInt(field(row, cols, colBeds)),
			Type:         field(row, cols, colType),
			Neighborhood: field(row, cols, colNeighborhood),
		}
		records = append(records, rec)
	}

	return records, nil
}

func field(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseFloat(s string) float64 {
	s = strings.TrimPrefix(strings.ReplaceAll(s, ",", ""), "$")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
