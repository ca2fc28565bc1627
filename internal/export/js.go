package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/sells-group/rentmap/internal/model"
)

// WriteJS emits the HEAT_POINTS JavaScript constant consumed by the map
// overlay. Coordinates print with minimal digits (40.6, not 40.6000).
func WriteJS(w io.Writer, points []model.HeatPoint) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString("const HEAT_POINTS = [\n"); err != nil {
		return eris.Wrap(err, "export: write js header")
	}
	for _, p := range points {
		_, err := fmt.Fprintf(bw, "  {lat:%s,lng:%s,rent:%d,n:%d},\n",
			formatCoord(p.Lat), formatCoord(p.Lng), p.Rent, p.Count)
		if err != nil {
			return eris.Wrap(err, "export: write js point")
		}
	}
	if _, err := bw.WriteString("];\n"); err != nil {
		return eris.Wrap(err, "export: write js footer")
	}

	return eris.Wrap(bw.Flush(), "export: flush js")
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
