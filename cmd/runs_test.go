package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/rentmap/internal/model"
)

func TestFormatRunsList(t *testing.T) {
	runs := []model.Run{
		{
			ID:         "run-1",
			Source:     "listings.json",
			PointCount: 240,
			Report:     model.Report{MarketCount: 1800, Clamped: 12},
			CreatedAt:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	var sb strings.Builder
	formatRunsList(&sb, runs)

	out := sb.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "run-1")
	assert.Contains(t, out, "listings.json")
	assert.Contains(t, out, "240")
	assert.Contains(t, out, "2026-08-01T12:00:00Z")
}
