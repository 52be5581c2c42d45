package tui

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/learnlog/internal/analytics"
)

func utcDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestHeatmapLevel(t *testing.T) {
	assert.Equal(t, 0, HeatmapLevel(0, 120))
	assert.Equal(t, 0, HeatmapLevel(30, 0))
	assert.Equal(t, 1, HeatmapLevel(1, 120))
	assert.Equal(t, 2, HeatmapLevel(60, 120))
	assert.Equal(t, 4, HeatmapLevel(120, 120))
	assert.Equal(t, 4, HeatmapLevel(500, 120))
}

func TestBuildHeatmapGrid_PlacesCellsOnActualDay(t *testing.T) {
	// Wednesday 14 Oct 2026
	sessionDay := utcDay(2026, 10, 14)
	cells := []analytics.HeatmapCell{
		{ShiftedDate: analytics.ShiftDay(sessionDay), DurationMin: 45},
	}

	g := BuildHeatmapGrid(cells, utcDay(2026, 10, 12), utcDay(2026, 10, 18))

	require.Len(t, g.Weeks, 1)
	assert.Equal(t, utcDay(2026, 10, 12), g.Weeks[0])
	assert.Equal(t, 45.0, g.Values[2][0])
	assert.Equal(t, 0.0, g.Values[3][0])
	assert.Equal(t, 45.0, g.Max)
}

func TestBuildHeatmapGrid_BlanksDaysOutsideRange(t *testing.T) {
	// Thursday to next Tuesday spans two weeks
	g := BuildHeatmapGrid(nil, utcDay(2026, 10, 15), utcDay(2026, 10, 20))

	require.Len(t, g.Weeks, 2)
	assert.True(t, math.IsNaN(g.Values[0][0]))  // Mon 12 Oct
	assert.False(t, math.IsNaN(g.Values[3][0])) // Thu 15 Oct
	assert.False(t, math.IsNaN(g.Values[1][1])) // Tue 20 Oct
	assert.True(t, math.IsNaN(g.Values[2][1]))  // Wed 21 Oct
}

func TestBuildHeatmapGrid_CapsWeeks(t *testing.T) {
	g := BuildHeatmapGrid(nil, utcDay(2022, 1, 1), utcDay(2026, 10, 16))

	assert.Len(t, g.Weeks, MaxHeatmapWeeks)
	assert.Equal(t, utcDay(2026, 10, 12), g.Weeks[len(g.Weeks)-1])
}

func TestBuildHeatmapGrid_EmptyRange(t *testing.T) {
	g := BuildHeatmapGrid(nil, utcDay(2026, 10, 16), utcDay(2026, 10, 15))
	assert.Empty(t, g.Weeks)
	assert.Contains(t, RenderHeatmap(g), "No days in range")
}

func TestRenderHeatmap_HasLabels(t *testing.T) {
	g := BuildHeatmapGrid(nil, utcDay(2026, 9, 1), utcDay(2026, 10, 16))
	out := RenderHeatmap(g)

	assert.Contains(t, out, "Oct")
	assert.Contains(t, out, "Mon")
	assert.Contains(t, out, "Less")
}
