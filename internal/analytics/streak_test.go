package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/learnlog/internal/models"
)

// dailyTable builds one row per day starting at start with the given
// durations in minutes.
func dailyTable(start time.Time, durations ...float64) Table {
	table := make(Table, 0, len(durations))
	for i, d := range durations {
		table = append(table, Row{Date: start.AddDate(0, 0, i), DurationMin: d})
	}
	return table
}

func TestCalculateStreaks_InactiveTodayKeepsStreak(t *testing.T) {
	today := day(2026, 10, 16)
	table := dailyTable(day(2026, 10, 11), 5, 10, 0, 3, 3, 0)

	s := CalculateStreaks(table, day(2026, 10, 11), today, today)

	assert.Equal(t, 2, s.Current)
	assert.Equal(t, 2, s.Max)
}

func TestCalculateStreaks_ActiveToday(t *testing.T) {
	today := day(2026, 10, 16)
	table := dailyTable(day(2026, 10, 12), 5, 0, 1, 1, 1)

	s := CalculateStreaks(table, day(2026, 10, 12), today, today)

	assert.Equal(t, 3, s.Current)
	assert.Equal(t, 3, s.Max)
}

func TestCalculateStreaks_SpanRunsToEndWithoutRows(t *testing.T) {
	today := day(2026, 10, 16)
	table := dailyTable(day(2026, 10, 10), 5, 5, 5)

	s := CalculateStreaks(table, day(2026, 10, 10), today, today)

	require.Len(t, s.Days, 7)
	assert.Equal(t, 0, s.Current)
	assert.Equal(t, 3, s.Max)
}

func TestCalculateStreaks_InactiveTodayAndYesterdayBreaksStreak(t *testing.T) {
	today := day(2026, 10, 16)
	table := dailyTable(day(2026, 10, 11), 4, 4, 4, 0, 0, 0)

	s := CalculateStreaks(table, day(2026, 10, 11), today, today)

	assert.Equal(t, 0, s.Current)
	assert.Equal(t, 3, s.Max)
}

func TestCalculateStreaks_PastSpanReportsRunAtItsEnd(t *testing.T) {
	today := day(2026, 10, 16)
	table := dailyTable(day(2026, 10, 1), 4, 4, 4)

	s := CalculateStreaks(table, day(2026, 10, 1), day(2026, 10, 3), today)

	assert.Equal(t, 3, s.Current)
	assert.Equal(t, 3, s.Max)
}

func TestCalculateStreaks_AllInactive(t *testing.T) {
	today := day(2026, 10, 16)
	s := CalculateStreaks(dailyTable(day(2026, 10, 14), 0, 0, 0), day(2026, 10, 14), today, today)

	assert.Zero(t, s.Current)
	assert.Zero(t, s.Max)
}

func TestCalculateStreaks_Empty(t *testing.T) {
	today := day(2026, 10, 16)
	s := CalculateStreaks(nil, day(2026, 10, 14), today, today)

	assert.Zero(t, s.Current)
	assert.Zero(t, s.Max)
	assert.Len(t, s.Days, 3)

	reversed := CalculateStreaks(nil, today, day(2026, 10, 14), today)
	assert.Empty(t, reversed.Days)
	assert.Zero(t, reversed.Current)
}

func TestCalculateStreaks_SingleDay(t *testing.T) {
	today := day(2026, 10, 16)

	assert.Equal(t, Streaks{Days: []DayActivity{{Date: today}}}, CalculateStreaks(dailyTable(today, 0), today, today, today))

	s := CalculateStreaks(dailyTable(today, 12), today, today, today)
	assert.Equal(t, 1, s.Current)
	assert.Equal(t, 1, s.Max)
}

func TestCalculateStreaks_SumsSessionsPerDay(t *testing.T) {
	today := day(2026, 10, 16)
	table := Table{
		{Date: day(2026, 10, 15), DurationMin: 0},
		{Date: day(2026, 10, 15), DurationMin: 20},
		{Date: day(2026, 10, 16), DurationMin: 5},
	}

	s := CalculateStreaks(table, day(2026, 10, 15), today, today)

	require.Len(t, s.Days, 2)
	assert.Equal(t, 20.0, s.Days[0].DurationMin)
	assert.Equal(t, 2, s.Current)
}

func TestCalculateStreaks_MissingDaysAreInactive(t *testing.T) {
	today := day(2026, 10, 4)
	table := Table{
		{Date: day(2026, 10, 1), DurationMin: 10},
		{Date: day(2026, 10, 2), DurationMin: 10},
		{Date: day(2026, 10, 4), DurationMin: 10},
	}

	s := CalculateStreaks(table, day(2026, 10, 1), today, today)

	require.Len(t, s.Days, 4)
	assert.False(t, s.Days[2].Active)
	assert.Equal(t, 1, s.Current)
	assert.Equal(t, 2, s.Max)
}

func TestCalculateStreaks_BoundsOnNormalizedCalendar(t *testing.T) {
	minDate, today := day(2026, 9, 1), day(2026, 10, 16)
	var sessions []models.Session
	for d := minDate; !d.After(today); d = d.AddDate(0, 0, 1) {
		if d.Day()%4 != 0 {
			sessions = append(sessions, session(d.Add(9*time.Hour), 25, "video", "Go", "Ann", "go"))
		}
	}

	table := Normalize(sessions, minDate, today)
	s := CalculateStreaks(table, minDate, today, today)

	totalDays := int(today.Sub(minDate).Hours()/24) + 1
	assert.GreaterOrEqual(t, s.Current, 0)
	assert.LessOrEqual(t, s.Current, s.Max)
	assert.LessOrEqual(t, s.Max, totalDays)
	// 29 Sep - 3 Oct is the longest run without a multiple-of-four day
	assert.Equal(t, 5, s.Max)
	assert.Equal(t, 3, s.Current)
	assert.Len(t, s.Days, totalDays)
}

func TestStreakSpan_CutsOffAtToday(t *testing.T) {
	today := time.Date(2026, 10, 16, 14, 0, 0, 0, time.UTC)

	start, end := StreakSpan(Criteria{StartDate: day(2026, 10, 1), EndDate: day(2026, 12, 31)}, today)
	assert.Equal(t, day(2026, 10, 1), start)
	assert.Equal(t, day(2026, 10, 16), end)

	_, end = StreakSpan(Criteria{StartDate: day(2026, 10, 1), EndDate: day(2026, 10, 5)}, today)
	assert.Equal(t, day(2026, 10, 5), end)
}
