package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/learnlog/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func session(start time.Time, minutes int, medium, title, teacher, tags string) models.Session {
	return models.Session{
		SessionStartTime: start,
		SessionEndTime:   start.Add(time.Duration(minutes) * time.Minute),
		Medium:           medium,
		Title:            title,
		Teacher:          teacher,
		Tags:             tags,
	}
}

func rowsOn(table Table, d time.Time) Table {
	var out Table
	for _, row := range table {
		if row.Date.Equal(d) {
			out = append(out, row)
		}
	}
	return out
}

func TestNormalize_EmptyInputYieldsPlaceholders(t *testing.T) {
	table := Normalize(nil, day(2026, 10, 1), day(2026, 10, 5))

	require.Len(t, table, 5)
	for i, row := range table {
		assert.Equal(t, day(2026, 10, 1+i), row.Date)
		assert.True(t, row.IsPlaceholder())
		assert.Zero(t, row.DurationMin)
		assert.Equal(t, NullMarker, row.Medium)
		assert.Equal(t, NullMarker, row.Title)
		assert.Equal(t, NullMarker, row.Teacher)
		assert.Equal(t, NullMarker, row.Tags)
		assert.Equal(t, NullMarker, row.Notes)
	}
}

func TestNormalize_CoversEveryDayInRange(t *testing.T) {
	sessions := []models.Session{
		session(time.Date(2026, 9, 28, 9, 0, 0, 0, time.UTC), 30, "video", "Go", "Ann", "go"),
		session(time.Date(2026, 10, 2, 18, 0, 0, 0, time.UTC), 45, "book", "SQL", "Bob", "sql"),
	}
	minDate, today := day(2026, 9, 25), day(2026, 10, 5)

	table := Normalize(sessions, minDate, today)

	for d := minDate; !d.After(today); d = d.AddDate(0, 0, 1) {
		assert.NotEmpty(t, rowsOn(table, d), "missing %s", d.Format(time.DateOnly))
	}
	assert.Len(t, table, 11)
}

func TestNormalize_KeepsEverySameDaySession(t *testing.T) {
	base := time.Date(2026, 10, 3, 8, 0, 0, 0, time.UTC)
	sessions := []models.Session{
		session(base, 20, "video", "Go", "Ann", "go"),
		session(base.Add(2*time.Hour), 40, "book", "SQL", "Bob", "sql"),
		session(base.Add(5*time.Hour), 10, "video", "Go", "Ann", "go"),
	}

	table := Normalize(sessions, day(2026, 10, 1), day(2026, 10, 5))

	onDay := rowsOn(table, day(2026, 10, 3))
	require.Len(t, onDay, 3)
	for _, row := range onDay {
		assert.False(t, row.IsPlaceholder())
	}
	assert.Equal(t, 20.0, onDay[0].DurationMin)
	assert.Equal(t, 40.0, onDay[1].DurationMin)
	assert.Len(t, rowsOn(table, day(2026, 10, 2)), 1)
	assert.Len(t, table, 7)
}

func TestNormalize_PassesThroughOutOfRangeSessions(t *testing.T) {
	sessions := []models.Session{
		session(time.Date(2021, 12, 30, 9, 0, 0, 0, time.UTC), 15, "video", "Old", "Ann", "go"),
		session(time.Date(2026, 10, 9, 9, 0, 0, 0, time.UTC), 15, "video", "Future", "Ann", "go"),
	}

	table := Normalize(sessions, day(2026, 10, 1), day(2026, 10, 3))

	require.Len(t, table, 5)
	assert.Equal(t, "Old", table[0].Title)
	assert.Equal(t, "Future", table[4].Title)
}

func TestNormalize_SortsByDate(t *testing.T) {
	sessions := []models.Session{
		session(time.Date(2026, 10, 4, 9, 0, 0, 0, time.UTC), 15, "video", "B", "Ann", "go"),
		session(time.Date(2026, 10, 2, 9, 0, 0, 0, time.UTC), 15, "video", "A", "Ann", "go"),
	}

	table := Normalize(sessions, day(2026, 10, 1), day(2026, 10, 5))

	for i := 1; i < len(table); i++ {
		assert.False(t, table[i].Date.Before(table[i-1].Date))
	}
}

func TestNormalize_MinDateAfterTodayAddsNothing(t *testing.T) {
	table := Normalize(nil, day(2026, 10, 5), day(2026, 10, 1))
	assert.Empty(t, table)
}

func TestDayOf_UsesWallClockDateOfTimestamp(t *testing.T) {
	zone := time.FixedZone("UTC+5", 5*60*60)
	late := time.Date(2026, 10, 3, 1, 30, 0, 0, zone) // 2026-10-02 20:30 UTC

	assert.Equal(t, day(2026, 10, 3), DayOf(late))
}
