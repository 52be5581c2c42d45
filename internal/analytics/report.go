package analytics

import (
	"time"

	"github.com/balkashynov/learnlog/internal/models"
)

// Query is a partial selection as typed by a user. Nil dates and empty
// slices fall back to the defaults of DefaultCriteria.
type Query struct {
	From     *time.Time
	To       *time.Time
	Media    []string
	Titles   []string
	Teachers []string
	Tags     []string
}

// Criteria resolves the query against a calendar table
func (q Query) Criteria(table Table, minDate, today time.Time) Criteria {
	c := DefaultCriteria(table, minDate, today)
	if q.From != nil {
		c.StartDate = DayOf(*q.From)
	}
	if q.To != nil {
		c.EndDate = DayOf(*q.To)
	}
	if len(q.Media) > 0 {
		c.Media = NewSet(q.Media...)
	}
	if len(q.Titles) > 0 {
		c.Titles = NewSet(q.Titles...)
	}
	if len(q.Teachers) > 0 {
		c.Teachers = NewSet(q.Teachers...)
	}
	if len(q.Tags) > 0 {
		c.Tags = NewSet(q.Tags...)
	}
	return c
}

// Report bundles every analytic output for one record set and selection
type Report struct {
	StartDate        time.Time     `json:"start_date"`
	EndDate          time.Time     `json:"end_date"`
	Calendar         Table         `json:"-"`
	Filtered         Table         `json:"-"`
	Options          Options       `json:"options"`
	Streaks          Streaks       `json:"streaks"`
	Heatmap          []HeatmapCell `json:"heatmap"`
	TotalDurationMin float64       `json:"total_duration_min"`
	TotalFormatted   string        `json:"total_formatted"`
	Sessions         Table         `json:"sessions"`
}

// BuildReport runs the whole pipeline: normalize, filter, then compute
// streaks, heatmap cells, totals and the session listing from the filtered
// table.
func BuildReport(sessions []models.Session, minDate, today time.Time, q Query) Report {
	calendar := Normalize(sessions, minDate, today)
	criteria := q.Criteria(calendar, minDate, today)
	return BuildReportWithCriteria(calendar, criteria, today)
}

// BuildReportWithCriteria is BuildReport for an already normalized calendar
// and a fully resolved selection.
func BuildReportWithCriteria(calendar Table, criteria Criteria, today time.Time) Report {
	filtered := Filter(calendar, criteria)
	total := TotalDuration(filtered, criteria.StartDate, criteria.EndDate)
	streakStart, streakEnd := StreakSpan(criteria, today)

	return Report{
		StartDate:        criteria.StartDate,
		EndDate:          criteria.EndDate,
		Calendar:         calendar,
		Filtered:         filtered,
		Options:          ListOptions(calendar),
		Streaks:          CalculateStreaks(filtered, streakStart, streakEnd, today),
		Heatmap:          AggregateHeatmap(filtered),
		TotalDurationMin: total,
		TotalFormatted:   FormatDuration(total),
		Sessions:         LoggedSessions(filtered),
	}
}
