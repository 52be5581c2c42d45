package analytics

import (
	"sort"
	"time"

	"github.com/balkashynov/learnlog/internal/models"
)

// NullMarker fills the text fields of placeholder rows. It is distinct from
// an empty string, which is a legitimate value on a real session.
const NullMarker = "null"

// Row is one line of the calendar table: either a real session keyed by its
// day, or a placeholder for a day without sessions.
type Row struct {
	Date             time.Time  `json:"date"`
	SessionID        uint       `json:"session_id,omitempty"`
	SessionStartTime *time.Time `json:"session_start_time"`
	SessionEndTime   *time.Time `json:"session_end_time"`
	DurationMin      float64    `json:"duration_min"`
	Medium           string     `json:"medium"`
	Title            string     `json:"title"`
	Teacher          string     `json:"teacher"`
	Tags             string     `json:"tags"`
	Notes            string     `json:"notes"`
	Hyperlink        string     `json:"hyperlink"`
}

// IsPlaceholder reports whether the row stands in for an empty day
func (r Row) IsPlaceholder() bool {
	return r.SessionStartTime == nil
}

// Table is an ordered sequence of rows. Several rows may share a date.
type Table []Row

// DayOf returns the calendar day of t as midnight UTC. The wall-clock date is
// read in t's own location so a session logged at 23:30 local time stays on
// that local day.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func dayKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

// Normalize builds the gap-free calendar table for [minDate, today].
//
// Every session becomes its own row; days in the range without any session
// get exactly one placeholder row. Sessions outside the range are kept as
// they are. Rows are ordered by date, same-day sessions keep input order.
func Normalize(sessions []models.Session, minDate, today time.Time) Table {
	rows := make(Table, 0, len(sessions))
	seen := make(map[string]bool, len(sessions))

	for _, s := range sessions {
		row := sessionRow(s)
		seen[dayKey(row.Date)] = true
		rows = append(rows, row)
	}

	last := DayOf(today)
	for d := DayOf(minDate); !d.After(last); d = d.AddDate(0, 0, 1) {
		if !seen[dayKey(d)] {
			rows = append(rows, placeholderRow(d))
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date)
	})

	return rows
}

func sessionRow(s models.Session) Row {
	start, end := s.SessionStartTime, s.SessionEndTime
	return Row{
		Date:             DayOf(start),
		SessionID:        s.ID,
		SessionStartTime: &start,
		SessionEndTime:   &end,
		DurationMin:      s.DurationMin(),
		Medium:           s.Medium,
		Title:            s.Title,
		Teacher:          s.Teacher,
		Tags:             s.Tags,
		Notes:            s.Notes,
		Hyperlink:        s.Hyperlink,
	}
}

func placeholderRow(day time.Time) Row {
	return Row{
		Date:      day,
		Medium:    NullMarker,
		Title:     NullMarker,
		Teacher:   NullMarker,
		Tags:      NullMarker,
		Notes:     NullMarker,
		Hyperlink: NullMarker,
	}
}
