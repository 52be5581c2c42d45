package analytics

import "time"

// DayActivity is the aggregated activity of one calendar day
type DayActivity struct {
	Date        time.Time `json:"date"`
	DurationMin float64   `json:"duration_min"`
	Active      bool      `json:"active"`
	Run         int       `json:"run"` // consecutive active days ending here
}

// Streaks holds streak statistics over a table
type Streaks struct {
	Current int           `json:"current_streak"`
	Max     int           `json:"max_streak"`
	Days    []DayActivity `json:"days,omitempty"`
}

// DailyActivity sums durations per day over every day of [start, end] and
// computes the running streak counter. Days without rows count as inactive;
// rows outside the span are ignored. A reversed span has no days.
func DailyActivity(table Table, start, end time.Time) []DayActivity {
	start, end = DayOf(start), DayOf(end)
	if end.Before(start) {
		return nil
	}

	totals := make(map[string]float64)
	for _, row := range table {
		totals[dayKey(row.Date)] += row.DurationMin
	}

	var days []DayActivity
	run := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		total := totals[dayKey(d)]
		active := total > 0
		if active {
			run++
		} else {
			run = 0
		}
		days = append(days, DayActivity{Date: d, DurationMin: total, Active: active, Run: run})
	}
	return days
}

// StreakSpan returns the days a streak is measured over for a selection:
// the selected range, cut off at today.
func StreakSpan(c Criteria, today time.Time) (time.Time, time.Time) {
	end := c.EndDate
	if t := DayOf(today); t.Before(end) {
		end = t
	}
	return c.StartDate, end
}

// CalculateStreaks computes the current and longest streak of active days
// over [start, end].
//
// An inactive today does not break the current streak: when the span ends on
// today and nothing is logged yet, yesterday's counter is reported.
func CalculateStreaks(table Table, start, end, today time.Time) Streaks {
	days := DailyActivity(table, start, end)
	s := Streaks{Days: days}
	if len(days) == 0 {
		return s
	}

	for _, d := range days {
		if d.Run > s.Max {
			s.Max = d.Run
		}
	}

	last := days[len(days)-1]
	if last.Date.Equal(DayOf(today)) && !last.Active {
		if len(days) > 1 {
			s.Current = days[len(days)-2].Run
		}
		return s
	}

	s.Current = last.Run
	return s
}
