package analytics

import (
	"sort"
	"time"
)

// HeatmapCell is the summed duration of one shifted day.
//
// ShiftedDate is the calendar day plus one. The downstream calendar chart
// draws every cell one day early, so the shift only lives on this field; use
// Date to get the day the sessions actually happened.
type HeatmapCell struct {
	ShiftedDate time.Time `json:"shifted_date"`
	DurationMin float64   `json:"duration_min"`
}

// Date undoes the shift
func (c HeatmapCell) Date() time.Time {
	return c.ShiftedDate.AddDate(0, 0, -1)
}

// ShiftDay returns the presentation day for a calendar day
func ShiftDay(day time.Time) time.Time {
	return DayOf(day).AddDate(0, 0, 1)
}

// AggregateHeatmap sums durations per shifted day, one cell per day present
// in the table, in ascending order.
func AggregateHeatmap(table Table) []HeatmapCell {
	index := make(map[string]int)
	cells := make([]HeatmapCell, 0)

	for _, row := range table {
		shifted := ShiftDay(row.Date)
		key := dayKey(shifted)
		i, ok := index[key]
		if !ok {
			i = len(cells)
			index[key] = i
			cells = append(cells, HeatmapCell{ShiftedDate: shifted})
		}
		cells[i].DurationMin += row.DurationMin
	}

	sort.Slice(cells, func(i, j int) bool {
		return cells[i].ShiftedDate.Before(cells[j].ShiftedDate)
	})
	return cells
}
