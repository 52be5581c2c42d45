package analytics

import "sort"

// LoggedSessions returns the rows that carry logged time, newest first
func LoggedSessions(table Table) Table {
	out := make(Table, 0, len(table))
	for _, row := range table {
		if row.DurationMin > 0 {
			out = append(out, row)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SessionStartTime.After(*out[j].SessionStartTime)
	})
	return out
}
