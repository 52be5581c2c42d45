package analytics

import (
	"fmt"
	"math"
	"time"
)

// TotalDuration sums duration_min over rows dated within [start, end]
func TotalDuration(table Table, start, end time.Time) float64 {
	total := 0.0
	for _, row := range InRange(table, start, end) {
		total += row.DurationMin
	}
	return total
}

// FormatDuration renders minutes as whole hours and remaining minutes,
// truncating any fraction: 125 -> "2 Hours 5 Minutes".
func FormatDuration(totalMin float64) string {
	hours := int(math.Floor(totalMin / 60))
	minutes := int(math.Floor(totalMin - float64(hours)*60))
	return fmt.Sprintf("%d Hours %d Minutes", hours, minutes)
}
